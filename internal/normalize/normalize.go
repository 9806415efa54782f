// Package normalize prepares generated HTML for the visual editor by adding
// component-type, editable and droppable markers. It works on the markup text
// with regular expressions; there is no parse tree, and recognition is a
// best-effort heuristic.
package normalize

import (
	"fmt"
	"regexp"

	"ai_site_builder/internal/components"
)

const (
	editableAttr  = `data-gjs-editable="true"`
	droppableAttr = `data-gjs-droppable="true"`
	typeAttr      = "data-gjs-type"
)

type categoryRule struct {
	name   string
	detect *regexp.Regexp // class attribute mentioning any keyword
	tag    *regexp.Regexp // opening tag whose class mentions any keyword
	marker string
}

var (
	rules = buildRules()

	containerTag = regexp.MustCompile(`(?i)<(section|div|article|aside|header|main|footer)\b([^>]*?)(\s*/)?>`)
	leafTag      = regexp.MustCompile(`(?i)<(h[1-6]|p|span|a|button)\b([^>]*?)(\s*/)?>`)
	typeMarker   = regexp.MustCompile(`(?i)\s+` + typeAttr + `\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>=` + "`" + `]+))`)
)

func buildRules() []categoryRule {
	out := make([]categoryRule, 0, len(components.Categories))
	for _, c := range components.Categories {
		kw := c.Alternation()
		classValue := `(?:"[^"]*` + kw + `[^"]*"|'[^']*` + kw + `[^']*')`
		out = append(out, categoryRule{
			name:   c.Name,
			detect: regexp.MustCompile(`(?i)\bclass\s*=\s*` + classValue),
			tag:    regexp.MustCompile(`(?i)<(\w+)([^>]*\bclass\s*=\s*` + classValue + `[^>]*?)(\s*/)?>`),
			marker: fmt.Sprintf(` %s="%s" %s %s`, typeAttr, c.Name, editableAttr, droppableAttr),
		})
	}
	return out
}

// Normalize runs the full rewrite pipeline. It is a pure function of its input.
func Normalize(html string) string {
	out := TagComponents(html)
	out = containerTag.ReplaceAllString(out, "<${1}${2} "+editableAttr+" "+droppableAttr+"${3}>")
	out = leafTag.ReplaceAllString(out, "<${1}${2} "+editableAttr+"${3}>")
	return Sanitize(out)
}

// TagComponents marks elements whose class names match a recognised category.
// Categories are applied in table order, so an element matching two of them
// carries both markers, the later one last.
func TagComponents(html string) string {
	out := html
	for _, r := range rules {
		if !r.detect.MatchString(html) {
			continue
		}
		out = r.tag.ReplaceAllString(out, "<${1}${2}"+r.marker+"${3}>")
	}
	return out
}

// Sanitize removes component-type markers naming anything other than a
// recognised category, so hallucinated types never reach the editor registry.
func Sanitize(html string) string {
	return typeMarker.ReplaceAllStringFunc(html, func(attr string) string {
		m := typeMarker.FindStringSubmatch(attr)
		value := m[1] + m[2] + m[3]
		if components.IsCategory(value) {
			return attr
		}
		return ""
	})
}

// ComponentTypes lists the component-type marker values present in html, in order.
func ComponentTypes(html string) []string {
	var found []string
	for _, m := range typeMarker.FindAllStringSubmatch(html, -1) {
		found = append(found, m[1]+m[2]+m[3])
	}
	return found
}
