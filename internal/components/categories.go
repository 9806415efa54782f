// Package components holds the static editor configuration: the semantic
// category table shared by the normalizer and the sanitizer, the custom
// component types, the block palette and the supporting styles.
package components

import (
	"regexp"
	"strings"
)

// Category is a semantic component the normalizer can recognise.
// An element is tagged with Name when its class attribute contains any keyword.
type Category struct {
	Name     string
	Keywords []string
}

// Categories is processed in this order. When an element matches several
// categories each one appends its own marker.
var Categories = []Category{
	{Name: "slider", Keywords: []string{"slider", "carousel", "swiper"}},
	{Name: "accordion", Keywords: []string{"accordion", "collapse", "toggle"}},
	{Name: "tabs", Keywords: []string{"tabs", "tabbed"}},
	{Name: "modal", Keywords: []string{"modal", "popup", "dialog"}},
	{Name: "countdown", Keywords: []string{"countdown", "timer"}},
	{Name: "testimonial", Keywords: []string{"testimonial", "review"}},
	{Name: "pricing", Keywords: []string{"pricing", "plan", "package"}},
	{Name: "gallery", Keywords: []string{"gallery", "lightbox"}},
	{Name: "form", Keywords: []string{"form", "contact", "subscribe"}},
	{Name: "navbar", Keywords: []string{"navbar", "navigation", "menu"}},
	{Name: "footer", Keywords: []string{"footer", "bottom"}},
	{Name: "hero", Keywords: []string{"hero", "banner", "jumbotron"}},
}

var categoryIndex = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		m[c.Name] = struct{}{}
	}
	return m
}()

// IsCategory reports whether name is one of the recognised category names.
func IsCategory(name string) bool {
	_, ok := categoryIndex[name]
	return ok
}

// CategoryNames returns the category names in processing order.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}

// Alternation is the keyword set as a non-capturing regexp group.
func (c Category) Alternation() string {
	alts := make([]string, len(c.Keywords))
	for i, k := range c.Keywords {
		alts[i] = regexp.QuoteMeta(k)
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

// KeywordPattern matches any keyword of c, case-insensitively.
func (c Category) KeywordPattern() *regexp.Regexp {
	return regexp.MustCompile("(?i)" + c.Alternation())
}
