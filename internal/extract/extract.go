// Package extract pulls labeled code fences out of a model completion.
package extract

import (
	"regexp"
	"strings"

	"ai_site_builder/internal/types"
)

const (
	LabelHTML       = "HTML"
	LabelCSS        = "CSS"
	LabelJavaScript = "JavaScript"
)

var known = map[string]*regexp.Regexp{
	LabelHTML:       sectionPattern(LabelHTML),
	LabelCSS:        sectionPattern(LabelCSS),
	LabelJavaScript: sectionPattern(LabelJavaScript),
}

// sectionPattern matches "<label>:" followed by a fence with an optional language tag.
func sectionPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)\b` + regexp.QuoteMeta(label) + ":\\s*```(?:\\w+)?[ \\t]*\\r?\\n(.*?)```")
}

// Section returns the trimmed body of the first fence labeled label, or "".
// The match is case-insensitive and the first occurrence wins.
func Section(text, label string) string {
	re, ok := known[label]
	if !ok {
		re = sectionPattern(label)
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Artifact extracts all three sections; missing ones are empty strings.
func Artifact(text string) types.GeneratedArtifact {
	return types.GeneratedArtifact{
		HTML: Section(text, LabelHTML),
		CSS:  Section(text, LabelCSS),
		JS:   Section(text, LabelJavaScript),
	}
}
