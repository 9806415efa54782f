package prompts

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"ai_site_builder/internal/types"
)

const (
	defaultColorScheme    = "Modern and professional"
	defaultFontStyle      = "Clean and readable"
	defaultLanguage       = "English"
	defaultAdditionalInfo = "No additional requirements specified."
)

// DescribeWebsite renders the wizard answers as the user part of the prompt.
// Empty optional fields fall back to neutral defaults; it never fails.
func DescribeWebsite(spec types.WebsiteSpec) string {
	var sb strings.Builder

	sb.WriteString("Website Purpose: ")
	sb.WriteString(spec.Purpose)
	sb.WriteString("\n\nSections to include:\n")
	for _, section := range spec.Sections {
		sb.WriteString("- ")
		sb.WriteString(section)
		sb.WriteString("\n")
	}

	sb.WriteString("\nDesign Preferences:\n")
	sb.WriteString(fmt.Sprintf("- Color Scheme: %s\n", orDefault(spec.ColorScheme, defaultColorScheme)))
	sb.WriteString(fmt.Sprintf("- Font Style: %s\n", orDefault(spec.FontStyle, defaultFontStyle)))
	sb.WriteString(fmt.Sprintf("- Language: %s\n", languageName(spec.Language)))

	sb.WriteString("\nAdditional Information:\n")
	sb.WriteString(orDefault(spec.AdditionalInfo, defaultAdditionalInfo))
	sb.WriteString("\n\nPlease generate a complete, responsive website with modern design principles.")

	return sb.String()
}

// BuildPrompt is the full instruction sent to the model for a WebsiteSpec.
func BuildPrompt(spec types.WebsiteSpec) string {
	return FormatPrompt(DescribeWebsite(spec))
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// languageName turns BCP 47 tags such as "fr" or "pt-BR" into English display
// names. Anything that is not a known tag ("Spanish") is passed through.
func languageName(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return defaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return lang
}
