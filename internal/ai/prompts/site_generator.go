package prompts

import (
	"fmt"
	"strings"
)

// siteGenerationTemplate is the fixed output contract wrapped around every user prompt.
const siteGenerationTemplate = `You are an AI frontend code generator that outputs only clean, modular HTML, CSS and JavaScript for a visual page editor.

Guidelines:
- Ensure all sections/components are editable and include appropriate ` + "`data-gjs-*`" + ` attributes.
- Avoid unnecessary wrapper ` + "`<div>`" + `s.
- Use semantic HTML and descriptive class names (e.g. hero, slider, accordion, pricing, testimonial, gallery).
- Make it responsive using Flexbox or Grid.
- Ensure accessibility (e.g., proper form labels, alt text).
- The JavaScript block is optional; omit it when the page needs no behaviour.
- Do NOT include explanations or markdown formatting other than code blocks.

Output format:
HTML:
` + "```html" + `
<!-- Your HTML code here -->
` + "```" + `

CSS:
` + "```css" + `
/* Your CSS code here */
` + "```" + `

JavaScript:
` + "```javascript" + `
// Your JavaScript code here
` + "```" + `

User Prompt:
%s`

// FormatPrompt wraps a user prompt in the fixed three-block output contract.
func FormatPrompt(userPrompt string) string {
	return strings.TrimSpace(fmt.Sprintf(siteGenerationTemplate, strings.TrimSpace(userPrompt)))
}
