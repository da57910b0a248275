package render

import (
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// The backend formats some free-text fields with <br> and <strong>.
var (
	htmlPolicy  = bluemonday.UGCPolicy()
	plainPolicy = bluemonday.StrictPolicy()

	lineBreak  = regexp.MustCompile(`(?i)<br\s*/?>|</p>|<hr\s*/?>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// SafeHTML sanitizes a backend fragment for inclusion in an HTML page.
func SafeHTML(s string) template.HTML {
	return template.HTML(htmlPolicy.Sanitize(s)) // #nosec G203 -- sanitized above
}

// Plain strips markup from a backend fragment for terminal output, keeping
// line breaks.
func Plain(s string) string {
	s = lineBreak.ReplaceAllString(s, "\n")
	s = html.UnescapeString(plainPolicy.Sanitize(s))
	s = blankLines.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
