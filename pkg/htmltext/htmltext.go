// Package htmltext reduces HTML fragments to readable plain text.
package htmltext

import (
	"html"
	"regexp"
	"strings"
)

var (
	reHeading = regexp.MustCompile(`(?s)<h[1-6][^>]*>(.*?)</h[1-6]>`)
	rePara    = regexp.MustCompile(`(?s)<p[^>]*>(.*?)</p>`)
	reItem    = regexp.MustCompile(`(?s)<li[^>]*>(.*?)</li>`)
	reBreak   = regexp.MustCompile(`<br[^>]*>`)
	reTag     = regexp.MustCompile(`<[^>]+>`)
	reBlank   = regexp.MustCompile(`\n{3,}`)
)

// Sanitize strips HTML, keeping basic structure: headings become
// "** text **" markers, paragraphs keep a trailing blank line, list items
// become dashed lines, and runs of three or more newlines collapse to two.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	out := html.UnescapeString(s)
	out = reHeading.ReplaceAllString(out, "** $1 **\n")
	out = rePara.ReplaceAllString(out, "$1\n\n")
	out = reItem.ReplaceAllString(out, "- $1\n")
	out = reBreak.ReplaceAllString(out, "\n")
	out = reTag.ReplaceAllString(out, "")
	out = reBlank.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
