package markdown

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ](javascript:...) style destinations, optionally wrapped in <>
	unsafeLinkDest = regexp.MustCompile(`(\]\(\s*<?)(?i:javascript|vbscript|data):[^)\s>]*`)
	// <javascript:...> autolinks
	unsafeAutolink = regexp.MustCompile(`<(?i:javascript|vbscript|data):[^>]*>`)
	// [ref]: javascript:... definitions
	unsafeRefDest = regexp.MustCompile(`(?m)^( {0,3}\[[^\]]+\]:[ \t]*<?)(?i:javascript|vbscript|data):[^\s>]*`)

	sourceLineAttr = regexp.MustCompile(`^[0-9]+$`)
	codeLangClass  = regexp.MustCompile(`^language-[\w+#.-]+$`)
)

// newPolicy returns the HTML allow-list used for every rendered document.
// It is the user-generated-content policy plus the source line attribute
// the preview relies on.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("data-source-line").Matching(sourceLineAttr).Globally()
	p.AllowAttrs("class").Matching(codeLangClass).OnElements("code")
	return p
}

var policy = newPolicy()

// SanitizeHTML strips scripts, event handlers and unsafe URLs from html.
func SanitizeHTML(html string) string {
	return policy.Sanitize(html)
}

// StripControl removes control characters other than newline and tab.
// CRLF and lone CR line endings become LF.
func StripControl(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r == '\r':
			return '\n'
		case r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f):
			return -1
		}
		return r
	}, s)
}

// NeutralizeLinks rewrites link destinations using script-capable schemes
// so that terminal hyperlinks never carry them.
func NeutralizeLinks(s string) string {
	s = unsafeLinkDest.ReplaceAllString(s, "${1}#")
	s = unsafeRefDest.ReplaceAllString(s, "${1}#")
	return unsafeAutolink.ReplaceAllString(s, "")
}
