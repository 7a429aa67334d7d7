package files

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	atxHeading  = regexp.MustCompile(`^ {0,3}#[ \t]+(.*?)(?:[ \t]+#+)?[ \t]*$`)
)

// Slugify converts a title to a file name stem
// Examples:
//
//	"Meeting Notes" → "meeting-notes"
//	"What's new?"   → "what-s-new"
//	"日本語 メモ"     → "日本語-メモ"
func Slugify(title string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}

// ExtractMarkdownTitle returns the text of the first level-one ATX heading,
// or "" when there is none.
func ExtractMarkdownTitle(content string) string {
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := atxHeading.FindStringSubmatch(strings.TrimRight(line, "\r")); m != nil {
			if title := strings.TrimSpace(m[1]); title != "" {
				return title
			}
		}
	}
	return ""
}

// SuggestFileName proposes a name for an untitled document: the slug of its
// first heading with extension ext, or fallback when it has no heading.
func SuggestFileName(content, fallback, ext string) string {
	title := ExtractMarkdownTitle(content)
	if title == "" {
		return fallback
	}
	return Slugify(title) + "." + strings.TrimPrefix(ext, ".")
}
