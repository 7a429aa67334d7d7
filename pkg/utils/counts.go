package utils

import (
	"regexp"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

var wordPattern = regexp.MustCompile(`\S+`)

// CountChars returns the number of characters (runes) in text.
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}

// CountWords returns the number of whitespace separated words in text.
func CountWords(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}

// FormatCharCount formats a character count for the status bar,
// e.g. "1,000 chars".
func FormatCharCount(n int) string {
	return formatCount(n, "char", "chars")
}

// FormatWordCount formats a word count, e.g. "12 words".
func FormatWordCount(n int) string {
	return formatCount(n, "word", "words")
}

func formatCount(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return humanize.Comma(int64(n)) + " " + plural
}
