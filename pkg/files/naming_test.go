package files

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple", title: "Meeting Notes", want: "meeting-notes"},
		{name: "punctuation", title: "What's new?", want: "what-s-new"},
		{name: "numbers", title: "Release 1.2", want: "release-1-2"},
		{name: "japanese", title: "日本語 メモ", want: "日本語-メモ"},
		{name: "edges", title: "  --Draft--  ", want: "draft"},
		{name: "nothing usable", title: "!!!", want: "untitled"},
		{name: "empty", title: "", want: "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestExtractMarkdownTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "first line", content: "# Title\n\nbody", want: "Title"},
		{name: "after text", content: "intro\n\n# Later\n", want: "Later"},
		{name: "closing hashes", content: "# Closed ##\n", want: "Closed"},
		{name: "skips level two", content: "## Sub\n# Main\n", want: "Main"},
		{name: "needs a space", content: "#hashtag\n", want: ""},
		{name: "inside fence", content: "```\n# not a title\n```\n# Real\n", want: "Real"},
		{name: "indented too far", content: "    # code\n", want: ""},
		{name: "crlf", content: "# Windows\r\nbody", want: "Windows"},
		{name: "none", content: "plain text", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMarkdownTitle(tt.content); got != tt.want {
				t.Errorf("ExtractMarkdownTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSuggestFileName(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{content: "# Trip Plan\n- day 1", want: "trip-plan.md"},
		{content: "no heading", want: "untitled.md"},
		{content: "", want: "untitled.md"},
	}

	for _, tt := range tests {
		if got := SuggestFileName(tt.content, "untitled.md", ".md"); got != tt.want {
			t.Errorf("SuggestFileName(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}
