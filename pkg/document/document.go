// Package document tracks the single open markdown document: its live
// content, the content last persisted to disk and the file it belongs to.
package document

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Document never touches disk itself; callers report loads and saves.
type Document struct {
	content  string
	baseline string
	path     string
}

// New returns an empty, clean, untitled document.
func New() *Document {
	return &Document{}
}

// Load replaces everything with a freshly read file.
func (d *Document) Load(path, content string) {
	d.content = content
	d.baseline = content
	d.path = path
}

// Edit replaces the live content.
func (d *Document) Edit(content string) {
	d.content = content
}

// MarkSaved records that persisted was written to path.
func (d *Document) MarkSaved(path, persisted string) {
	d.baseline = persisted
	d.path = path
}

// Reset returns to an empty untitled document.
func (d *Document) Reset() {
	d.content = ""
	d.baseline = ""
	d.path = ""
}

// IsDirty reports whether the content differs from what was last persisted.
func (d *Document) IsDirty() bool {
	return d.content != d.baseline
}

// Content returns the live content.
func (d *Document) Content() string {
	return d.content
}

// Baseline returns the last persisted content.
func (d *Document) Baseline() string {
	return d.baseline
}

// Path returns the file path, or "" for an untitled document.
func (d *Document) Path() string {
	return d.path
}

// HasPath reports whether the document is bound to a file.
func (d *Document) HasPath() bool {
	return d.path != ""
}

// DisplayName is the base name of the file, or "Unsaved".
func (d *Document) DisplayName() string {
	if d.path == "" {
		return "Unsaved"
	}
	return filepath.Base(d.path)
}

// CharCount counts characters (runes) in the live content.
func (d *Document) CharCount() int {
	return utf8.RuneCountInString(d.content)
}

// ChangeSummary is a line-level comparison against the baseline.
type ChangeSummary struct {
	Added   int
	Removed int
}

// Empty reports whether no lines changed.
func (c ChangeSummary) Empty() bool {
	return c.Added == 0 && c.Removed == 0
}

func (c ChangeSummary) String() string {
	if c.Empty() {
		return "no line changes"
	}
	return fmt.Sprintf("%s added, %s removed", plural(c.Added, "line"), plural(c.Removed, "line"))
}

// Changes diffs the live content against the baseline line by line.
func (d *Document) Changes() ChangeSummary {
	if !d.IsDirty() {
		return ChangeSummary{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(d.baseline, d.content)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var summary ChangeSummary
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			summary.Added += countLines(diff.Text)
		case diffmatchpatch.DiffDelete:
			summary.Removed += countLines(diff.Text)
		}
	}
	return summary
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
