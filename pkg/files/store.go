package files

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Sentinels for errors.Is on IOError.
var (
	ErrRead  = errors.New("read failed")
	ErrWrite = errors.New("write failed")
)

// IOError is a failed read or write of a document.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	sentinel := ErrRead
	if e.Op == "write" {
		sentinel = ErrWrite
	}
	return []error{sentinel, e.Err}
}

// Store reads and writes plain text documents.
type Store struct {
	fs afero.Fs
}

// NewStore wraps fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOSStore returns a store on the real filesystem.
func NewOSStore() *Store {
	return NewStore(afero.NewOsFs())
}

// Fs exposes the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// ReadText returns the file content.
func (s *Store) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// WriteText replaces the file content. The parent directory must exist.
func (s *Store) WriteText(path, content string) error {
	if err := afero.WriteFile(s.fs, path, []byte(content), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Filter describes a file type accepted by the open/save dialogs.
type Filter struct {
	Name       string
	Extensions []string // without the leading dot
}

// MarkdownFilter is the dialog filter for markdown documents.
func MarkdownFilter(extensions []string) Filter {
	return Filter{Name: "Markdown", Extensions: extensions}
}

// AllowedTypes returns the extensions with leading dots, as file pickers
// expect them.
func (f Filter) AllowedTypes() []string {
	types := make([]string, 0, len(f.Extensions))
	for _, ext := range f.Extensions {
		types = append(types, "."+strings.TrimPrefix(ext, "."))
	}
	return types
}

// Matches reports whether path has one of the filter's extensions.
func (f Filter) Matches(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range f.Extensions {
		if strings.EqualFold(ext, strings.TrimPrefix(allowed, ".")) {
			return true
		}
	}
	return false
}

// DefaultSavePath is the path a Save As dialog starts from.
func DefaultSavePath(current, fallback string) string {
	if current != "" {
		return current
	}
	return fallback
}
