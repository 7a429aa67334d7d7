package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ValidateFilePath checks that path exists on fs and is not a directory.
func ValidateFilePath(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		if IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateMarkdownPath rejects files whose extension is not one of
// extensions. An empty list accepts everything.
func ValidateMarkdownPath(path string, extensions []string) error {
	if len(extensions) == 0 {
		return nil
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, allowed := range extensions {
		if strings.EqualFold(ext, strings.TrimPrefix(allowed, ".")) {
			return nil
		}
	}
	return fmt.Errorf("not a markdown file: %s (expected .%s)", path, strings.Join(extensions, ", ."))
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string, valid ...string) error {
	if len(valid) == 0 {
		valid = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
	}
	if Contains(valid, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: %s)", format, strings.Join(valid, ", "))
}

// Contains checks if a slice contains a string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
