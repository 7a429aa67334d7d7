package testhelpers

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/hikari-md/hikari/pkg/files"
)

// TestEnvironment is an in-memory filesystem with a store on top. Writes
// made through Store are counted per path; the helpers here bypass the count.
type TestEnvironment struct {
	t      *testing.T
	Fs     afero.Fs
	Store  *files.Store
	writes *writeCounter
}

// NewTestEnvironment creates an empty in-memory environment.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	fs := afero.NewMemMapFs()
	counter := &writeCounter{Fs: fs, counts: make(map[string]int)}
	return &TestEnvironment{t: t, Fs: fs, Store: files.NewStore(counter), writes: counter}
}

// Writes returns how many times Store opened path for writing.
func (e *TestEnvironment) Writes(path string) int {
	return e.writes.count(path)
}

// writeCounter counts files opened for writing.
type writeCounter struct {
	afero.Fs

	mu     sync.Mutex
	counts map[string]int
}

func (w *writeCounter) Create(name string) (afero.File, error) {
	w.record(name)
	return w.Fs.Create(name)
}

func (w *writeCounter) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		w.record(name)
	}
	return w.Fs.OpenFile(name, flag, perm)
}

func (w *writeCounter) record(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.counts[filepath.Clean(name)]++
}

func (w *writeCounter) count(name string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.counts[filepath.Clean(name)]
}

// ReadOnly returns a store over the same files that fails every write.
func (e *TestEnvironment) ReadOnly() *files.Store {
	return files.NewStore(afero.NewReadOnlyFs(e.Fs))
}

// WriteFile creates a file with content, failing the test on error.
func (e *TestEnvironment) WriteFile(path, content string) {
	e.t.Helper()
	if err := afero.WriteFile(e.Fs, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile returns a file's content, failing the test on error.
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()
	data, err := afero.ReadFile(e.Fs, path)
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// FileCount returns the number of regular files.
func (e *TestEnvironment) FileCount() int {
	e.t.Helper()
	count := 0
	err := afero.Walk(e.Fs, "/", func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		e.t.Fatalf("Failed to walk files: %v", err)
	}
	return count
}
