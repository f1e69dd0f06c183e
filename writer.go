package reloadgen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// Writer is the idempotent sink every generated artifact goes through.
//
// A build orchestrator that rebuilds on modification time would cascade
// unrelated downstream rebuilds every time this tool runs; skipping the
// write when content is byte-identical keeps the mtime, and the rebuild,
// untouched. Writes that do happen go through an atomic rename so a
// previously generated file is never left half overwritten.
type Writer struct {
	written   []string
	unchanged []string
}

// Write replaces path with content unless it already matches
// byte-for-byte. Reports whether the file was written.
func (w *Writer) Write(path string, content []byte) (wrote bool, err error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, content) {
		w.unchanged = append(w.unchanged, path)
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err = renameio.WriteFile(path, content, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	w.written = append(w.written, path)
	return true, nil
}

// Written dump the paths written so far.
func (w *Writer) Written() []string { return w.written }

// Unchanged dump the paths left alone so far.
func (w *Writer) Unchanged() []string { return w.unchanged }
