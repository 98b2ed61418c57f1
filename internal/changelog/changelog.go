package changelog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	OpSet    = "set"
	OpDelete = "delete"
)

// Entry records one committed store mutation. Value carries the full written
// value so that replay can reproduce the store without re-running any domain
// logic.
type Entry struct {
	Key   string          `json:"key"`
	Op    string          `json:"op"`
	Value json.RawMessage `json:"value,omitempty"`
	TS    int64           `json:"ts"`
}

type Writer interface {
	Append(e Entry) error
}

// MultiWriter fans out appends to multiple underlying writers.
type MultiWriter struct {
	writers []Writer
}

func NewMultiWriter(ws ...Writer) *MultiWriter {
	return &MultiWriter{writers: ws}
}

func (m *MultiWriter) Append(e Entry) error {
	for _, w := range m.writers {
		if err := w.Append(e); err != nil {
			return err
		}
	}
	return nil
}

// FileWriter appends entries as JSON lines.
type FileWriter struct {
	path string
}

func NewFileWriter(dir string, filename string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &FileWriter{path: filepath.Join(dir, filename)}, nil
}

func (w *FileWriter) Path() string { return w.path }

func (w *FileWriter) Append(e Entry) error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	if err := enc.Encode(&e); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
