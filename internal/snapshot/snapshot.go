// Package snapshot provides full-store backups: a point-in-time dump of
// every key, a manifest pointing at the latest dump, and a restorer that
// reloads the dump and replays the mutation journal past it.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"phoenixarts/internal/kv"
)

type Snapshotter interface {
	WriteSnapshot(snapshotID string, st kv.Store) error
}

type FilesystemSnapshotter struct {
	baseDir string
}

func NewFilesystemSnapshotter(baseDir string) *FilesystemSnapshotter {
	return &FilesystemSnapshotter{baseDir: baseDir}
}

// WriteSnapshot dumps every key to <baseDir>/<snapshotID>/state.json. Every
// stored value is JSON text (the admin flag's literal true/false included),
// so the dump is a plain JSON object.
func (f *FilesystemSnapshotter) WriteSnapshot(snapshotID string, st kv.Store) error {
	if err := os.MkdirAll(filepath.Join(f.baseDir, snapshotID), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	file := filepath.Join(f.baseDir, snapshotID, "state.json")
	out, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer out.Close()

	dump := make(map[string]json.RawMessage)
	if err := st.Range(func(key string, value []byte) error {
		dump[key] = append(json.RawMessage(nil), value...)
		return nil
	}); err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
