package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"phoenixarts/internal/changelog"
	"phoenixarts/internal/kv"
)

// Image payloads make journal lines large; the default Scanner buffer is far
// too small for a base64 data URL.
const maxJournalLine = 64 << 20

type Restorer struct {
	store           kv.Store
	manifestReader  Reader
	snapshotBaseDir string
}

func NewRestorer(store kv.Store, mr Reader, snapshotBaseDir string) *Restorer {
	return &Restorer{store: store, manifestReader: mr, snapshotBaseDir: snapshotBaseDir}
}

type RestoreResult struct {
	Applied int
	Skipped int
	Error   error
}

// RestoreFromSnapshot replaces the store contents with the dump. A missing
// snapshot is skipped, not fatal.
func (r *Restorer) RestoreFromSnapshot(snapshotID string) error {
	if snapshotID == "" {
		return nil
	}
	path := filepath.Join(r.snapshotBaseDir, snapshotID, "state.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", path).Warn("restore: snapshot not found, skipping")
			return nil
		}
		return fmt.Errorf("read snapshot: %w", err)
	}
	var dump map[string]json.RawMessage
	if err := json.Unmarshal(data, &dump); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	all := make(map[string][]byte, len(dump))
	for k, v := range dump {
		all[k] = []byte(v)
	}
	if err := r.store.LoadAll(all); err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	logrus.WithFields(logrus.Fields{"keys": len(all), "snapshot": snapshotID}).Info("restore: snapshot loaded")
	return nil
}

// ReplayChangelog re-applies journaled mutations after fromLine, in order.
// Last write wins, matching the store's own semantics.
func (r *Restorer) ReplayChangelog(changelogPath string, fromLine int64) RestoreResult {
	file, err := os.Open(changelogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return RestoreResult{}
		}
		return RestoreResult{Error: fmt.Errorf("open changelog: %w", err)}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1<<20), maxJournalLine)
	applied, skipped := 0, 0
	lineNum := int64(0)

	for scanner.Scan() {
		lineNum++
		if lineNum <= fromLine {
			skipped++
			continue
		}
		var e changelog.Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return RestoreResult{Applied: applied, Skipped: skipped, Error: fmt.Errorf("unmarshal line %d: %w", lineNum, err)}
		}
		switch e.Op {
		case changelog.OpDelete:
			err = r.store.Delete(e.Key)
		default:
			err = r.store.Set(e.Key, []byte(e.Value))
		}
		if err != nil {
			return RestoreResult{Applied: applied, Skipped: skipped, Error: fmt.Errorf("apply line %d: %w", lineNum, err)}
		}
		applied++
	}
	if err := scanner.Err(); err != nil {
		return RestoreResult{Applied: applied, Skipped: skipped, Error: fmt.Errorf("scan changelog: %w", err)}
	}
	return RestoreResult{Applied: applied, Skipped: skipped}
}

// RestoreAndReplay drives both steps from the latest manifest.
func (r *Restorer) RestoreAndReplay(changelogPath string) (RestoreResult, error) {
	m, err := r.manifestReader.ReadLatest()
	if err != nil {
		return RestoreResult{}, fmt.Errorf("read manifest: %w", err)
	}
	if err := r.RestoreFromSnapshot(m.SnapshotID); err != nil {
		return RestoreResult{}, fmt.Errorf("restore snapshot: %w", err)
	}
	result := r.ReplayChangelog(changelogPath, m.LastChangelogLine)
	return result, result.Error
}

// CountChangelogLines reports the current journal length, recorded in the
// manifest at snapshot time so replay can start past the dump.
func CountChangelogLines(path string) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("open changelog: %w", err)
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1<<20), maxJournalLine)
	var n int64
	for scanner.Scan() {
		n++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("scan changelog: %w", err)
	}
	return n, nil
}
