// Package history persists extracted program records as one JSON document:
// an ordered list of records, rewritten whole on every save. Records are
// unique by their week label.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yooung1/sonntag/core"
	"github.com/yooung1/sonntag/internal/logutil"
)

// FileStore stores the history collection in a single JSON file. The mutex
// serializes load/save so overlapping save operations cannot lose updates.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the given file path. The file is
// created lazily on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted collection. A missing, unreadable, or corrupted
// file degrades to an empty collection rather than failing: history is
// best-effort and an unreadable file must not block an extraction run.
func (s *FileStore) Load() ([]core.ProgramRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logutil.Log.WithError(err).Warnf("history: cannot read %s, starting empty", s.path)
		}
		return nil, nil
	}

	var records []core.ProgramRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logutil.Log.WithError(err).Warnf("history: cannot parse %s, starting empty", s.path)
		return nil, nil
	}
	return records, nil
}

// Save rewrites the whole collection.
func (s *FileStore) Save(records []core.ProgramRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []core.ProgramRecord{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating history directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// Merge adds each new record to the collection unless a record with the
// same week label is already present. Existing records keep their order;
// added records are appended in the order given.
func Merge(existing, incoming []core.ProgramRecord) []core.ProgramRecord {
	seen := make(map[string]bool, len(existing))
	for _, rec := range existing {
		seen[rec.Metadata.WeekLabel] = true
	}

	merged := existing
	for _, rec := range incoming {
		if seen[rec.Metadata.WeekLabel] {
			continue
		}
		seen[rec.Metadata.WeekLabel] = true
		merged = append(merged, rec)
	}
	return merged
}
