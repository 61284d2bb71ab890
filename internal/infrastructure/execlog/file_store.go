package execlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/pkg/filesystem"
	"github.com/doeshing/smartos-go/internal/ports"
)

// FileStore appends execution records to one JSONL collection per calendar
// day under <dir>/execution_YYYYMMDD.jsonl.
type FileStore struct {
	dir string
	mu  sync.Mutex

	// now is swappable for tests.
	now func() time.Time
}

// NewFileStore creates a store under ~/.smartos/execution_logs, or under the
// given directory when non-empty.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = filepath.Join(filesystem.DataDir(), "execution_logs")
	}
	return &FileStore{dir: dir, now: time.Now}
}

// Append implements ports.ExecutionLog. Each record is written as one
// complete line under the lock, so concurrent readers never see a torn
// record.
func (f *FileStore) Append(record domain.ExecutionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(f.dir, domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.OpenFile(f.dayPath(f.now()), os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.DataFilePermissions)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	data, err := json.Marshal(toEntry(record))
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	data = append(data, '\n')
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

// Records loads every entry across all day collections, oldest day first.
// Unreadable lines are skipped (best-effort).
func (f *FileStore) Records() ([]domain.ExecutionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	paths, err := filepath.Glob(filepath.Join(f.dir, "execution_*.jsonl"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var records []domain.ExecutionRecord
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		for _, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			var entry logEntry
			if err := json.Unmarshal(line, &entry); err == nil {
				records = append(records, fromEntry(entry))
			}
		}
	}
	return records, nil
}

// Clear removes every day collection.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	paths, err := filepath.Glob(filepath.Join(f.dir, "execution_*.jsonl"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Path returns the backing directory.
func (f *FileStore) Path() string {
	return f.dir
}

func (f *FileStore) dayPath(t time.Time) string {
	return filepath.Join(f.dir, fmt.Sprintf("execution_%s.jsonl", t.Format(domain.DayFormat)))
}

var _ ports.ExecutionLog = (*FileStore)(nil)
