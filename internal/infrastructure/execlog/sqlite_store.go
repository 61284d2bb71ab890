package execlog

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/pkg/filesystem"
	"github.com/doeshing/smartos-go/internal/ports"
)

// SQLiteStore persists execution records in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) <dir>/execution.db; the default dir is
// ~/.smartos. When the database cannot be opened the store degrades to the
// JSONL file store.
func NewSQLiteStore(dir string) *SQLiteStore {
	if dir == "" {
		dir = filesystem.DataDir()
	}
	path := filepath.Join(dir, "execution.db")
	_ = os.MkdirAll(dir, domain.DirectoryPermissions)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS executions (
		id TEXT,
		timestamp TEXT,
		command TEXT,
		action TEXT,
		target TEXT,
		parameters TEXT,
		confidence REAL,
		success INTEGER,
		message TEXT,
		execution_time REAL,
		error TEXT,
		screenshot TEXT
	);`)
	return err
}

// Append inserts a new record.
func (s *SQLiteStore) Append(record domain.ExecutionRecord) error {
	if s.db == nil {
		return s.fallback().Append(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	params, err := json.Marshal(record.Intent.Parameters)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO executions
		(id, timestamp, command, action, target, parameters, confidence, success, message, execution_time, error, screenshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(domain.TimestampFormat),
		record.Command,
		string(record.Intent.Action),
		record.Intent.Target,
		string(params),
		record.Intent.Confidence,
		boolToInt(record.Result.Success),
		record.Result.Message,
		record.Result.Seconds(),
		record.Result.Error,
		record.Result.Screenshot,
	)
	return err
}

// Records returns every stored record, oldest first.
func (s *SQLiteStore) Records() ([]domain.ExecutionRecord, error) {
	if s.db == nil {
		return s.fallback().Records()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, timestamp, command, action, target, parameters, confidence, success, message, execution_time, error, screenshot
		FROM executions ORDER BY datetime(timestamp) ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ExecutionRecord
	for rows.Next() {
		var (
			rec           domain.ExecutionRecord
			ts, action    string
			params        string
			success       int
			executionTime float64
		)
		if err := rows.Scan(&rec.ID, &ts, &rec.Command, &action, &rec.Intent.Target, &params,
			&rec.Intent.Confidence, &success, &rec.Result.Message, &executionTime,
			&rec.Result.Error, &rec.Result.Screenshot); err != nil {
			return nil, err
		}
		rec.Intent.Action = domain.ActionKind(action)
		rec.Intent.OriginalText = rec.Command
		rec.Result.Success = success == 1
		rec.Result.ExecutionTime = time.Duration(executionTime * float64(time.Second))
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		if params != "" {
			_ = json.Unmarshal([]byte(params), &rec.Intent.Parameters)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all records.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM executions")
	return err
}

// ExportJSON writes the record set to a JSONL file in the external format.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records()
	if err != nil {
		return err
	}
	return WriteJSONL(dest, records)
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) fallback() *FileStore {
	return NewFileStore(filepath.Join(filepath.Dir(s.path), "execution_logs"))
}

// WriteJSONL exports records as one external-format JSON object per line.
func WriteJSONL(dest string, records []domain.ExecutionRecord) error {
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, record := range records {
		data, err := json.Marshal(toEntry(record))
		if err != nil {
			return err
		}
		if _, err := file.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.ExecutionLog = (*SQLiteStore)(nil)
