// Package execlog persists the append-only execution record collections.
//
// Two backends mirror the history stores the rest of the tooling expects: a
// per-calendar-day JSONL file store and a SQLite store with a file fallback.
// Both serialize records in the external log format (RFC3339 timestamps,
// execution times as fractional seconds).
package execlog

import (
	"time"

	"github.com/doeshing/smartos-go/internal/domain"
)

// logEntry is the external JSON shape of one execution record.
type logEntry struct {
	ID            string      `json:"id,omitempty"`
	Timestamp     string      `json:"timestamp"`
	Command       string      `json:"command"`
	Intent        intentEntry `json:"intent"`
	Result        resultEntry `json:"result"`
	ExecutionTime float64     `json:"execution_time"`
}

type intentEntry struct {
	Action          string            `json:"action"`
	Target          string            `json:"target"`
	Parameters      map[string]string `json:"parameters"`
	Confidence      float64           `json:"confidence"`
	OriginalCommand string            `json:"original_command"`
}

type resultEntry struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	ExecutionTime float64 `json:"execution_time"`
	Error         string  `json:"error,omitempty"`
	Screenshot    string  `json:"screenshot,omitempty"`
}

func toEntry(record domain.ExecutionRecord) logEntry {
	seconds := record.Result.Seconds()
	return logEntry{
		ID:        record.ID,
		Timestamp: record.Timestamp.Format(domain.TimestampFormat),
		Command:   record.Command,
		Intent: intentEntry{
			Action:          string(record.Intent.Action),
			Target:          record.Intent.Target,
			Parameters:      record.Intent.Parameters,
			Confidence:      record.Intent.Confidence,
			OriginalCommand: record.Intent.OriginalText,
		},
		Result: resultEntry{
			Success:       record.Result.Success,
			Message:       record.Result.Message,
			ExecutionTime: seconds,
			Error:         record.Result.Error,
			Screenshot:    record.Result.Screenshot,
		},
		ExecutionTime: seconds,
	}
}

// fromEntry converts back to the domain record. An unparsable timestamp
// yields the zero time; consumers exclude such records from time windows
// instead of treating them as errors.
func fromEntry(entry logEntry) domain.ExecutionRecord {
	record := domain.ExecutionRecord{
		ID:      entry.ID,
		Command: entry.Command,
		Intent: domain.Intent{
			Action:       domain.ActionKind(entry.Intent.Action),
			Target:       entry.Intent.Target,
			Parameters:   entry.Intent.Parameters,
			Confidence:   entry.Intent.Confidence,
			OriginalText: entry.Intent.OriginalCommand,
		},
		Result: domain.ExecutionResult{
			Success:       entry.Result.Success,
			Message:       entry.Result.Message,
			ExecutionTime: time.Duration(entry.Result.ExecutionTime * float64(time.Second)),
			Error:         entry.Result.Error,
			Screenshot:    entry.Result.Screenshot,
		},
	}
	if ts, err := time.Parse(domain.TimestampFormat, entry.Timestamp); err == nil {
		record.Timestamp = ts
	}
	return record
}
