package domain

import "time"

// ExecutionRecord is one append-only log entry pairing a command with its
// classified intent and execution result. Records are appended exactly once
// per dispatched command and never mutated or removed. The pipeline owns
// record creation; the execution log owns storage.
type ExecutionRecord struct {
	ID        string
	Timestamp time.Time
	Command   string
	Intent    Intent
	Result    ExecutionResult
}
