package domain

import "time"

// Classifier confidence constants. Confidence is a fixed per-rule-group
// certainty score assigned on match, not a learned probability.
const (
	ConfidenceOpenApplication = 0.90
	ConfidenceFileOperation   = 0.80
	ConfidenceSystemControl   = 0.85
	ConfidenceContentCreation = 0.75

	// ConfidenceGate is the minimum confidence routed to dispatch; intents
	// below it yield a clarification request instead.
	ConfidenceGate = 0.5
	// HighConfidenceThreshold marks an intent as accurately understood for
	// the intent-accuracy metric.
	HighConfidenceThreshold = 0.8
)

// File operation defaults.
const (
	DefaultFilename    = "untitled.txt"
	DefaultFileContent = "Sample content"
	DefaultTopic       = "general topic"
)

// Metrics constants.
const (
	// Cumulative histogram bucket upper bounds.
	HistogramBucket1s = 1 * time.Second
	HistogramBucket3s = 3 * time.Second
	HistogramBucket5s = 5 * time.Second

	// Fixed trailing windows for time-based breakdowns.
	WindowLastHour = time.Hour
	WindowLastDay  = 24 * time.Hour
)

// Background monitor constants.
const (
	// DefaultMonitorInterval is the period between snapshot recomputations.
	DefaultMonitorInterval = 60 * time.Second
)

// Voice front-end constants.
const (
	// DefaultSpeechRate is passed to the platform TTS tool, in words per
	// minute.
	DefaultSpeechRate = 180
)

// File permissions constants.
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// DataFilePermissions is the permission for log and content files (rw-r--r--)
	DataFilePermissions = 0o644
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Time formats.
const (
	// TimestampFormat is the standard timestamp format for stored records.
	TimestampFormat = time.RFC3339
	// DayFormat names the per-calendar-day log collection.
	DayFormat = "20060102"
)
