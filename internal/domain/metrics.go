package domain

import "time"

// MetricsSnapshot is a point-in-time view derived from the execution record
// set. It is recomputable from the records at any time; the only invariant a
// consumer may rely on is TotalCommands = SuccessfulCommands + FailedCommands.
type MetricsSnapshot struct {
	GeneratedAt        time.Time
	TotalCommands      int
	SuccessfulCommands int
	FailedCommands     int
	// SuccessRate is a percentage in [0, 100]; 0 when no commands ran.
	SuccessRate         float64
	AverageResponseTime time.Duration
	// IntentAccuracy is the percentage of records whose classified intent
	// cleared the high-confidence threshold.
	IntentAccuracy float64

	Categories map[ActionKind]CategoryStats
	Histogram  ResponseTimeHistogram
	LastHour   WindowStats
	LastDay    WindowStats
}

// CategoryStats breaks the record set down by intent action.
type CategoryStats struct {
	Total               int
	Successful          int
	SuccessRate         float64
	AverageResponseTime time.Duration
}

// ResponseTimeHistogram buckets response times cumulatively: Under3s counts
// everything faster than three seconds (a superset of Under1s) and Under5s is
// a superset of Under3s. Over5s is the complement. The cumulative relationship
// is an invariant, not an implementation detail.
type ResponseTimeHistogram struct {
	Under1s int
	Under3s int
	Under5s int
	Over5s  int
}

// WindowStats summarizes the records whose timestamp falls inside a fixed
// trailing window. Records without a parsable timestamp are excluded.
type WindowStats struct {
	Window      time.Duration
	Total       int
	SuccessRate float64
}
