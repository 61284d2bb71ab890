package domain

import "time"

// ExecutionResult captures the outcome of dispatching a single intent.
// Created once per dispatch call; immutable thereafter.
type ExecutionResult struct {
	Success bool
	Message string
	// ExecutionTime is the wall-clock duration around the entire dispatch
	// call, regardless of outcome.
	ExecutionTime time.Duration
	// Error holds the unexpected-fault description when the dispatch
	// boundary caught something no handler anticipated.
	Error string
	// Screenshot is the optional diagnostic artifact path captured when an
	// unexpected fault occurred and capture is enabled.
	Screenshot string
}

// Seconds returns the execution time as fractional seconds, the unit used by
// the metrics formulas and the external log format.
func (r ExecutionResult) Seconds() float64 {
	return r.ExecutionTime.Seconds()
}
