// Package domain defines core business entities and value objects for SmartOS.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures: classified intents, execution
// results, the append-only execution record, and derived metrics.
package domain

// ActionKind identifies the category of a classified intent.
type ActionKind string

const (
	ActionOpenApplication ActionKind = "open_application"
	ActionFileOperation   ActionKind = "file_operation"
	ActionSystemControl   ActionKind = "system_control"
	ActionContentCreation ActionKind = "content_creation"
	ActionUnknown         ActionKind = "unknown"
)

// ActionKinds lists the dispatchable categories in classifier priority order.
// The order is a documented contract: earlier groups win even when a later
// group's keywords also appear in the utterance.
var ActionKinds = []ActionKind{
	ActionOpenApplication,
	ActionFileOperation,
	ActionSystemControl,
	ActionContentCreation,
}

// Well-known parameter keys extracted by the classifier.
const (
	ParamFilename = "filename"
	ParamContent  = "content"
	ParamTopic    = "topic"
)

// Intent is the structured interpretation of a single utterance. It is
// created once by the classifier and treated as immutable afterwards.
type Intent struct {
	Action       ActionKind        `json:"action"`
	Target       string            `json:"target"`
	Parameters   map[string]string `json:"parameters"`
	Confidence   float64           `json:"confidence"`
	OriginalText string            `json:"original_command"`
}

// Parameter returns the named parameter or fallback when absent.
func (i Intent) Parameter(key, fallback string) string {
	if v, ok := i.Parameters[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Actionable reports whether the intent clears the confidence gate and may be
// routed to the dispatcher. Below-gate intents are surfaced to the caller as
// clarification requests and counted separately from failures.
func (i Intent) Actionable() bool {
	return i.Confidence >= ConfidenceGate
}
