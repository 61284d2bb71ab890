package commands

// Default limits.
const (
	// DefaultHistoryLimit is the default number of records to display.
	DefaultHistoryLimit = 20
)

// Error messages.
const (
	ErrPipelineUnavailable = "pipeline unavailable"
	ErrLogUnavailable      = "execution log unavailable"
)

// User-facing messages.
const (
	MsgNoRecords = "No execution records yet."
	MsgReady     = "SmartOS is ready. How can I help you? (type 'exit' to quit)"
	MsgGoodbye   = "Goodbye!"
	MsgTooSlow   = "(response was slower than the configured timeout)"
	PromptText   = "SmartOS> "
)
