// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). Following the Ports and Adapters
// (Hexagonal) pattern, these interfaces allow the pipeline to remain
// independent of specific implementations like process launchers, databases,
// or CLI frameworks.
package ports

import (
	"context"

	"github.com/doeshing/smartos-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.smartos/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Classifier maps a raw utterance to a structured Intent. It is a total
// function: classification never fails, unmatched text yields the unknown
// action with zero confidence.
type Classifier interface {
	Classify(text string) domain.Intent
}

// Dispatcher executes a classified intent under the uniform failure boundary.
// No fault crosses the boundary: every outcome, including unexpected ones, is
// folded into the returned ExecutionResult.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent domain.Intent) domain.ExecutionResult
}

// AppLauncher resolves application labels against the platform command table
// and starts them fire-and-forget: Launch returns as soon as the start call
// succeeds, without waiting for the process to exit.
type AppLauncher interface {
	// Command returns the platform invocation for an application label.
	// A missing label is a normal "unsupported app" outcome.
	Command(app string) (string, bool)
	Launch(app string) error
	// Open opens a file in the platform editor, also fire-and-forget.
	Open(path string) error
}

// SystemController applies privileged system actions (shutdown, restart,
// lock). Success means the command was accepted, not that the state change
// completed; these operations have deferred effect.
type SystemController interface {
	Apply(action string) error
}

// DiagnosticCapture grabs a diagnostic artifact (a screenshot) when the
// dispatch boundary catches an unexpected fault. Best-effort by design.
type DiagnosticCapture interface {
	Capture() (string, error)
}

// ExecutionLog is the append-only store of execution records.
type ExecutionLog interface {
	Append(record domain.ExecutionRecord) error
	Records() ([]domain.ExecutionRecord, error)
	Clear() error
	Path() string
}

// SnapshotRenderer publishes a metrics snapshot for external consumers
// (e.g. the HTML dashboard). Returns the artifact location.
type SnapshotRenderer interface {
	Render(snapshot domain.MetricsSnapshot) (string, error)
}

// Speaker delivers user-visible responses. Every processed command yields a
// spoken or printed response derived from the result message, even on
// failure.
type Speaker interface {
	Say(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external
// services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
