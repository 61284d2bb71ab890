// Package dispatch executes classified intents against system-level action
// handlers under a uniform failure boundary.
//
// The boundary guarantees that nothing escapes a single command's dispatch:
// handled branch outcomes come back as failure results, and any unexpected
// fault is recovered, recorded into the result's Error field, and optionally
// turned into a diagnostic capture. The pipeline caller is never terminated
// by one command's fault.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/ports"
)

// Dispatcher routes intents to the four action handlers.
type Dispatcher struct {
	Launcher ports.AppLauncher
	System   ports.SystemController
	Capture  ports.DiagnosticCapture
	Logger   ports.Logger

	// WorkDir is where file operations and generated content land.
	// Empty means the process working directory.
	WorkDir string
	// CaptureOnError gates the diagnostic capture hook.
	CaptureOnError bool
}

// Dispatch executes the intent and reports the outcome. ExecutionTime is
// measured around the entire call regardless of outcome. The unknown action
// short-circuits to a message-only failure without entering the boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, intent domain.Intent) domain.ExecutionResult {
	start := time.Now()

	if intent.Action == domain.ActionUnknown {
		return domain.ExecutionResult{
			Message:       fmt.Sprintf("Unknown command: %s", intent.OriginalText),
			ExecutionTime: time.Since(start),
		}
	}

	result := d.guarded(ctx, intent)
	result.ExecutionTime = time.Since(start)
	return result
}

// guarded invokes the handler for the intent's action kind inside the
// recover boundary.
func (d *Dispatcher) guarded(ctx context.Context, intent domain.Intent) (result domain.ExecutionResult) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		result = domain.ExecutionResult{
			Message: fmt.Sprintf("Failed to execute %s: unexpected fault", intent.Action),
			Error:   fmt.Sprint(r),
		}
		if d.Logger != nil {
			d.Logger.Error("dispatch fault recovered", fmt.Errorf("%v", r), map[string]interface{}{
				"action": string(intent.Action),
				"target": intent.Target,
			})
		}
		if d.CaptureOnError && d.Capture != nil {
			if path, err := d.Capture.Capture(); err == nil {
				result.Screenshot = path
			}
		}
	}()

	switch intent.Action {
	case domain.ActionOpenApplication:
		return d.launchApplication(intent)
	case domain.ActionFileOperation:
		return d.fileOperation(intent)
	case domain.ActionSystemControl:
		return d.systemControl(intent)
	case domain.ActionContentCreation:
		return d.createContent(intent)
	default:
		return domain.ExecutionResult{
			Message: fmt.Sprintf("Unknown command: %s", intent.OriginalText),
		}
	}
}

// launchApplication looks up the target in the platform command table and
// starts it fire-and-forget: success is reported as soon as the launch call
// itself does not fail, without waiting for the process.
func (d *Dispatcher) launchApplication(intent domain.Intent) domain.ExecutionResult {
	app := intent.Target
	if _, ok := d.Launcher.Command(app); !ok {
		return domain.ExecutionResult{
			Message: fmt.Sprintf("Application '%s' not supported or not found", app),
		}
	}

	if err := d.Launcher.Launch(app); err != nil {
		return domain.ExecutionResult{
			Message: fmt.Sprintf("Failed to launch %s: %v", app, err),
		}
	}

	return domain.ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("Successfully launched %s", app),
	}
}

// systemControl asks the controller to apply the action; success means the
// command was accepted, the state change itself has deferred effect.
func (d *Dispatcher) systemControl(intent domain.Intent) domain.ExecutionResult {
	if err := d.System.Apply(intent.Target); err != nil {
		return domain.ExecutionResult{
			Message: fmt.Sprintf("System control failed: %v", err),
		}
	}
	return domain.ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("System %s initiated", intent.Target),
	}
}

var _ ports.Dispatcher = (*Dispatcher)(nil)
