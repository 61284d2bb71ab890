// Package launcher starts applications through the per-OS command table.
package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/doeshing/smartos-go/internal/ports"
)

// CommandTable maps application labels to platform invocation strings.
// Absence of a label is a normal "unsupported app" outcome, not a
// configuration error.
type CommandTable map[string]string

// TableForOS returns the command table for an operating system family.
func TableForOS(goos string) CommandTable {
	switch goos {
	case "windows":
		return CommandTable{
			"notepad":    "notepad.exe",
			"calculator": "calc.exe",
			"browser":    "start chrome",
			"explorer":   "explorer.exe",
			"cmd":        "cmd.exe",
			"powershell": "powershell.exe",
			"code":       "code",
			"word":       "winword.exe",
			"excel":      "excel.exe",
		}
	case "darwin":
		return CommandTable{
			"notepad":    "open -a TextEdit",
			"calculator": "open -a Calculator",
			"browser":    "open -a Safari",
			"explorer":   "open -a Finder",
			"cmd":        "open -a Terminal",
			"code":       "code",
		}
	default:
		return CommandTable{
			"notepad":    "gedit",
			"calculator": "gnome-calculator",
			"browser":    "firefox",
			"explorer":   "nautilus",
			"cmd":        "gnome-terminal",
			"code":       "code",
		}
	}
}

// editorForOS returns the invocation used to open generated content.
func editorForOS(goos string) string {
	switch goos {
	case "windows":
		return "notepad.exe"
	case "darwin":
		return "open -t"
	default:
		return "gedit"
	}
}

// ProcessLauncher implements ports.AppLauncher for the host platform.
type ProcessLauncher struct {
	table  CommandTable
	editor string
	logger ports.Logger

	// start is swappable for tests; the default starts a detached process.
	start func(invocation string, extra ...string) error
}

// New builds a launcher for the current GOOS.
func New(logger ports.Logger) *ProcessLauncher {
	return &ProcessLauncher{
		table:  TableForOS(runtime.GOOS),
		editor: editorForOS(runtime.GOOS),
		logger: logger,
		start:  startDetached,
	}
}

// Command implements ports.AppLauncher.
func (l *ProcessLauncher) Command(app string) (string, bool) {
	invocation, ok := l.table[app]
	return invocation, ok
}

// Launch starts the application fire-and-forget: it returns once the start
// call succeeds and never waits for the process to exit.
func (l *ProcessLauncher) Launch(app string) error {
	invocation, ok := l.table[app]
	if !ok {
		return fmt.Errorf("application %q not in command table", app)
	}
	if l.logger != nil {
		l.logger.Debug("launching application", map[string]interface{}{
			"app":     app,
			"command": invocation,
		})
	}
	return l.start(invocation)
}

// Open opens a file in the platform editor, also fire-and-forget.
func (l *ProcessLauncher) Open(path string) error {
	return l.start(l.editor, path)
}

// startDetached launches the invocation without waiting for it. The started
// process is reaped in the background so it never becomes a zombie.
func startDetached(invocation string, extra ...string) error {
	parts := strings.Fields(invocation)
	if len(parts) == 0 {
		return fmt.Errorf("empty invocation")
	}
	parts = append(parts, extra...)

	cmd := exec.Command(parts[0], parts[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

var _ ports.AppLauncher = (*ProcessLauncher)(nil)
