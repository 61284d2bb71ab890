// Package syscontrol applies privileged system actions (shutdown, restart,
// lock) through the host OS tooling.
package syscontrol

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/doeshing/smartos-go/internal/ports"
)

// Controller implements ports.SystemController for the host platform.
type Controller struct {
	goos   string
	logger ports.Logger

	// run is swappable for tests.
	run func(argv []string) error
}

// New builds a controller for the current GOOS.
func New(logger ports.Logger) *Controller {
	return &Controller{
		goos:   runtime.GOOS,
		logger: logger,
		run:    runCommand,
	}
}

// Apply builds and executes the privileged command for the action. Success
// means the command was accepted; shutdown and restart are scheduled with a
// delay, so the effect is deferred.
func (c *Controller) Apply(action string) error {
	argv, err := c.command(action)
	if err != nil {
		return err
	}
	if c.logger != nil {
		c.logger.Info("system control", map[string]interface{}{
			"action":  action,
			"command": argv,
		})
	}
	return c.run(argv)
}

func (c *Controller) command(action string) ([]string, error) {
	if c.goos == "windows" {
		switch action {
		case "shutdown":
			return []string{"shutdown", "/s", "/t", "60"}, nil
		case "restart":
			return []string{"shutdown", "/r", "/t", "60"}, nil
		case "lock":
			return []string{"rundll32.exe", "user32.dll,LockWorkStation"}, nil
		}
		return nil, fmt.Errorf("system action %q not supported", action)
	}

	switch action {
	case "shutdown":
		return []string{"sudo", "shutdown", "-h", "+1"}, nil
	case "restart":
		return []string{"sudo", "shutdown", "-r", "+1"}, nil
	case "lock":
		return []string{"gnome-screensaver-command", "-l"}, nil
	}
	return nil, fmt.Errorf("system action %q not supported", action)
}

func runCommand(argv []string) error {
	return exec.Command(argv[0], argv[1:]...).Run()
}

var _ ports.SystemController = (*Controller)(nil)
