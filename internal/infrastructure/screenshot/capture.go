// Package screenshot implements the diagnostic-capture hook invoked when the
// dispatch boundary catches an unexpected fault.
package screenshot

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/pkg/filesystem"
	"github.com/doeshing/smartos-go/internal/ports"
)

// Grabber captures a screenshot into <dir>/error_<timestamp>_<id>.png using
// the platform screenshot tool. Best-effort: callers treat a capture failure
// as "no artifact", never as a fault of its own.
type Grabber struct {
	dir  string
	goos string

	run func(argv []string) error
}

// New builds a grabber writing under ~/.smartos/screenshots, or under the
// given directory when non-empty.
func New(dir string) *Grabber {
	if dir == "" {
		dir = filepath.Join(filesystem.DataDir(), "screenshots")
	}
	return &Grabber{
		dir:  dir,
		goos: runtime.GOOS,
		run:  func(argv []string) error { return exec.Command(argv[0], argv[1:]...).Run() },
	}
}

// Capture implements ports.DiagnosticCapture.
func (g *Grabber) Capture() (string, error) {
	if err := os.MkdirAll(g.dir, domain.DirectoryPermissions); err != nil {
		return "", err
	}

	name := fmt.Sprintf("error_%s_%s.png",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8])
	path := filepath.Join(g.dir, name)

	argv, err := g.command(path)
	if err != nil {
		return "", err
	}
	if err := g.run(argv); err != nil {
		return "", err
	}
	return path, nil
}

func (g *Grabber) command(path string) ([]string, error) {
	switch g.goos {
	case "darwin":
		return []string{"screencapture", "-x", path}, nil
	case "windows":
		return []string{"powershell", "-NoProfile", "-Command",
			fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms;`+
				`$b=[System.Windows.Forms.SystemInformation]::VirtualScreen;`+
				`$bmp=New-Object Drawing.Bitmap $b.Width,$b.Height;`+
				`[Drawing.Graphics]::FromImage($bmp).CopyFromScreen($b.Location,[Drawing.Point]::Empty,$b.Size);`+
				`$bmp.Save('%s')`, path)}, nil
	case "linux":
		return []string{"gnome-screenshot", "-f", path}, nil
	}
	return nil, fmt.Errorf("screenshot not supported on %s", g.goos)
}

var _ ports.DiagnosticCapture = (*Grabber)(nil)
