package dispatch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/doeshing/smartos-go/internal/domain"
)

// fileOperation implements the create, write and delete verbs. Delete on a
// missing file is a normal "not found" outcome, not a fault; any other verb
// reports "not implemented" without raising.
func (d *Dispatcher) fileOperation(intent domain.Intent) domain.ExecutionResult {
	filename := intent.Parameter(domain.ParamFilename, domain.DefaultFilename)
	path := d.resolve(filename)

	switch intent.Target {
	case "create":
		if err := touch(path); err != nil {
			return fileFailure(err)
		}
		return domain.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Created file: %s", filename),
		}

	case "write":
		content := intent.Parameter(domain.ParamContent, domain.DefaultFileContent)
		if err := os.WriteFile(path, []byte(content), domain.DataFilePermissions); err != nil {
			return fileFailure(err)
		}
		return domain.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Written content to: %s", filename),
		}

	case "delete":
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				return domain.ExecutionResult{
					Message: fmt.Sprintf("File not found: %s", filename),
				}
			}
			return fileFailure(err)
		}
		return domain.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Deleted file: %s", filename),
		}

	default:
		return domain.ExecutionResult{
			Message: fmt.Sprintf("File operation '%s' not implemented", intent.Target),
		}
	}
}

func (d *Dispatcher) resolve(name string) string {
	if d.WorkDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.WorkDir, name)
}

// touch creates the file when missing and leaves existing content alone.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, domain.DataFilePermissions)
	if err != nil {
		return err
	}
	return f.Close()
}

func fileFailure(err error) domain.ExecutionResult {
	return domain.ExecutionResult{
		Message: fmt.Sprintf("File operation failed: %v", err),
	}
}
