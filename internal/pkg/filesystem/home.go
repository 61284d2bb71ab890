package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// DataDir returns the SmartOS data directory (~/.smartos by default).
func DataDir() string {
	return filepath.Join(UserHomeDir(), ".smartos")
}
