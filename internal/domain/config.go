package domain

import "time"

// Config mirrors ~/.smartos/config.yaml.
type Config struct {
	// VoiceEnabled toggles the voice front-end; the core pipeline is
	// unaffected either way.
	VoiceEnabled bool `yaml:"voice_enabled"`
	// ResponseTimeout is advisory, in fractional seconds: dispatch results
	// exceeding it are flagged as too slow by consumers, never auto-failed
	// by the dispatcher itself.
	ResponseTimeout float64  `yaml:"response_timeout"`
	LogLevel        string   `yaml:"log_level"`
	SupportedApps   []string `yaml:"supported_apps"`
	FallbackMode    bool     `yaml:"fallback_mode"`
	// ScreenshotOnError gates the diagnostic-capture hook at the dispatch
	// failure boundary.
	ScreenshotOnError bool `yaml:"screenshot_on_error"`
	// BackgroundExecution gates the periodic metrics monitor.
	BackgroundExecution bool `yaml:"background_execution"`

	Monitor MonitorSettings `yaml:"monitor"`
	Storage StorageSettings `yaml:"storage"`
}

// MonitorSettings configures the background metrics monitor.
type MonitorSettings struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

// StorageSettings selects the execution-log backend.
type StorageSettings struct {
	// Backend is "sqlite" or "file".
	Backend string `yaml:"backend"`
	// DataDir overrides the default ~/.smartos data directory.
	DataDir string `yaml:"data_dir"`
}

// Storage backend names.
const (
	StorageBackendSQLite = "sqlite"
	StorageBackendFile   = "file"
)

// ResponseTimeoutDuration converts the configured float seconds to a duration.
func (c Config) ResponseTimeoutDuration() time.Duration {
	return time.Duration(c.ResponseTimeout * float64(time.Second))
}

// MonitorInterval returns the monitor period, falling back to the default.
func (c Config) MonitorInterval() time.Duration {
	if c.Monitor.IntervalSeconds > 0 {
		return time.Duration(c.Monitor.IntervalSeconds) * time.Second
	}
	return DefaultMonitorInterval
}
