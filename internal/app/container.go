// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"os"

	"github.com/doeshing/smartos-go/internal/dispatch"
	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/infrastructure/config"
	"github.com/doeshing/smartos-go/internal/infrastructure/dashboard"
	"github.com/doeshing/smartos-go/internal/infrastructure/execlog"
	"github.com/doeshing/smartos-go/internal/infrastructure/launcher"
	"github.com/doeshing/smartos-go/internal/infrastructure/screenshot"
	"github.com/doeshing/smartos-go/internal/infrastructure/syscontrol"
	"github.com/doeshing/smartos-go/internal/infrastructure/voice"
	"github.com/doeshing/smartos-go/internal/metrics"
	"github.com/doeshing/smartos-go/internal/nlu"
	"github.com/doeshing/smartos-go/internal/pkg/logger"
	"github.com/doeshing/smartos-go/internal/ports"
	"github.com/doeshing/smartos-go/internal/services"
)

// Container holds the constructed dependency graph.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Logger       ports.Logger
	Pipeline     *services.Pipeline
	ExecutionLog ports.ExecutionLog
	Live         *metrics.Live
	Monitor      *metrics.Monitor
	Dashboard    *dashboard.Generator
	Speaker      ports.Speaker
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.LogLevel, verbose)

	var store ports.ExecutionLog
	if cfg.Storage.Backend == domain.StorageBackendFile {
		store = execlog.NewFileStore("")
	} else {
		store = execlog.NewSQLiteStore(cfg.Storage.DataDir)
	}

	live := &metrics.Live{}
	dash := dashboard.New("")

	dispatcher := &dispatch.Dispatcher{
		Launcher:       launcher.New(log),
		System:         syscontrol.New(log),
		Capture:        screenshot.New(""),
		Logger:         log,
		CaptureOnError: cfg.ScreenshotOnError,
	}

	pipeline := &services.Pipeline{
		Classifier: nlu.New(),
		Dispatcher: dispatcher,
		Log:        store,
		Live:       live,
		Logger:     log,
		Config:     cfg,
	}

	monitor := &metrics.Monitor{
		Log:      store,
		Renderer: dash,
		Logger:   log,
		Interval: cfg.MonitorInterval(),
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Logger:       log,
		Pipeline:     pipeline,
		ExecutionLog: store,
		Live:         live,
		Monitor:      monitor,
		Dashboard:    dash,
		Speaker:      voice.New(os.Stdout, cfg.VoiceEnabled),
	}, nil
}
