package dispatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doeshing/smartos-go/internal/domain"
)

func TestDispatchUnknownShortCircuits(t *testing.T) {
	launcher := &stubLauncher{}
	d := &Dispatcher{Launcher: launcher, System: &stubSystem{}}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action:       domain.ActionUnknown,
		OriginalText: "asdkj qwoei",
	})

	if result.Success {
		t.Fatal("unknown intent must not succeed")
	}
	if !strings.Contains(result.Message, "Unknown command: asdkj qwoei") {
		t.Fatalf("message = %q", result.Message)
	}
	if len(launcher.launched) != 0 {
		t.Fatal("unknown intent must not touch handlers")
	}
	if result.ExecutionTime < 0 {
		t.Fatalf("execution time = %v", result.ExecutionTime)
	}
}

func TestDispatchUnsupportedApplication(t *testing.T) {
	launcher := &stubLauncher{table: map[string]string{"notepad": "gedit"}}
	d := &Dispatcher{Launcher: launcher, System: &stubSystem{}}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action: domain.ActionOpenApplication,
		Target: "nonexistent_app",
	})

	if result.Success {
		t.Fatal("missing table entry must fail")
	}
	if !strings.Contains(result.Message, "'nonexistent_app' not supported") {
		t.Fatalf("message = %q", result.Message)
	}
	if len(launcher.launched) != 0 {
		t.Fatal("no process may be started for an unsupported app")
	}
}

func TestDispatchLaunchesApplication(t *testing.T) {
	launcher := &stubLauncher{table: map[string]string{"notepad": "gedit"}}
	d := &Dispatcher{Launcher: launcher, System: &stubSystem{}}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action: domain.ActionOpenApplication,
		Target: "notepad",
	})

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(launcher.launched) != 1 || launcher.launched[0] != "notepad" {
		t.Fatalf("launched = %v", launcher.launched)
	}
}

func TestDispatchFileOperations(t *testing.T) {
	dir := t.TempDir()
	d := &Dispatcher{Launcher: &stubLauncher{}, System: &stubSystem{}, WorkDir: dir}
	ctx := context.Background()

	// create with explicit filename
	result := d.Dispatch(ctx, domain.Intent{
		Action:     domain.ActionFileOperation,
		Target:     "create",
		Parameters: map[string]string{domain.ParamFilename: "test.txt"},
	})
	if !result.Success {
		t.Fatalf("create failed: %+v", result)
	}
	if _, err := os.Stat(filepath.Join(dir, "test.txt")); err != nil {
		t.Fatalf("created file missing: %v", err)
	}

	// create defaults to untitled.txt
	result = d.Dispatch(ctx, domain.Intent{Action: domain.ActionFileOperation, Target: "create"})
	if !result.Success {
		t.Fatalf("default create failed: %+v", result)
	}
	if _, err := os.Stat(filepath.Join(dir, domain.DefaultFilename)); err != nil {
		t.Fatalf("default file missing: %v", err)
	}

	// write overwrites with default content
	result = d.Dispatch(ctx, domain.Intent{
		Action:     domain.ActionFileOperation,
		Target:     "write",
		Parameters: map[string]string{domain.ParamFilename: "test.txt"},
	})
	if !result.Success {
		t.Fatalf("write failed: %+v", result)
	}
	data, err := os.ReadFile(filepath.Join(dir, "test.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != domain.DefaultFileContent {
		t.Fatalf("content = %q", data)
	}

	// delete existing
	result = d.Dispatch(ctx, domain.Intent{
		Action:     domain.ActionFileOperation,
		Target:     "delete",
		Parameters: map[string]string{domain.ParamFilename: "test.txt"},
	})
	if !result.Success {
		t.Fatalf("delete failed: %+v", result)
	}
}

func TestDispatchDeleteMissingFileIsNormalFailure(t *testing.T) {
	d := &Dispatcher{Launcher: &stubLauncher{}, System: &stubSystem{}, WorkDir: t.TempDir()}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action:     domain.ActionFileOperation,
		Target:     "delete",
		Parameters: map[string]string{domain.ParamFilename: "ghost.txt"},
	})

	if result.Success {
		t.Fatal("delete on missing file must fail")
	}
	if !strings.Contains(result.Message, "File not found: ghost.txt") {
		t.Fatalf("message = %q", result.Message)
	}
	if result.Error != "" {
		t.Fatalf("missing file is not a fault, error = %q", result.Error)
	}
}

func TestDispatchUnimplementedFileVerb(t *testing.T) {
	d := &Dispatcher{Launcher: &stubLauncher{}, System: &stubSystem{}, WorkDir: t.TempDir()}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action: domain.ActionFileOperation,
		Target: "copy",
	})

	if result.Success {
		t.Fatal("unimplemented verb must fail")
	}
	if !strings.Contains(result.Message, "'copy' not implemented") {
		t.Fatalf("message = %q", result.Message)
	}
}

func TestDispatchSystemControl(t *testing.T) {
	system := &stubSystem{}
	d := &Dispatcher{Launcher: &stubLauncher{}, System: system}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action: domain.ActionSystemControl,
		Target: "shutdown",
	})

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if !strings.Contains(result.Message, "System shutdown initiated") {
		t.Fatalf("message = %q", result.Message)
	}
	if len(system.applied) != 1 || system.applied[0] != "shutdown" {
		t.Fatalf("applied = %v", system.applied)
	}

	system.err = errors.New("sudo rejected")
	result = d.Dispatch(context.Background(), domain.Intent{
		Action: domain.ActionSystemControl,
		Target: "restart",
	})
	if result.Success {
		t.Fatal("controller error must fail the dispatch")
	}
	if !strings.Contains(result.Message, "System control failed") {
		t.Fatalf("message = %q", result.Message)
	}
}

func TestDispatchContentCreation(t *testing.T) {
	dir := t.TempDir()
	launcher := &stubLauncher{}
	d := &Dispatcher{Launcher: launcher, System: &stubSystem{}, WorkDir: dir}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action:     domain.ActionContentCreation,
		Target:     "essay",
		Parameters: map[string]string{domain.ParamTopic: "climate change"},
	})

	if !result.Success {
		t.Fatalf("content creation failed: %+v", result)
	}
	path := filepath.Join(dir, "essay_climate_change.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("rendered file missing: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Essay on climate change") {
		t.Fatalf("content = %q", data)
	}
	if len(launcher.opened) != 1 || launcher.opened[0] != path {
		t.Fatalf("opened = %v", launcher.opened)
	}
}

func TestDispatchContentCreationGenericFallback(t *testing.T) {
	dir := t.TempDir()
	d := &Dispatcher{Launcher: &stubLauncher{}, System: &stubSystem{}, WorkDir: dir}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action: domain.ActionContentCreation,
		Target: "poem",
	})

	if !result.Success {
		t.Fatalf("fallback creation failed: %+v", result)
	}
	data, err := os.ReadFile(filepath.Join(dir, "poem_general_topic.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Content about general topic" {
		t.Fatalf("content = %q", data)
	}
}

func TestDispatchContentCreationSurvivesEditorFailure(t *testing.T) {
	d := &Dispatcher{
		Launcher: &stubLauncher{openErr: errors.New("no editor")},
		System:   &stubSystem{},
		WorkDir:  t.TempDir(),
	}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action:     domain.ActionContentCreation,
		Target:     "report",
		Parameters: map[string]string{domain.ParamTopic: "uptime"},
	})

	if !result.Success {
		t.Fatalf("editor failure must not be fatal: %+v", result)
	}
}

func TestDispatchRecoversUnexpectedFault(t *testing.T) {
	capture := &stubCapture{path: "screenshots/error_1.png"}
	d := &Dispatcher{
		Launcher:       &panicLauncher{},
		System:         &stubSystem{},
		Capture:        capture,
		CaptureOnError: true,
	}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action: domain.ActionOpenApplication,
		Target: "notepad",
	})

	if result.Success {
		t.Fatal("recovered fault must fail")
	}
	if !strings.Contains(result.Error, "launcher exploded") {
		t.Fatalf("error = %q", result.Error)
	}
	if !capture.called {
		t.Fatal("diagnostic capture not invoked")
	}
	if result.Screenshot != capture.path {
		t.Fatalf("screenshot = %q, want %q", result.Screenshot, capture.path)
	}
}

func TestDispatchFaultWithoutCaptureHook(t *testing.T) {
	d := &Dispatcher{Launcher: &panicLauncher{}, System: &stubSystem{}}

	result := d.Dispatch(context.Background(), domain.Intent{
		Action: domain.ActionOpenApplication,
		Target: "notepad",
	})

	if result.Success {
		t.Fatal("recovered fault must fail")
	}
	if result.Screenshot != "" {
		t.Fatalf("screenshot = %q, want none", result.Screenshot)
	}
}

type stubLauncher struct {
	table     map[string]string
	launched  []string
	opened    []string
	launchErr error
	openErr   error
}

func (s *stubLauncher) Command(app string) (string, bool) {
	cmd, ok := s.table[app]
	return cmd, ok
}

func (s *stubLauncher) Launch(app string) error {
	if s.launchErr != nil {
		return s.launchErr
	}
	s.launched = append(s.launched, app)
	return nil
}

func (s *stubLauncher) Open(path string) error {
	if s.openErr != nil {
		return s.openErr
	}
	s.opened = append(s.opened, path)
	return nil
}

type panicLauncher struct{}

func (panicLauncher) Command(string) (string, bool) { return "boom", true }
func (panicLauncher) Launch(string) error           { panic("launcher exploded") }
func (panicLauncher) Open(string) error             { return nil }

type stubSystem struct {
	applied []string
	err     error
}

func (s *stubSystem) Apply(action string) error {
	if s.err != nil {
		return s.err
	}
	s.applied = append(s.applied, action)
	return nil
}

type stubCapture struct {
	path   string
	err    error
	called bool
}

func (s *stubCapture) Capture() (string, error) {
	s.called = true
	return s.path, s.err
}
