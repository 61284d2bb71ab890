package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/metrics"
	"github.com/doeshing/smartos-go/internal/pkg/logger"
)

func TestProcessSuccessfulCommand(t *testing.T) {
	log := &memoryLog{}
	p := newPipeline(t, log, &stubDispatcher{result: domain.ExecutionResult{
		Success:       true,
		Message:       "Successfully launched notepad",
		ExecutionTime: 300 * time.Millisecond,
	}})

	resp, err := p.Process(context.Background(), "open notepad")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "Successfully launched notepad" {
		t.Fatalf("text = %q", resp.Text)
	}
	if resp.ClarificationNeeded || resp.TooSlow {
		t.Fatalf("flags = %+v", resp)
	}

	if len(log.records) != 1 {
		t.Fatalf("records appended = %d, want 1", len(log.records))
	}
	record := log.records[0]
	if record.ID != "fixed-id" {
		t.Fatalf("record id = %q", record.ID)
	}
	if record.Command != "open notepad" {
		t.Fatalf("record command = %q", record.Command)
	}
	if !record.Result.Success {
		t.Fatal("record result must carry the dispatch outcome")
	}

	live := p.Live.Snapshot()
	if live.TotalCommands != 1 || live.SuccessfulCommands != 1 {
		t.Fatalf("live counters = %+v", live)
	}
}

func TestProcessFailedCommand(t *testing.T) {
	log := &memoryLog{}
	p := newPipeline(t, log, &stubDispatcher{result: domain.ExecutionResult{
		Success: false,
		Message: "Application 'xyz' not supported or not found",
	}})

	resp, err := p.Process(context.Background(), "open notepad")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.Text, "Failed to execute command:") {
		t.Fatalf("text = %q", resp.Text)
	}
	if !strings.Contains(resp.Text, "not supported") {
		t.Fatalf("text = %q", resp.Text)
	}

	live := p.Live.Snapshot()
	if live.FailedCommands != 1 {
		t.Fatalf("live counters = %+v", live)
	}
}

func TestProcessClarificationBelowGate(t *testing.T) {
	log := &memoryLog{}
	dispatcher := &stubDispatcher{}
	p := newPipeline(t, log, dispatcher)
	p.Classifier = &stubClassifier{intent: domain.Intent{
		Action:     domain.ActionUnknown,
		Confidence: 0.0,
	}}

	resp, err := p.Process(context.Background(), "asdkj qwoei")
	if err != nil {
		t.Fatal(err)
	}
	if !resp.ClarificationNeeded {
		t.Fatal("expected clarification")
	}
	if !strings.Contains(resp.Text, "I'm not sure how to handle: 'asdkj qwoei'") {
		t.Fatalf("text = %q", resp.Text)
	}
	if dispatcher.calls != 0 {
		t.Fatal("below-gate command must not be dispatched")
	}
	if len(log.records) != 0 {
		t.Fatal("below-gate command must not be logged")
	}

	live := p.Live.Snapshot()
	if live.TotalCommands != 0 {
		t.Fatalf("clarification must not count as a command: %+v", live)
	}
	if live.Clarifications != 1 {
		t.Fatalf("clarifications = %d, want 1", live.Clarifications)
	}
}

func TestProcessTrimsInput(t *testing.T) {
	log := &memoryLog{}
	classifier := &stubClassifier{intent: domain.Intent{
		Action:     domain.ActionOpenApplication,
		Target:     "notepad",
		Confidence: 0.90,
	}}
	p := newPipeline(t, log, &stubDispatcher{result: domain.ExecutionResult{Success: true, Message: "ok"}})
	p.Classifier = classifier

	if _, err := p.Process(context.Background(), "  open notepad  "); err != nil {
		t.Fatal(err)
	}
	if classifier.seen != "open notepad" {
		t.Fatalf("classifier saw %q", classifier.seen)
	}
	if log.records[0].Command != "open notepad" {
		t.Fatalf("record command = %q", log.records[0].Command)
	}
}

func TestProcessSurvivesLogAppendFailure(t *testing.T) {
	log := &memoryLog{appendErr: errors.New("disk full")}
	p := newPipeline(t, log, &stubDispatcher{result: domain.ExecutionResult{Success: true, Message: "ok"}})

	resp, err := p.Process(context.Background(), "open notepad")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "ok" {
		t.Fatalf("text = %q", resp.Text)
	}
	// Live counters still advance when persistence is down.
	if p.Live.Snapshot().TotalCommands != 1 {
		t.Fatal("live counters must advance despite append failure")
	}
}

func TestProcessFlagsSlowResult(t *testing.T) {
	p := newPipeline(t, &memoryLog{}, &stubDispatcher{result: domain.ExecutionResult{
		Success:       true,
		Message:       "ok",
		ExecutionTime: 10 * time.Second,
	}})
	p.Config = domain.Config{ResponseTimeout: 3.0}

	resp, err := p.Process(context.Background(), "open notepad")
	if err != nil {
		t.Fatal(err)
	}
	if !resp.TooSlow {
		t.Fatal("expected TooSlow for a 10s result against a 3s timeout")
	}
	if !resp.Result.Success {
		t.Fatal("slow results stay successful")
	}
}

func TestProcessMissingDependencies(t *testing.T) {
	p := &Pipeline{}
	if _, err := p.Process(context.Background(), "open notepad"); err == nil {
		t.Fatal("expected dependency error")
	}
}

func newPipeline(t *testing.T, log *memoryLog, dispatcher *stubDispatcher) *Pipeline {
	t.Helper()
	return &Pipeline{
		Classifier: &stubClassifier{intent: domain.Intent{
			Action:     domain.ActionOpenApplication,
			Target:     "notepad",
			Confidence: 0.90,
		}},
		Dispatcher: dispatcher,
		Log:        log,
		Live:       &metrics.Live{},
		Logger:     logger.NewNop(),
		Clock:      func() time.Time { return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) },
		NewID:      func() string { return "fixed-id" },
	}
}

type stubClassifier struct {
	intent domain.Intent
	seen   string
}

func (s *stubClassifier) Classify(text string) domain.Intent {
	s.seen = text
	intent := s.intent
	intent.OriginalText = text
	return intent
}

type stubDispatcher struct {
	result domain.ExecutionResult
	calls  int
}

func (s *stubDispatcher) Dispatch(_ context.Context, _ domain.Intent) domain.ExecutionResult {
	s.calls++
	return s.result
}

type memoryLog struct {
	records   []domain.ExecutionRecord
	appendErr error
}

func (m *memoryLog) Append(record domain.ExecutionRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *memoryLog) Records() ([]domain.ExecutionRecord, error) { return m.records, nil }
func (m *memoryLog) Clear() error                               { m.records = nil; return nil }
func (m *memoryLog) Path() string                               { return "" }
