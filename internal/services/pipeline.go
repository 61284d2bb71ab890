// Package services orchestrates the command pipeline end-to-end:
// classify -> confidence gate -> dispatch -> log append -> metrics update.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/metrics"
	"github.com/doeshing/smartos-go/internal/ports"
)

// Response is the canonical outcome propagated back to the front-end. Every
// processed command yields a response text derived from the result message,
// even on failure.
type Response struct {
	Text   string
	Intent domain.Intent
	Result *domain.ExecutionResult
	// ClarificationNeeded marks a below-gate classification that was not
	// routed to dispatch; counted separately from failures.
	ClarificationNeeded bool
	// TooSlow flags results exceeding the advisory response timeout. The
	// dispatcher never auto-fails on it; consumers decide what to show.
	TooSlow bool
}

// Pipeline processes commands synchronously, one at a time. It is the sole
// writer to the execution log and live metrics by contract.
type Pipeline struct {
	Classifier ports.Classifier
	Dispatcher ports.Dispatcher
	Log        ports.ExecutionLog
	Live       *metrics.Live
	Logger     ports.Logger
	Config     domain.Config

	// Clock and NewID are swappable for tests.
	Clock func() time.Time
	NewID func() string
}

// Process handles one utterance. Nothing a single command does can terminate
// the caller: dispatch faults come back inside the result, and a log-append
// failure is reported but does not fail the command.
func (p *Pipeline) Process(ctx context.Context, text string) (Response, error) {
	if p.Classifier == nil || p.Dispatcher == nil || p.Log == nil || p.Live == nil || p.Logger == nil {
		return Response{}, errors.New("services.Pipeline dependencies not satisfied")
	}

	text = strings.TrimSpace(text)
	intent := p.Classifier.Classify(text)
	p.Logger.Debug("classified command", map[string]interface{}{
		"action":     string(intent.Action),
		"target":     intent.Target,
		"confidence": intent.Confidence,
	})

	if !intent.Actionable() {
		p.Live.ObserveClarification()
		return Response{
			Text:                fmt.Sprintf("I'm not sure how to handle: '%s'. Could you rephrase?", text),
			Intent:              intent,
			ClarificationNeeded: true,
		}, nil
	}

	result := p.Dispatcher.Dispatch(ctx, intent)

	record := domain.ExecutionRecord{
		ID:        p.newID(),
		Timestamp: p.now(),
		Command:   text,
		Intent:    intent,
		Result:    result,
	}
	if err := p.Log.Append(record); err != nil {
		p.Logger.Warn("execution log append failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	p.Live.Observe(result)

	resp := Response{
		Intent: intent,
		Result: &result,
	}
	if result.Success {
		resp.Text = result.Message
	} else {
		resp.Text = fmt.Sprintf("Failed to execute command: %s", failureDetail(result))
	}
	if timeout := p.Config.ResponseTimeoutDuration(); timeout > 0 && result.ExecutionTime > timeout {
		resp.TooSlow = true
	}
	return resp, nil
}

func failureDetail(result domain.ExecutionResult) string {
	if result.Message != "" {
		return result.Message
	}
	if result.Error != "" {
		return result.Error
	}
	return "Unknown error"
}

func (p *Pipeline) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

func (p *Pipeline) newID() string {
	if p.NewID != nil {
		return p.NewID()
	}
	return uuid.NewString()
}
