// Package voice is the thin front-end surface for spoken responses. Audio
// capture and recognition live outside the core; this adapter only delivers
// responses, printing them always and speaking them best-effort when a
// platform TTS tool exists.
package voice

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/ports"
)

// ConsoleSpeaker prints responses with the SmartOS prefix and optionally
// shells out to the platform TTS command.
type ConsoleSpeaker struct {
	out io.Writer
	tts bool

	speak func(text string) error
}

// New builds a speaker. When tts is false responses are print-only.
func New(out io.Writer, tts bool) *ConsoleSpeaker {
	return &ConsoleSpeaker{out: out, tts: tts, speak: speakPlatform}
}

// Say implements ports.Speaker. Printing never fails the pipeline; a TTS
// failure is swallowed since speech is an optional surface.
func (s *ConsoleSpeaker) Say(text string) error {
	fmt.Fprintf(s.out, "SmartOS: %s\n", text)
	if s.tts {
		_ = s.speak(text)
	}
	return nil
}

// Enabled implements ports.Speaker.
func (s *ConsoleSpeaker) Enabled() bool {
	return true
}

// speakPlatform starts the platform TTS tool fire-and-forget.
func speakPlatform(text string) error {
	rate := strconv.Itoa(domain.DefaultSpeechRate)
	var argv []string
	switch runtime.GOOS {
	case "darwin":
		argv = []string{"say", "-r", rate, text}
	case "linux":
		argv = []string{"espeak", "-s", rate, text}
	default:
		return fmt.Errorf("no TTS tool on %s", runtime.GOOS)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

var _ ports.Speaker = (*ConsoleSpeaker)(nil)
