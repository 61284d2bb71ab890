package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/smartos-go/internal/app"
)

// exitWords end the interactive loop. An external interrupt (ctx cancel) is
// the only other way out; per-command faults never terminate it.
var exitWords = map[string]bool{"exit": true, "quit": true, "stop": true}

// NewDoCommand creates the one-shot 'do' command.
func NewDoCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "do [command text]",
		Short: "Process a single natural-language command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Pipeline == nil {
				return errors.New(ErrPipelineUnavailable)
			}
			resp, err := container.Pipeline.Process(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			speak(container, resp.Text)
			if resp.TooSlow {
				fmt.Fprintln(cmd.OutOrStdout(), MsgTooSlow)
			}
			return nil
		},
	}
}

// NewRunCommand creates the interactive 'run' command.
func NewRunCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive command loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Pipeline == nil {
				return errors.New(ErrPipelineUnavailable)
			}

			ctx := cmd.Context()
			if container.Config.BackgroundExecution {
				container.Monitor.Start(ctx)
				defer container.Monitor.Stop()
			}

			speak(container, MsgReady)
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(cmd.OutOrStdout(), PromptText)
				if !scanner.Scan() {
					break
				}
				if ctx.Err() != nil {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if exitWords[strings.ToLower(line)] {
					speak(container, MsgGoodbye)
					return nil
				}

				resp, err := container.Pipeline.Process(ctx, line)
				if err != nil {
					container.Logger.Error("pipeline error", err, nil)
					speak(container, "Sorry, I encountered an error. Please try again.")
					continue
				}
				speak(container, resp.Text)
				if resp.TooSlow {
					fmt.Fprintln(cmd.OutOrStdout(), MsgTooSlow)
				}
			}
			return scanner.Err()
		},
	}
}

func speak(container *app.Container, text string) {
	if container.Speaker != nil && container.Speaker.Enabled() {
		_ = container.Speaker.Say(text)
		return
	}
	fmt.Printf("SmartOS: %s\n", text)
}
