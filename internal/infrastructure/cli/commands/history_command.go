package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/smartos-go/internal/app"
	"github.com/doeshing/smartos-go/internal/infrastructure/execlog"
)

// NewHistoryCommand creates the history command with all subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the execution log",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryExportCommand(container),
		newHistoryClearCommand(container),
	)
	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent execution records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRecords(cmd.OutOrStdout(), container, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max records to show")
	return cmd
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export the execution log to a JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ExecutionLog == nil {
				return errors.New(ErrLogUnavailable)
			}
			records, err := container.ExecutionLog.Records()
			if err != nil {
				return err
			}
			if err := execlog.WriteJSONL(args[0], records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s records to %s\n",
				humanize.Comma(int64(len(records))), args[0])
			return nil
		},
	}
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the execution log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ExecutionLog == nil {
				return errors.New(ErrLogUnavailable)
			}
			return container.ExecutionLog.Clear()
		},
	}
}

func listRecords(out io.Writer, container *app.Container, limit int) error {
	if container.ExecutionLog == nil {
		return errors.New(ErrLogUnavailable)
	}
	records, err := container.ExecutionLog.Records()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoRecords)
		return nil
	}

	// Newest last so the terminal shows recent activity at the bottom.
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	for _, record := range records {
		status := "FAIL"
		if record.Result.Success {
			status = "OK"
		}
		ts := "unknown time"
		if !record.Timestamp.IsZero() {
			ts = humanize.Time(record.Timestamp)
		}
		fmt.Fprintf(out, "[%s] %-4s %-18s %q -> %s (%.2fs)\n",
			ts, status, record.Intent.Action, record.Command,
			record.Result.Message, record.Result.Seconds())
	}
	return nil
}
