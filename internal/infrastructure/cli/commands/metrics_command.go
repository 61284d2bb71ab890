package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/smartos-go/internal/app"
	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/metrics"
)

// NewMetricsCommand creates the 'metrics' command.
func NewMetricsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show execution metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ExecutionLog == nil {
				return errors.New(ErrLogUnavailable)
			}
			records, err := container.ExecutionLog.Records()
			if err != nil {
				return err
			}
			snapshot := metrics.Compute(records, time.Now())
			renderSnapshot(cmd.OutOrStdout(), snapshot)
			return nil
		},
	}
}

// NewDashboardCommand creates the 'dashboard' command.
func NewDashboardCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Generate the HTML metrics dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ExecutionLog == nil {
				return errors.New(ErrLogUnavailable)
			}
			records, err := container.ExecutionLog.Records()
			if err != nil {
				return err
			}
			snapshot := metrics.Compute(records, time.Now())
			path, err := container.Dashboard.Render(snapshot)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dashboard generated: %s\n", path)
			return nil
		},
	}
}

// NewMonitorCommand creates the 'monitor' command: it runs the background
// monitor in the foreground until interrupted, printing each snapshot.
func NewMonitorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Run the periodic metrics monitor until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			container.Monitor.Start(ctx)
			defer container.Monitor.Stop()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Monitoring started. Press Ctrl+C to stop.")
			for {
				select {
				case <-ctx.Done():
					fmt.Fprintln(out, "Monitoring stopped.")
					return nil
				case snapshot := <-container.Monitor.Snapshots():
					fmt.Fprintf(out, "[%s] commands=%s success=%.1f%% avg=%.2fs\n",
						snapshot.GeneratedAt.Format("15:04:05"),
						humanize.Comma(int64(snapshot.TotalCommands)),
						snapshot.SuccessRate,
						snapshot.AverageResponseTime.Seconds())
				}
			}
		},
	}
}

func renderSnapshot(out io.Writer, s domain.MetricsSnapshot) {
	fmt.Fprintln(out, "SmartOS Metrics")
	fmt.Fprintf(out, "  Total commands:     %s\n", humanize.Comma(int64(s.TotalCommands)))
	fmt.Fprintf(out, "  Successful:         %d\n", s.SuccessfulCommands)
	fmt.Fprintf(out, "  Failed:             %d\n", s.FailedCommands)
	fmt.Fprintf(out, "  Success rate:       %.1f%%\n", s.SuccessRate)
	fmt.Fprintf(out, "  Avg response time:  %.2fs\n", s.AverageResponseTime.Seconds())
	fmt.Fprintf(out, "  Intent accuracy:    %.1f%%\n", s.IntentAccuracy)

	if len(s.Categories) > 0 {
		fmt.Fprintln(out, "\nBy category:")
		for _, kind := range append(domain.ActionKinds, domain.ActionUnknown) {
			stats, ok := s.Categories[kind]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "  %-18s total=%d success=%.1f%% avg=%.2fs\n",
				kind, stats.Total, stats.SuccessRate, stats.AverageResponseTime.Seconds())
		}
	}

	fmt.Fprintln(out, "\nResponse time distribution (cumulative):")
	fmt.Fprintf(out, "  under 1s: %d\n", s.Histogram.Under1s)
	fmt.Fprintf(out, "  under 3s: %d\n", s.Histogram.Under3s)
	fmt.Fprintf(out, "  under 5s: %d\n", s.Histogram.Under5s)
	fmt.Fprintf(out, "  over 5s:  %d\n", s.Histogram.Over5s)

	fmt.Fprintf(out, "\nLast hour: %d commands (%.1f%% success)\n", s.LastHour.Total, s.LastHour.SuccessRate)
	fmt.Fprintf(out, "Last day:  %d commands (%.1f%% success)\n", s.LastDay.Total, s.LastDay.SuccessRate)
}
