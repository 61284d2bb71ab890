// Package cli assembles the cobra command tree for the smartos binary.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/smartos-go/internal/app"
	"github.com/doeshing/smartos-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	doCmd := commands.NewDoCommand(container)

	root := &cobra.Command{
		Use:   "smartos [command text]",
		Short: "SmartOS - natural language system assistant",
		Long:  "SmartOS turns free-text commands into system actions: launching applications, file operations, system control and content creation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			doCmd.SetArgs(args)
			return doCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(doCmd)
	root.AddCommand(commands.NewRunCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewMetricsCommand(container))
	root.AddCommand(commands.NewDashboardCommand(container))
	root.AddCommand(commands.NewMonitorCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	return root, nil
}
