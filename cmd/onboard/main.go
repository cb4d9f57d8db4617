package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hireloop/identity/internal/cli"
	"github.com/hireloop/identity/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	command := NewOnboardCommand()
	if err := command.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func NewOnboardCommand() *cobra.Command {
	var logLevel string
	var flush func()

	cmd := &cobra.Command{
		Use:   "onboard [flags] [options]",
		Short: "onboard walks a candidate through profile onboarding, resuming saved progress.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_, flush = log.Setup(logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if flush != nil {
				flush()
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(cli.NewCmdStatus())
	cmd.AddCommand(cli.NewCmdStep())
	cmd.AddCommand(cli.NewCmdSet())
	cmd.AddCommand(cli.NewCmdAttachResume())
	cmd.AddCommand(cli.NewCmdSubmit())
	cmd.AddCommand(cli.NewCmdSkip())

	return cmd
}
