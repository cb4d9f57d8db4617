package cli

import (
	"context"

	"github.com/hireloop/identity/internal/onboarding"
	"github.com/spf13/cobra"
)

type StatusOptions struct {
	GlobalOptions
}

func DefaultStatusOptions() *StatusOptions {
	return &StatusOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdStatus() *cobra.Command {
	o := DefaultStatusOptions()
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Resume the onboarding session and display it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *StatusOptions) Run(ctx context.Context, args []string) error {
	return o.withSession(ctx, func(c *onboarding.Controller) error {
		return printSession(o.out, o.Output, newSessionView(c))
	})
}

// withSession runs fn on the resumed session.
func (o *GlobalOptions) withSession(ctx context.Context, fn func(c *onboarding.Controller) error) error {
	c, _, err := o.session(ctx)
	if err != nil {
		return sessionFailure(err)
	}
	defer c.Close()

	return fn(c)
}
