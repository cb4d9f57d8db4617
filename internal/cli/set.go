package cli

import (
	"context"

	"github.com/hireloop/identity/internal/onboarding"
	"github.com/spf13/cobra"
)

type SetOptions struct {
	GlobalOptions

	fields onboarding.ProfileData
}

func DefaultSetOptions() *SetOptions {
	return &SetOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdSet() *cobra.Command {
	o := DefaultSetOptions()
	cmd := &cobra.Command{
		Use:   "set KEY=VALUE...",
		Short: "Answer profile fields and save the progress.",
		Example: `  onboard set phone=555-1111 open_to_remote=true skills=go,postgres
  onboard set years_experience=7 availability=two_weeks`,
		Args: cobra.MinimumNArgs(1),
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

func (o *SetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	fields, err := parseAssignments(args)
	if err != nil {
		return err
	}
	o.fields = fields
	return nil
}

func (o *SetOptions) Run(ctx context.Context, args []string) error {
	return o.withSession(ctx, func(c *onboarding.Controller) error {
		c.UpdateFields(o.fields)
		c.Flush()
		c.Synchronizer().Wait()
		return printSession(o.out, o.Output, newSessionView(c))
	})
}
