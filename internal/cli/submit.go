package cli

import (
	"context"
	"fmt"

	"github.com/hireloop/identity/internal/onboarding"
	"github.com/spf13/cobra"
)

type SubmitOptions struct {
	GlobalOptions
}

func DefaultSubmitOptions() *SubmitOptions {
	return &SubmitOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdSubmit() *cobra.Command {
	o := DefaultSubmitOptions()
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Save the profile and complete onboarding.",
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

// Run submits and stays on the summary until the completion redirect fires.
func (o *SubmitOptions) Run(ctx context.Context, args []string) error {
	c, navigator, err := o.session(ctx)
	if err != nil {
		return sessionFailure(err)
	}
	defer c.Close()

	if err := c.Submit(ctx); err != nil {
		_ = printSession(o.out, o.Output, newSessionView(c))
		return err
	}
	if err := printSession(o.out, o.Output, newSessionView(c)); err != nil {
		return err
	}

	select {
	case <-navigator.Done():
	case <-ctx.Done():
	}
	return nil
}

type SkipOptions struct {
	GlobalOptions
}

func DefaultSkipOptions() *SkipOptions {
	return &SkipOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdSkip() *cobra.Command {
	o := DefaultSkipOptions()
	cmd := &cobra.Command{
		Use:   "skip",
		Short: "Skip onboarding and leave the wizard.",
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

func (o *SkipOptions) Run(ctx context.Context, args []string) error {
	return o.withSession(ctx, func(c *onboarding.Controller) error {
		if !c.SkipOffered() {
			return fmt.Errorf("skipping is only offered on steps %d to %d", onboarding.StepContact, onboarding.StepResume)
		}
		return c.Skip(ctx)
	})
}
