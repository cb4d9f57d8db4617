package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hireloop/identity/internal/onboarding"
	"github.com/spf13/cobra"
)

type StepOptions struct {
	GlobalOptions

	step onboarding.Step
}

func DefaultStepOptions() *StepOptions {
	return &StepOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdStep() *cobra.Command {
	o := DefaultStepOptions()
	cmd := &cobra.Command{
		Use:   "step NUMBER",
		Short: "Move to another step of the wizard (1 to 5).",
		Args:  cobra.ExactArgs(1),
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

func (o *StepOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || !onboarding.Step(n).Navigable() {
		return fmt.Errorf("step must be a number between %d and %d", onboarding.StepContact, onboarding.StepPreferences)
	}
	o.step = onboarding.Step(n)
	return nil
}

func (o *StepOptions) Run(ctx context.Context, args []string) error {
	return o.withSession(ctx, func(c *onboarding.Controller) error {
		if err := c.GoToStep(o.step); err != nil {
			return err
		}
		c.Synchronizer().Wait()
		return printSession(o.out, o.Output, newSessionView(c))
	})
}
