package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hireloop/identity/internal/documents"
	"github.com/hireloop/identity/internal/onboarding"
	"github.com/spf13/cobra"
)

type AttachResumeOptions struct {
	GlobalOptions
}

func DefaultAttachResumeOptions() *AttachResumeOptions {
	return &AttachResumeOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdAttachResume() *cobra.Command {
	o := DefaultAttachResumeOptions()
	cmd := &cobra.Command{
		Use:   "attach-resume FILE",
		Short: "Upload a resume (PDF, DOC or DOCX up to 5 MiB).",
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

func (o *AttachResumeOptions) Run(ctx context.Context, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening resume: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("reading resume: %w", err)
	}

	return o.withSession(ctx, func(c *onboarding.Controller) error {
		file := onboarding.ResumeFile{
			Name:        filepath.Base(args[0]),
			ContentType: documents.ContentTypeFor(args[0]),
			Size:        info.Size(),
			Content:     f,
		}
		if err := c.AttachResume(ctx, file); err != nil {
			return err
		}
		c.Flush()
		c.Synchronizer().Wait()
		return printSession(o.out, o.Output, newSessionView(c))
	})
}
