package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hireloop/identity/internal/client"
	"github.com/hireloop/identity/internal/onboarding"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
)

const (
	jsonFormat  = "json"
	yamlFormat  = "yaml"
	tableFormat = "table"
)

var (
	legalOutputTypes = []string{tableFormat, jsonFormat, yamlFormat}
)

type GlobalOptions struct {
	ConfigFilePath string
	ServerUrl      string
	Token          string
	Output         string

	config *client.Config
	out    io.Writer
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		ConfigFilePath: client.DefaultConfigPath(),
		Output:         tableFormat,
		out:            os.Stdout,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFilePath, "config", "c", o.ConfigFilePath, "Path to the client configuration file")
	fs.StringVarP(&o.ServerUrl, "server-url", "u", o.ServerUrl, "Address of the identity API, overrides the configuration file")
	fs.StringVar(&o.Token, "token", o.Token, fmt.Sprintf("Bearer token, defaults to $%s", client.TokenEnvKey))
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	config, err := client.ParseConfigFile(o.ConfigFilePath)
	if err != nil {
		return err
	}
	if o.ServerUrl != "" {
		config.Service.Server = o.ServerUrl
	}
	if o.Token != "" {
		config.Service.Token = o.Token
	}
	o.config = config
	if cmd != nil {
		o.out = cmd.OutOrStdout()
	}
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if !funk.ContainsString(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return o.config.Validate()
}

// session resumes the wizard of the signed-in user. The returned navigator
// records the hard navigations of the session.
func (o *GlobalOptions) session(ctx context.Context) (*onboarding.Controller, *printingNavigator, error) {
	tokens := client.EnvToken{Fallback: o.config.Service.Token}
	backend, err := client.New(o.config.Service.Server, tokens)
	if err != nil {
		return nil, nil, fmt.Errorf("creating client: %w", err)
	}

	navigator := newPrintingNavigator(o.out)
	opts, err := o.navigationOptions()
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts,
		onboarding.WithTokenProvider(tokens),
		onboarding.WithDevice(onboarding.DefaultDevice("hireloop-onboard")),
	)

	// A missing token is reported by Initialize.
	token, _ := tokens.Token(ctx)
	c, err := onboarding.NewInitializer(backend, navigator, opts...).Initialize(ctx, principalFromToken(token))
	if err != nil {
		return nil, navigator, err
	}
	return c, navigator, nil
}

func (o *GlobalOptions) navigationOptions() ([]onboarding.Option, error) {
	cfg := o.config.Onboarding
	var opts []onboarding.Option
	if cfg.Dashboard != "" {
		opts = append(opts, onboarding.WithDashboard(cfg.Dashboard))
	}
	if cfg.AdminDashboard != "" {
		opts = append(opts, onboarding.WithAdminDashboard(cfg.AdminDashboard))
	}
	if cfg.SkipDestination != "" {
		opts = append(opts, onboarding.WithSkipDestination(cfg.SkipDestination))
	}

	dest, dwell := cfg.CompletionRedirect, onboarding.DefaultCompletionDwell
	if dest == "" {
		dest = cfg.Dashboard
	}
	if dest == "" {
		dest = onboarding.DefaultDashboard
	}
	if cfg.CompletionDwell != "" {
		d, err := time.ParseDuration(cfg.CompletionDwell)
		if err != nil {
			return nil, fmt.Errorf("invalid completion dwell: %w", err)
		}
		dwell = d
	}
	return append(opts, onboarding.WithCompletionRedirect(dest, dwell)), nil
}
