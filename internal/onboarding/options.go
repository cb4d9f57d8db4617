package onboarding

import (
	"os"
	"runtime"
	"time"
)

const (
	DefaultDashboard       = "/dashboard"
	DefaultAdminDashboard  = "/admin"
	DefaultCompletionDwell = 3 * time.Second
)

type options struct {
	tokens          TokenProvider
	dashboard       string
	adminDashboard  string
	skipDestination string
	completionURL   string
	completionDwell time.Duration
	persistTimeout  time.Duration
	device          Device
	now             func() time.Time
}

type Option func(o *options)

func defaultOptions() options {
	return options{
		dashboard:       DefaultDashboard,
		adminDashboard:  DefaultAdminDashboard,
		skipDestination: DefaultDashboard,
		completionURL:   DefaultDashboard,
		completionDwell: DefaultCompletionDwell,
		persistTimeout:  defaultPersistTimeout,
		device:          DefaultDevice(""),
		now:             time.Now,
	}
}

// WithTokenProvider makes initialization fail fast when no credential is available.
func WithTokenProvider(tokens TokenProvider) Option {
	return func(o *options) {
		o.tokens = tokens
	}
}

// WithDashboard sets where users whose onboarding is already finished are sent.
func WithDashboard(dest string) Option {
	return func(o *options) {
		o.dashboard = dest
	}
}

func WithAdminDashboard(dest string) Option {
	return func(o *options) {
		o.adminDashboard = dest
	}
}

func WithSkipDestination(dest string) Option {
	return func(o *options) {
		o.skipDestination = dest
	}
}

// WithCompletionRedirect sets where the summary step sends the user and after how long.
func WithCompletionRedirect(dest string, dwell time.Duration) Option {
	return func(o *options) {
		o.completionURL = dest
		o.completionDwell = dwell
	}
}

func WithPersistTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.persistTimeout = timeout
	}
}

func WithDevice(device Device) Option {
	return func(o *options) {
		o.device = device
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// DefaultDevice describes the machine running the wizard.
func DefaultDevice(userAgent string) Device {
	hostname, _ := os.Hostname()
	return Device{
		UserAgent: userAgent,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Hostname:  hostname,
	}
}
