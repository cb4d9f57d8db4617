package client

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"sigs.k8s.io/yaml"
)

// Config holds what the onboarding client needs to reach the identity API.
type Config struct {
	Service    Service    `json:"service"`
	Onboarding Onboarding `json:"onboarding,omitempty"`
}

// Service contains information how to connect to and authenticate with the identity API.
type Service struct {
	// Server is the URL of the identity API (the part before /api/v1/...).
	Server string `json:"server"`
	// Token is used when HIRELOOP_TOKEN is not set.
	Token string `json:"token,omitempty"`
}

// Onboarding holds the hard navigation targets of the wizard.
type Onboarding struct {
	Dashboard          string `json:"dashboard,omitempty"`
	AdminDashboard     string `json:"adminDashboard,omitempty"`
	SkipDestination    string `json:"skipDestination,omitempty"`
	CompletionRedirect string `json:"completionRedirect,omitempty"`
	// CompletionDwell is a duration string such as "3s".
	CompletionDwell string `json:"completionDwell,omitempty"`
}

func NewDefault() *Config {
	return &Config{
		Service: Service{Server: "http://localhost:3443"},
	}
}

// DefaultConfigPath returns the default path to the client config file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".hireloop", "client.yaml")
}

// ParseConfigFile reads filename. A missing file yields the defaults.
func ParseConfigFile(filename string) (*Config, error) {
	config := NewDefault()
	contents, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(contents, config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// WriteConfig writes a client config file using the given parameters.
func WriteConfig(filename string, server string) error {
	config := NewDefault()
	config.Service.Server = server
	return config.Persist(filename)
}

func (c *Config) Persist(filename string) error {
	contents, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.WriteFile(filename, contents, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	validationErrors := validateService(c.Service)
	if c.Onboarding.CompletionDwell != "" {
		if _, err := time.ParseDuration(c.Onboarding.CompletionDwell); err != nil {
			validationErrors = append(validationErrors, fmt.Errorf("invalid completion dwell %q: %w", c.Onboarding.CompletionDwell, err))
		}
	}
	if len(validationErrors) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(validationErrors...))
	}
	return nil
}

func validateService(service Service) []error {
	validationErrors := make([]error, 0)
	if len(service.Server) == 0 {
		validationErrors = append(validationErrors, fmt.Errorf("no server found"))
	} else {
		u, err := url.Parse(service.Server)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Errorf("invalid server format %q: %w", service.Server, err))
		}
		if err == nil && len(u.Hostname()) == 0 {
			validationErrors = append(validationErrors, fmt.Errorf("invalid server format %q: no hostname", service.Server))
		}
	}
	return validationErrors
}
