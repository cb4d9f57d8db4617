package client

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// TokenEnvKey holds the bearer token of the signed-in user.
const TokenEnvKey = "HIRELOOP_TOKEN"

var ErrNoToken = errors.New("no credential: set " + TokenEnvKey + " or service.token")

// StaticToken always returns the same credential.
type StaticToken string

func (t StaticToken) Token(ctx context.Context) (string, error) {
	if strings.TrimSpace(string(t)) == "" {
		return "", ErrNoToken
	}
	return string(t), nil
}

// EnvToken reads the credential from the environment on every call, falling
// back on the configured one.
type EnvToken struct {
	Fallback string
}

func (t EnvToken) Token(ctx context.Context) (string, error) {
	if value := strings.TrimSpace(os.Getenv(TokenEnvKey)); value != "" {
		return value, nil
	}
	return StaticToken(t.Fallback).Token(ctx)
}
