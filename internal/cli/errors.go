package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hireloop/identity/internal/onboarding"
)

func initFailure(err *onboarding.InitError) error {
	actions := make([]string, 0, len(err.Actions()))
	for _, a := range err.Actions() {
		switch a {
		case onboarding.ActionRetry:
			actions = append(actions, "run the command again")
		case onboarding.ActionSignOut:
			actions = append(actions, "sign in with a new token")
		}
	}
	return fmt.Errorf("%w (%s)", err, strings.Join(actions, " or "))
}

// sessionFailure maps an initialization outcome to the command result. A
// redirect is not a failure, it has already been printed.
func sessionFailure(err error) error {
	if errors.Is(err, onboarding.ErrRedirected) {
		return nil
	}
	var initErr *onboarding.InitError
	if errors.As(err, &initErr) {
		return initFailure(initErr)
	}
	return err
}
