package onboarding

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by a Backend when the record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRedirected means initialization navigated away instead of
	// producing a session.
	ErrRedirected = errors.New("onboarding already finished, redirected")
	// ErrNavigatedAway is returned by transitions after a hard navigation.
	ErrNavigatedAway = errors.New("session has navigated away")
	ErrInvalidStep   = errors.New("invalid step")
	ErrNoProfile     = errors.New("no profile found")
	// ErrFinished is returned by transitions once onboarding is completed
	// or skipped.
	ErrFinished = errors.New("onboarding already finished")
	// ErrSubmitting is returned while a submit or skip is in flight.
	ErrSubmitting = errors.New("a submission is already in progress")
)

type Action string

const (
	ActionRetry   Action = "retry"
	ActionSignOut Action = "sign_out"
)

// InitError is a fatal initialization failure. It is shown full screen and
// never retried automatically.
type InitError struct {
	Message string
	Err     error
}

func newInitError(message string, err error) *InitError {
	return &InitError{Message: message, Err: err}
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Actions lists what the user may do about the failure.
func (e *InitError) Actions() []Action {
	return []Action{ActionRetry, ActionSignOut}
}

// UploadError is a failed resume attachment. Local is true when the file was
// rejected before any network call.
type UploadError struct {
	Local bool
	Err   error
}

func (e *UploadError) Error() string {
	return e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
