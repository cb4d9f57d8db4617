package onboarding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// Initializer resolves the starting state of a wizard run.
type Initializer struct {
	backend   Backend
	navigator Navigator
	opts      options
	log       *zap.SugaredLogger
}

func NewInitializer(backend Backend, navigator Navigator, opts ...Option) *Initializer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Initializer{
		backend:   backend,
		navigator: navigator,
		opts:      o,
		log:       zap.S().Named("onboarding_init"),
	}
}

// Initialize returns a controller seeded from the backend. When onboarding is
// already finished, or the principal is an administrator, it navigates away
// and returns ErrRedirected. Any other failure is an *InitError.
func (i *Initializer) Initialize(ctx context.Context, principal Principal) (*Controller, error) {
	if i.opts.tokens != nil {
		if _, err := i.opts.tokens.Token(ctx); err != nil {
			return nil, newInitError("you are not signed in", err)
		}
	}

	profile, err := i.backend.FetchOwnProfile(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			i.log.Warnw("failed to fetch profile, creating it", "user", principal.UserID, "error", err)
		}
		profile, err = i.createProfile(ctx, principal)
		if err != nil {
			return nil, err
		}
	}

	account, err := i.backend.FetchAccount(ctx)
	if err != nil {
		return nil, newInitError("failed to load your account", err)
	}

	if account.Role == RoleAdmin {
		i.redirect(principal, i.opts.adminDashboard)
		return nil, ErrRedirected
	}
	if account.OnboardingStatus.Terminal() {
		i.redirect(principal, i.opts.dashboard)
		return nil, ErrRedirected
	}

	session := Session{
		CurrentStep: StepContact,
		Status:      account.OnboardingStatus,
		ProfileData: profile.Fields.Serializable(),
	}
	if profile.ID != "" {
		id := profile.ID
		session.CandidateID = &id
	}
	if session.Status == "" {
		session.Status = StatusPending
	}

	if snap := i.decodeSnapshot(account.OnboardingMetadata); snap != nil {
		session.CurrentStep = snap.CurrentStep.clamp()
		// answers given mid-flow win over the stored record
		session.ProfileData = session.ProfileData.Merge(snap.ProfileData.Serializable())
	}
	if id, ok := session.ProfileData[FieldResumeDocumentID]; ok && !isEmpty(id) {
		if _, marked := session.ProfileData[FieldResumeUploaded]; !marked {
			session.ProfileData[FieldResumeUploaded] = true
		}
	}

	i.log.Infow("onboarding session started", "user", principal.UserID, "step", session.CurrentStep, "status", session.Status)
	return newController(session, i.backend, i.navigator, i.opts), nil
}

func (i *Initializer) createProfile(ctx context.Context, principal Principal) (*Profile, error) {
	result, err := i.backend.CreateAccountAndProfile(ctx, principal)
	if err != nil {
		return nil, newInitError("failed to create profile, retry", err)
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "failed to create profile, retry"
		}
		return nil, newInitError(msg, nil)
	}
	if result.Profile == nil {
		return nil, newInitError("failed to create profile, retry", nil)
	}
	return result.Profile, nil
}

func (i *Initializer) redirect(principal Principal, dest string) {
	i.log.Infow("onboarding not needed, redirecting", "user", principal.UserID, "destination", dest)
	i.navigator.Navigate(dest)
}

// decodeSnapshot returns nil for a missing, empty or unreadable blob.
func (i *Initializer) decodeSnapshot(raw json.RawMessage) *Snapshot {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}")) {
		return nil
	}
	var snap Snapshot
	if err := json.Unmarshal(trimmed, &snap); err != nil {
		i.log.Warnw("ignoring unreadable onboarding snapshot", "error", err)
		return nil
	}
	return &snap
}
