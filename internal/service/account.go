package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1 "github.com/hireloop/identity/api/v1"
	"github.com/hireloop/identity/internal/events"
	"github.com/hireloop/identity/internal/service/mappers"
	"github.com/hireloop/identity/internal/store"
	"github.com/hireloop/identity/internal/store/model"
	"github.com/hireloop/identity/pkg/metrics"
	"go.uber.org/zap"
)

// EventWriter publishes onboarding lifecycle events.
type EventWriter interface {
	WriteOnboarding(ctx context.Context, kind string, event events.OnboardingEvent) error
}

type AccountService struct {
	store       store.Store
	eventWriter EventWriter
}

func NewAccountService(store store.Store, eventWriter EventWriter) *AccountService {
	return &AccountService{
		store:       store,
		eventWriter: eventWriter,
	}
}

// Bootstrap returns the account and the candidate profile of the user, creating
// the missing ones. Calling it again for the same user returns the same rows.
func (a *AccountService) Bootstrap(ctx context.Context, form mappers.BootstrapForm) (*model.Account, *model.CandidateProfile, bool, error) {
	account, accountCreated, err := a.getOrCreateAccount(ctx, form)
	if err != nil {
		metrics.IncreaseAccountBootstrap("failed")
		return nil, nil, false, err
	}

	profile, profileCreated, err := a.getOrCreateProfile(ctx, account)
	if err != nil {
		metrics.IncreaseAccountBootstrap("failed")
		return nil, nil, false, err
	}

	created := accountCreated || profileCreated
	if created {
		metrics.IncreaseAccountBootstrap("created")
		zap.S().Named("account_service").Infow("account bootstrapped", "account_id", account.ID, "profile_id", profile.ID)
	} else {
		metrics.IncreaseAccountBootstrap("existing")
	}

	return account, profile, created, nil
}

func (a *AccountService) getOrCreateAccount(ctx context.Context, form mappers.BootstrapForm) (*model.Account, bool, error) {
	account, err := a.store.Account().GetByExternalID(ctx, form.ExternalID)
	if err == nil {
		return account, false, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to get account: %w", err)
	}

	account, err = a.store.Account().Create(ctx, model.NewAccount(form.ExternalID, form.Email, form.FirstName, form.LastName))
	if err != nil {
		// another request created the account between the read and the insert
		if errors.Is(err, store.ErrDuplicateKey) {
			existing, getErr := a.store.Account().GetByExternalID(ctx, form.ExternalID)
			if getErr != nil {
				return nil, false, fmt.Errorf("failed to get existing account after constraint violation: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create account for user %s: %w", form.ExternalID, err)
	}

	return account, true, nil
}

func (a *AccountService) getOrCreateProfile(ctx context.Context, account *model.Account) (*model.CandidateProfile, bool, error) {
	profile, err := a.store.Profile().GetByAccountID(ctx, account.ID)
	if err == nil {
		return profile, false, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to get candidate profile: %w", err)
	}

	profile, err = a.store.Profile().Create(ctx, model.NewCandidateProfile(account.ID, account.FirstName, account.LastName))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			existing, getErr := a.store.Profile().GetByAccountID(ctx, account.ID)
			if getErr != nil {
				return nil, false, fmt.Errorf("failed to get existing profile after constraint violation: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create candidate profile for account %s: %w", account.ID, err)
	}

	return profile, true, nil
}

func (a *AccountService) GetAccount(ctx context.Context, externalID string) (*model.Account, error) {
	account, err := a.store.Account().GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrAccountNotFound(externalID)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// UpdateAccount writes the onboarding fields of the form. Statuses only move
// forward and a completed or skipped onboarding is never reopened.
func (a *AccountService) UpdateAccount(ctx context.Context, externalID string, form mappers.AccountUpdateForm) (*model.Account, error) {
	account, err := a.GetAccount(ctx, externalID)
	if err != nil {
		return nil, err
	}

	if form.IsEmpty() {
		return account, nil
	}

	fields := []string{}
	current := v1.StringToOnboardingStatus(account.OnboardingStatus)
	statusChanged := false

	if form.OnboardingStatus != nil {
		next := v1.OnboardingStatus(*form.OnboardingStatus)
		if !current.CanTransitionTo(next) {
			return nil, NewErrInvalidTransition(string(current), string(next))
		}
		if next != current {
			account.OnboardingStatus = string(next)
			fields = append(fields, "onboarding_status")
			statusChanged = true
		}
		if next == v1.OnboardingStatusCompleted && account.OnboardingCompletedAt == nil && form.OnboardingCompletedAt == nil {
			now := time.Now().UTC()
			account.OnboardingCompletedAt = &now
			fields = append(fields, "onboarding_completed_at")
		}
	}

	if form.OnboardingCompletedAt != nil {
		completedAt := form.OnboardingCompletedAt.UTC()
		account.OnboardingCompletedAt = &completedAt
		fields = append(fields, "onboarding_completed_at")
	}

	if form.OnboardingMetadata != nil {
		account.OnboardingMetadata = form.OnboardingMetadata
		fields = append(fields, "onboarding_metadata")
	}

	if len(fields) == 0 {
		return account, nil
	}

	updated, err := a.store.Account().Update(ctx, *account, fields...)
	if err != nil {
		return nil, fmt.Errorf("failed to update account %s: %w", account.ID, err)
	}

	if statusChanged {
		metrics.IncreaseOnboardingStatusChange(updated.OnboardingStatus)
		zap.S().Named("account_service").Infow("onboarding status changed", "account_id", updated.ID, "from", current, "to", updated.OnboardingStatus)
		a.publish(ctx, updated)
	}

	return updated, nil
}

func (a *AccountService) publish(ctx context.Context, account *model.Account) {
	if a.eventWriter == nil {
		return
	}

	var kind string
	switch v1.OnboardingStatus(account.OnboardingStatus) {
	case v1.OnboardingStatusCompleted:
		kind = events.OnboardingCompletedKind
	case v1.OnboardingStatusSkipped:
		kind = events.OnboardingSkippedKind
	default:
		return
	}

	event := events.OnboardingEvent{
		AccountID:  account.ID.String(),
		UserID:     account.ExternalID,
		Status:     account.OnboardingStatus,
		OccurredAt: time.Now().UTC(),
	}
	if err := a.eventWriter.WriteOnboarding(ctx, kind, event); err != nil {
		zap.S().Named("account_service").Errorw("failed to write onboarding event", "error", err, "account_id", account.ID)
	}
}
