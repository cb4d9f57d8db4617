package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hireloop/identity/internal/service/mappers"
	"github.com/hireloop/identity/internal/store"
	"github.com/hireloop/identity/internal/store/model"
	"go.uber.org/zap"
)

type ProfileService struct {
	store store.Store
}

func NewProfileService(store store.Store) *ProfileService {
	return &ProfileService{store: store}
}

func (p *ProfileService) GetOwnProfile(ctx context.Context, externalID string) (*model.CandidateProfile, error) {
	account, err := p.store.Account().GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrOwnProfileNotFound(externalID)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	profile, err := p.store.Profile().GetByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrOwnProfileNotFound(externalID)
		}
		return nil, fmt.Errorf("failed to get candidate profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile writes the fields set in the form to the profile owned by the user.
func (p *ProfileService) UpdateProfile(ctx context.Context, externalID string, id uuid.UUID, form mappers.ProfileUpdateForm) (*model.CandidateProfile, error) {
	ctx, err := p.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	profile, err := p.store.Profile().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrProfileNotFound(id)
		}
		return nil, fmt.Errorf("failed to get candidate profile: %w", err)
	}

	account, err := p.store.Account().GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrProfileUpdateForbidden(id)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if profile.AccountID != account.ID {
		return nil, NewErrProfileUpdateForbidden(id)
	}

	if form.ResumeDocumentID != nil {
		document, err := p.store.Document().Get(ctx, *form.ResumeDocumentID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return nil, NewErrDocumentNotFound(*form.ResumeDocumentID)
			}
			return nil, fmt.Errorf("failed to get document: %w", err)
		}
		if document.AccountID != account.ID {
			return nil, NewErrDocumentAccessForbidden(document.ID)
		}
	}

	columns := form.Columns()
	updated, err := p.store.Profile().Update(ctx, id, columns)
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate profile %s: %w", id, err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	zap.S().Named("profile_service").Debugw("candidate profile updated", "profile_id", id, "fields", len(columns))

	return updated, nil
}
