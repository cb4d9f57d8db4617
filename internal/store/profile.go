package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hireloop/identity/internal/store/model"
	"gorm.io/gorm"
)

type Profile interface {
	Get(ctx context.Context, id uuid.UUID) (*model.CandidateProfile, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*model.CandidateProfile, error)
	Create(ctx context.Context, profile model.CandidateProfile) (*model.CandidateProfile, error)
	Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*model.CandidateProfile, error)
}

type ProfileStore struct {
	db *gorm.DB
}

// Make sure we conform to Profile interface
var _ Profile = (*ProfileStore)(nil)

func NewProfileStore(db *gorm.DB) Profile {
	return &ProfileStore{db: db}
}

func (p *ProfileStore) Get(ctx context.Context, id uuid.UUID) (*model.CandidateProfile, error) {
	var profile model.CandidateProfile
	if err := getDB(ctx, p.db).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (p *ProfileStore) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*model.CandidateProfile, error) {
	var profile model.CandidateProfile
	if err := getDB(ctx, p.db).Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (p *ProfileStore) Create(ctx context.Context, profile model.CandidateProfile) (*model.CandidateProfile, error) {
	if err := getDB(ctx, p.db).Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &profile, nil
}

// Update applies a partial update. Columns missing from the map are left
// untouched; an empty map only reads the profile back.
func (p *ProfileStore) Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*model.CandidateProfile, error) {
	if len(columns) > 0 {
		values := make(map[string]any, len(columns)+1)
		for k, v := range columns {
			values[k] = v
		}
		values["updated_at"] = time.Now()

		result := getDB(ctx, p.db).Model(&model.CandidateProfile{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrRecordNotFound
		}
	}
	return p.Get(ctx, id)
}
