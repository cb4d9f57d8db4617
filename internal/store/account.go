package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hireloop/identity/internal/store/model"
	"gorm.io/gorm"
)

type Account interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Account, error)
	GetByExternalID(ctx context.Context, externalID string) (*model.Account, error)
	Create(ctx context.Context, account model.Account) (*model.Account, error)
	Update(ctx context.Context, account model.Account, fields ...string) (*model.Account, error)
}

type AccountStore struct {
	db *gorm.DB
}

// Make sure we conform to Account interface
var _ Account = (*AccountStore)(nil)

func NewAccountStore(db *gorm.DB) Account {
	return &AccountStore{db: db}
}

func (a *AccountStore) Get(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := getDB(ctx, a.db).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (a *AccountStore) GetByExternalID(ctx context.Context, externalID string) (*model.Account, error) {
	var account model.Account
	if err := getDB(ctx, a.db).Where("external_id = ?", externalID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (a *AccountStore) Create(ctx context.Context, account model.Account) (*model.Account, error) {
	if err := getDB(ctx, a.db).Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &account, nil
}

// Update writes only the listed columns, the other fields of account are ignored.
func (a *AccountStore) Update(ctx context.Context, account model.Account, fields ...string) (*model.Account, error) {
	if len(fields) > 0 {
		fields = append(fields, "updated_at")
		result := getDB(ctx, a.db).Model(&account).Select(fields).Updates(&account)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrRecordNotFound
		}
	}
	return a.Get(ctx, account.ID)
}
