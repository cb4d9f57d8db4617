package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hireloop/identity/internal/store/model"
	"gorm.io/gorm"
)

type Document interface {
	List(ctx context.Context, filter *DocumentQueryFilter) (model.DocumentList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Document, error)
	Create(ctx context.Context, document model.Document) (*model.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DocumentStore struct {
	db *gorm.DB
}

// Make sure we conform to Document interface
var _ Document = (*DocumentStore)(nil)

func NewDocumentStore(db *gorm.DB) Document {
	return &DocumentStore{db: db}
}

func (d *DocumentStore) List(ctx context.Context, filter *DocumentQueryFilter) (model.DocumentList, error) {
	var documents model.DocumentList
	tx := getDB(ctx, d.db).Model(&documents).Order("created_at DESC")

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if err := tx.Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (d *DocumentStore) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var document model.Document
	if err := getDB(ctx, d.db).First(&document, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (d *DocumentStore) Create(ctx context.Context, document model.Document) (*model.Document, error) {
	if err := getDB(ctx, d.db).Create(&document).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &document, nil
}

func (d *DocumentStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := getDB(ctx, d.db).Delete(&model.Document{}, "id = ?", id)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}
