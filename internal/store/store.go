package store

import (
	"context"

	"github.com/hireloop/identity/internal/store/model"
	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Account() Account
	Profile() Profile
	Document() Document
	InitialMigration() error
	Close() error
}

type DataStore struct {
	db       *gorm.DB
	account  Account
	profile  Profile
	document Document
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		account:  NewAccountStore(db),
		profile:  NewProfileStore(db),
		document: NewDocumentStore(db),
		db:       db,
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Account() Account {
	return s.account
}

func (s *DataStore) Profile() Profile {
	return s.profile
}

func (s *DataStore) Document() Document {
	return s.document
}

// InitialMigration creates the schema with gorm. Postgres deployments use
// the goose migrations instead; this path serves sqlite (dev and tests).
func (s *DataStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Account{}, &model.Document{}, &model.CandidateProfile{})
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
