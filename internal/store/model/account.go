package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	RoleCandidate = "candidate"
	RoleAdmin     = "admin"
)

// Account is the user-level record. Onboarding progress lives here and not
// on the candidate profile: OnboardingMetadata holds the opaque resume blob
// written by the onboarding wizard.
type Account struct {
	ID                    uuid.UUID `gorm:"primaryKey;type:uuid"`
	ExternalID            string    `gorm:"uniqueIndex;not null;size:255"`
	Email                 string    `gorm:"size:320"`
	FirstName             string    `gorm:"size:255"`
	LastName              string    `gorm:"size:255"`
	Role                  string    `gorm:"size:32;not null;default:candidate"`
	OnboardingStatus      string    `gorm:"size:32;not null;default:pending"`
	OnboardingMetadata    []byte    `gorm:"type:jsonb"`
	OnboardingCompletedAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}

func NewAccount(externalID, email, firstName, lastName string) Account {
	return Account{
		ID:               uuid.New(),
		ExternalID:       externalID,
		Email:            email,
		FirstName:        firstName,
		LastName:         lastName,
		Role:             RoleCandidate,
		OnboardingStatus: "pending",
	}
}

func (a Account) String() string {
	val, _ := json.Marshal(a)
	return string(val)
}
