package model

import (
	"time"

	"github.com/google/uuid"
)

type CandidateProfile struct {
	ID               uuid.UUID `gorm:"primaryKey;type:uuid"`
	AccountID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName        string    `gorm:"size:255"`
	LastName         string    `gorm:"size:255"`
	Phone            string    `gorm:"size:64"`
	Location         string    `gorm:"size:255"`
	LinkedinURL      string
	GithubURL        string
	PortfolioURL     string
	WebsiteURL       string
	CurrentTitle     string `gorm:"size:255"`
	CurrentCompany   string `gorm:"size:255"`
	YearsExperience  *int
	Bio              string
	Skills           StringList `gorm:"type:jsonb"`
	DesiredTitles    StringList `gorm:"type:jsonb"`
	DesiredLocations StringList `gorm:"type:jsonb"`
	OpenToRemote     *bool
	DesiredSalaryMin *int
	DesiredSalaryMax *int
	Availability     string     `gorm:"size:64"`
	ResumeDocumentID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

func NewCandidateProfile(accountID uuid.UUID, firstName, lastName string) CandidateProfile {
	return CandidateProfile{
		ID:        uuid.New(),
		AccountID: accountID,
		FirstName: firstName,
		LastName:  lastName,
	}
}
