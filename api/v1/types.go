// Package v1 holds the JSON resources of the identity API.
package v1

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OnboardingStatus defines model for Account.OnboardingStatus.
type OnboardingStatus string

const (
	OnboardingStatusPending    OnboardingStatus = "pending"
	OnboardingStatusInProgress OnboardingStatus = "in_progress"
	OnboardingStatusCompleted  OnboardingStatus = "completed"
	OnboardingStatusSkipped    OnboardingStatus = "skipped"
)

// Account defines model for Account.
type Account struct {
	Id                    uuid.UUID        `json:"id"`
	ExternalId            string           `json:"external_id"`
	Email                 string           `json:"email"`
	FirstName             string           `json:"first_name,omitempty"`
	LastName              string           `json:"last_name,omitempty"`
	Role                  string           `json:"role"`
	OnboardingStatus      OnboardingStatus `json:"onboarding_status"`
	OnboardingMetadata    json.RawMessage  `json:"onboarding_metadata,omitempty"`
	OnboardingCompletedAt *time.Time       `json:"onboarding_completed_at,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             *time.Time       `json:"updated_at,omitempty"`
}

// AccountUpdate defines model for the PATCH /api/v1/users/me body.
// Absent fields are left untouched.
type AccountUpdate struct {
	OnboardingStatus      *OnboardingStatus `json:"onboarding_status,omitempty" validate:"omitempty,onboarding_status"`
	OnboardingMetadata    json.RawMessage   `json:"onboarding_metadata,omitempty" validate:"omitempty,json_object"`
	OnboardingCompletedAt *time.Time        `json:"onboarding_completed_at,omitempty"`
}

// CandidateProfile defines model for CandidateProfile.
type CandidateProfile struct {
	Id               uuid.UUID  `json:"id"`
	AccountId        uuid.UUID  `json:"account_id"`
	FirstName        string     `json:"first_name,omitempty"`
	LastName         string     `json:"last_name,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Location         string     `json:"location,omitempty"`
	LinkedinUrl      string     `json:"linkedin_url,omitempty"`
	GithubUrl        string     `json:"github_url,omitempty"`
	PortfolioUrl     string     `json:"portfolio_url,omitempty"`
	WebsiteUrl       string     `json:"website_url,omitempty"`
	CurrentTitle     string     `json:"current_title,omitempty"`
	CurrentCompany   string     `json:"current_company,omitempty"`
	YearsExperience  *int       `json:"years_experience,omitempty"`
	Bio              string     `json:"bio,omitempty"`
	Skills           []string   `json:"skills,omitempty"`
	DesiredTitles    []string   `json:"desired_titles,omitempty"`
	DesiredLocations []string   `json:"desired_locations,omitempty"`
	OpenToRemote     *bool      `json:"open_to_remote,omitempty"`
	DesiredSalaryMin *int       `json:"desired_salary_min,omitempty"`
	DesiredSalaryMax *int       `json:"desired_salary_max,omitempty"`
	Availability     string     `json:"availability,omitempty"`
	ResumeDocumentId *uuid.UUID `json:"resume_document_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// CandidateProfileUpdate defines model for the PATCH /api/v1/candidates/{id} body.
// Only the fields present in the request are written.
type CandidateProfileUpdate struct {
	FirstName        *string    `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName         *string    `json:"last_name,omitempty" validate:"omitempty,max=255"`
	Phone            *string    `json:"phone,omitempty" validate:"omitempty,max=64,phone"`
	Location         *string    `json:"location,omitempty" validate:"omitempty,max=255"`
	LinkedinUrl      *string    `json:"linkedin_url,omitempty" validate:"omitempty,http_url"`
	GithubUrl        *string    `json:"github_url,omitempty" validate:"omitempty,http_url"`
	PortfolioUrl     *string    `json:"portfolio_url,omitempty" validate:"omitempty,http_url"`
	WebsiteUrl       *string    `json:"website_url,omitempty" validate:"omitempty,http_url"`
	CurrentTitle     *string    `json:"current_title,omitempty" validate:"omitempty,max=255"`
	CurrentCompany   *string    `json:"current_company,omitempty" validate:"omitempty,max=255"`
	YearsExperience  *int       `json:"years_experience,omitempty" validate:"omitempty,min=0,max=80"`
	Bio              *string    `json:"bio,omitempty" validate:"omitempty,max=5000"`
	Skills           *[]string  `json:"skills,omitempty" validate:"omitempty,max=100,dive,max=100"`
	DesiredTitles    *[]string  `json:"desired_titles,omitempty" validate:"omitempty,max=50,dive,max=255"`
	DesiredLocations *[]string  `json:"desired_locations,omitempty" validate:"omitempty,max=50,dive,max=255"`
	OpenToRemote     *bool      `json:"open_to_remote,omitempty"`
	DesiredSalaryMin *int       `json:"desired_salary_min,omitempty" validate:"omitempty,min=0"`
	DesiredSalaryMax *int       `json:"desired_salary_max,omitempty" validate:"omitempty,min=0,salary_range"`
	Availability     *string    `json:"availability,omitempty" validate:"omitempty,availability"`
	ResumeDocumentId *uuid.UUID `json:"resume_document_id,omitempty"`
}

// BootstrapRequest seeds the account and profile created for a new user.
// The authenticated principal wins over any value given here.
type BootstrapRequest struct {
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=255"`
}

// BootstrapResult defines model for the POST /api/v1/users/me/bootstrap response.
type BootstrapResult struct {
	Success bool              `json:"success"`
	Created bool              `json:"created"`
	Profile *CandidateProfile `json:"profile,omitempty"`
	Account *Account          `json:"account,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// Document defines model for Document.
type Document struct {
	Id           uuid.UUID `json:"id"`
	DocumentType string    `json:"document_type"`
	FileName     string    `json:"file_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

// Error defines model for Error.
type Error struct {
	Message   string `json:"message"`
	RequestId string `json:"requestId,omitempty"`
}

// Health defines model for Health.
type Health struct {
	Status string `json:"status"`
}
