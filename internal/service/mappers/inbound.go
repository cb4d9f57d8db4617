package mappers

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/hireloop/identity/internal/store/model"
)

type BootstrapForm struct {
	ExternalID string
	Email      string
	FirstName  string
	LastName   string
}

type AccountUpdateForm struct {
	OnboardingStatus      *string
	OnboardingMetadata    []byte
	OnboardingCompletedAt *time.Time
}

func (f AccountUpdateForm) IsEmpty() bool {
	return f.OnboardingStatus == nil && f.OnboardingMetadata == nil && f.OnboardingCompletedAt == nil
}

// ProfileUpdateForm is a partial update: nil fields are not written.
type ProfileUpdateForm struct {
	FirstName        *string
	LastName         *string
	Phone            *string
	Location         *string
	LinkedinURL      *string
	GithubURL        *string
	PortfolioURL     *string
	WebsiteURL       *string
	CurrentTitle     *string
	CurrentCompany   *string
	YearsExperience  *int
	Bio              *string
	Skills           *[]string
	DesiredTitles    *[]string
	DesiredLocations *[]string
	OpenToRemote     *bool
	DesiredSalaryMin *int
	DesiredSalaryMax *int
	Availability     *string
	ResumeDocumentID *uuid.UUID
}

// Columns returns the database columns written by the form.
func (f ProfileUpdateForm) Columns() map[string]any {
	columns := map[string]any{}

	setString := func(column string, v *string) {
		if v != nil {
			columns[column] = *v
		}
	}
	setInt := func(column string, v *int) {
		if v != nil {
			columns[column] = *v
		}
	}
	setList := func(column string, v *[]string) {
		if v != nil {
			columns[column] = model.StringList(*v)
		}
	}

	setString("first_name", f.FirstName)
	setString("last_name", f.LastName)
	setString("phone", f.Phone)
	setString("location", f.Location)
	setString("linkedin_url", f.LinkedinURL)
	setString("github_url", f.GithubURL)
	setString("portfolio_url", f.PortfolioURL)
	setString("website_url", f.WebsiteURL)
	setString("current_title", f.CurrentTitle)
	setString("current_company", f.CurrentCompany)
	setInt("years_experience", f.YearsExperience)
	setString("bio", f.Bio)
	setList("skills", f.Skills)
	setList("desired_titles", f.DesiredTitles)
	setList("desired_locations", f.DesiredLocations)
	if f.OpenToRemote != nil {
		columns["open_to_remote"] = *f.OpenToRemote
	}
	setInt("desired_salary_min", f.DesiredSalaryMin)
	setInt("desired_salary_max", f.DesiredSalaryMax)
	setString("availability", f.Availability)
	if f.ResumeDocumentID != nil {
		columns["resume_document_id"] = *f.ResumeDocumentID
	}

	return columns
}

type DocumentUploadForm struct {
	DocumentType string
	FileName     string
	ContentType  string
	Size         int64
	Content      io.Reader
}
