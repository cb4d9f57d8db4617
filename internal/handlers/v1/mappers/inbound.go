package mappers

import (
	v1 "github.com/hireloop/identity/api/v1"
	"github.com/hireloop/identity/internal/auth"
	srvMappers "github.com/hireloop/identity/internal/service/mappers"
)

// BootstrapFormApi seeds a bootstrap from the principal, using the request
// body only for what the token does not carry.
func BootstrapFormApi(user auth.User, req v1.BootstrapRequest) srvMappers.BootstrapForm {
	form := srvMappers.BootstrapForm{
		ExternalID: user.ExternalID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
	}
	if form.Email == "" {
		form.Email = req.Email
	}
	if form.FirstName == "" {
		form.FirstName = req.FirstName
	}
	if form.LastName == "" {
		form.LastName = req.LastName
	}
	return form
}

func AccountUpdateFormApi(u v1.AccountUpdate) srvMappers.AccountUpdateForm {
	form := srvMappers.AccountUpdateForm{
		OnboardingCompletedAt: u.OnboardingCompletedAt,
	}
	if u.OnboardingStatus != nil {
		status := string(*u.OnboardingStatus)
		form.OnboardingStatus = &status
	}
	if len(u.OnboardingMetadata) > 0 {
		form.OnboardingMetadata = []byte(u.OnboardingMetadata)
	}
	return form
}

func ProfileUpdateFormApi(u v1.CandidateProfileUpdate) srvMappers.ProfileUpdateForm {
	return srvMappers.ProfileUpdateForm{
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Phone:            u.Phone,
		Location:         u.Location,
		LinkedinURL:      u.LinkedinUrl,
		GithubURL:        u.GithubUrl,
		PortfolioURL:     u.PortfolioUrl,
		WebsiteURL:       u.WebsiteUrl,
		CurrentTitle:     u.CurrentTitle,
		CurrentCompany:   u.CurrentCompany,
		YearsExperience:  u.YearsExperience,
		Bio:              u.Bio,
		Skills:           u.Skills,
		DesiredTitles:    u.DesiredTitles,
		DesiredLocations: u.DesiredLocations,
		OpenToRemote:     u.OpenToRemote,
		DesiredSalaryMin: u.DesiredSalaryMin,
		DesiredSalaryMax: u.DesiredSalaryMax,
		Availability:     u.Availability,
		ResumeDocumentID: u.ResumeDocumentId,
	}
}
