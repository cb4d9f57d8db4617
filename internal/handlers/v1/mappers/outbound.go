package mappers

import (
	"encoding/json"

	v1 "github.com/hireloop/identity/api/v1"
	"github.com/hireloop/identity/internal/store/model"
)

func AccountToApi(a model.Account) v1.Account {
	account := v1.Account{
		Id:                    a.ID,
		ExternalId:            a.ExternalID,
		Email:                 a.Email,
		FirstName:             a.FirstName,
		LastName:              a.LastName,
		Role:                  a.Role,
		OnboardingStatus:      v1.StringToOnboardingStatus(a.OnboardingStatus),
		OnboardingCompletedAt: a.OnboardingCompletedAt,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
	if len(a.OnboardingMetadata) > 0 {
		account.OnboardingMetadata = json.RawMessage(a.OnboardingMetadata)
	}
	return account
}

func ProfileToApi(p model.CandidateProfile) v1.CandidateProfile {
	return v1.CandidateProfile{
		Id:               p.ID,
		AccountId:        p.AccountID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Phone:            p.Phone,
		Location:         p.Location,
		LinkedinUrl:      p.LinkedinURL,
		GithubUrl:        p.GithubURL,
		PortfolioUrl:     p.PortfolioURL,
		WebsiteUrl:       p.WebsiteURL,
		CurrentTitle:     p.CurrentTitle,
		CurrentCompany:   p.CurrentCompany,
		YearsExperience:  p.YearsExperience,
		Bio:              p.Bio,
		Skills:           p.Skills,
		DesiredTitles:    p.DesiredTitles,
		DesiredLocations: p.DesiredLocations,
		OpenToRemote:     p.OpenToRemote,
		DesiredSalaryMin: p.DesiredSalaryMin,
		DesiredSalaryMax: p.DesiredSalaryMax,
		Availability:     p.Availability,
		ResumeDocumentId: p.ResumeDocumentID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func DocumentToApi(d model.Document) v1.Document {
	return v1.Document{
		Id:           d.ID,
		DocumentType: d.DocumentType,
		FileName:     d.FileName,
		ContentType:  d.ContentType,
		Size:         d.Size,
		CreatedAt:    d.CreatedAt,
	}
}
