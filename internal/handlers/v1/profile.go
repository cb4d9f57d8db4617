package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	api "github.com/hireloop/identity/api/v1"
	"github.com/hireloop/identity/internal/auth"
	"github.com/hireloop/identity/internal/handlers/v1/mappers"
	"github.com/hireloop/identity/internal/handlers/validator"
)

// (GET /api/v1/candidates/me)
func (s *ServiceHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	profile, err := s.profileSrv.GetOwnProfile(r.Context(), user.ExternalID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.ProfileToApi(*profile))
}

// (PATCH /api/v1/candidates/{id})
func (s *ServiceHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid candidate id")
		return
	}

	var body api.CandidateProfileUpdate
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid body")
		return
	}

	v := validator.NewValidator()
	v.Register(validator.NewProfileValidationRules()...)
	if err := v.Struct(body); err != nil {
		renderError(w, r, http.StatusBadRequest, validator.Message(err))
		return
	}

	user := auth.MustHaveUser(r.Context())
	profile, err := s.profileSrv.UpdateProfile(r.Context(), user.ExternalID, id, mappers.ProfileUpdateFormApi(body))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.ProfileToApi(*profile))
}
