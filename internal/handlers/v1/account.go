package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
	api "github.com/hireloop/identity/api/v1"
	"github.com/hireloop/identity/internal/auth"
	"github.com/hireloop/identity/internal/handlers/v1/mappers"
	"github.com/hireloop/identity/internal/handlers/validator"
	"go.uber.org/zap"
)

// (POST /api/v1/users/me/bootstrap)
func (s *ServiceHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	var req api.BootstrapRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, r, http.StatusBadRequest, "invalid body")
		return
	}

	v := validator.NewValidator()
	if err := v.Struct(req); err != nil {
		renderError(w, r, http.StatusBadRequest, validator.Message(err))
		return
	}

	user := auth.MustHaveUser(r.Context())
	account, profile, created, err := s.accountSrv.Bootstrap(r.Context(), mappers.BootstrapFormApi(user, req))
	if err != nil {
		zap.S().Named("handlers").Errorw("failed to bootstrap account", "error", err, "user", user.ExternalID)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.BootstrapResult{Success: false, Error: "failed to create account and profile"})
		return
	}

	apiAccount := mappers.AccountToApi(*account)
	apiProfile := mappers.ProfileToApi(*profile)
	if created {
		render.Status(r, http.StatusCreated)
	}
	render.JSON(w, r, api.BootstrapResult{
		Success: true,
		Created: created,
		Account: &apiAccount,
		Profile: &apiProfile,
	})
}

// (GET /api/v1/users/me)
func (s *ServiceHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	account, err := s.accountSrv.GetAccount(r.Context(), user.ExternalID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.AccountToApi(*account))
}

// (PATCH /api/v1/users/me)
func (s *ServiceHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var body api.AccountUpdate
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid body")
		return
	}

	v := validator.NewValidator()
	v.Register(validator.NewAccountValidationRules()...)
	if err := v.Struct(body); err != nil {
		renderError(w, r, http.StatusBadRequest, validator.Message(err))
		return
	}

	user := auth.MustHaveUser(r.Context())
	account, err := s.accountSrv.UpdateAccount(r.Context(), user.ExternalID, mappers.AccountUpdateFormApi(body))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.AccountToApi(*account))
}
