package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	api "github.com/hireloop/identity/api/v1"
	"github.com/hireloop/identity/internal/service"
	"github.com/hireloop/identity/pkg/requestid"
)

type ServiceHandler struct {
	accountSrv  *service.AccountService
	profileSrv  *service.ProfileService
	documentSrv *service.DocumentService
}

func NewServiceHandler(accountService *service.AccountService, profileService *service.ProfileService, documentService *service.DocumentService) *ServiceHandler {
	return &ServiceHandler{
		accountSrv:  accountService,
		profileSrv:  profileService,
		documentSrv: documentService,
	}
}

// Register mounts the authenticated API routes on r.
func (s *ServiceHandler) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users/me", s.GetAccount)
		r.Patch("/users/me", s.UpdateAccount)
		r.Post("/users/me/bootstrap", s.Bootstrap)
		r.Get("/candidates/me", s.GetOwnProfile)
		r.Patch("/candidates/{id}", s.UpdateProfile)
		r.Post("/documents", s.UploadDocument)
		r.Delete("/documents/{id}", s.DeleteDocument)
	})
}

// (GET /health)
func Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.Health{Status: "ok"})
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, api.Error{Message: message, RequestId: requestid.FromContext(r.Context())})
}

// renderServiceError picks the status code from the type of a service error.
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch err.(type) {
	case *service.ErrResourceNotFound:
		renderError(w, r, http.StatusNotFound, err.Error())
	case *service.ErrForbidden:
		renderError(w, r, http.StatusForbidden, err.Error())
	case *service.ErrInvalidTransition:
		renderError(w, r, http.StatusConflict, err.Error())
	case *service.ErrInvalidDocument:
		renderError(w, r, http.StatusBadRequest, err.Error())
	default:
		renderError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
