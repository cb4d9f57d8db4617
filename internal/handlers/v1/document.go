package v1

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/hireloop/identity/internal/auth"
	"github.com/hireloop/identity/internal/documents"
	"github.com/hireloop/identity/internal/handlers/v1/mappers"
	srvMappers "github.com/hireloop/identity/internal/service/mappers"
)

// multipart overhead allowed on top of the file itself
const uploadOverhead = 1 << 20

// (POST /api/v1/documents)
func (s *ServiceHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, documents.MaxSize+uploadOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			renderError(w, r, http.StatusBadRequest, documents.ErrTooLarge.Error())
			return
		}
		renderError(w, r, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	user := auth.MustHaveUser(r.Context())
	document, err := s.documentSrv.Upload(r.Context(), user.ExternalID, srvMappers.DocumentUploadForm{
		DocumentType: r.FormValue("document_type"),
		FileName:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Content:      file,
	})
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.DocumentToApi(*document))
}

// (DELETE /api/v1/documents/{id})
func (s *ServiceHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "invalid document id")
		return
	}

	user := auth.MustHaveUser(r.Context())
	if err := s.documentSrv.Delete(r.Context(), user.ExternalID, id); err != nil {
		renderServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
