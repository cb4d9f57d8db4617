package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/hireloop/identity/internal/documents"
	"github.com/hireloop/identity/internal/service/mappers"
	"github.com/hireloop/identity/internal/store"
	"github.com/hireloop/identity/internal/store/model"
	"github.com/hireloop/identity/pkg/metrics"
	"go.uber.org/zap"
)

type DocumentService struct {
	store     store.Store
	objects   documents.ObjectStore
	extractor documents.Extractor
}

func NewDocumentService(store store.Store, objects documents.ObjectStore, extractor documents.Extractor) *DocumentService {
	return &DocumentService{
		store:     store,
		objects:   objects,
		extractor: extractor,
	}
}

// Upload stores the file of the user. A resume also becomes the resume of
// the user's candidate profile.
func (d *DocumentService) Upload(ctx context.Context, externalID string, form mappers.DocumentUploadForm) (*model.Document, error) {
	if form.DocumentType == "" {
		form.DocumentType = model.DocumentTypeResume
	}
	fileName := sanitizeFileName(form.FileName)
	contentType := documents.NormalizeContentType(form.ContentType, fileName)

	if err := documents.Validate(fileName, contentType, form.Size); err != nil {
		metrics.IncreaseDocumentUpload("rejected")
		return nil, NewErrInvalidDocument(err)
	}

	account, err := d.store.Account().GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrAccountNotFound(externalID)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	// the declared size is not trusted
	data, err := io.ReadAll(io.LimitReader(form.Content, documents.MaxSize+1))
	if err != nil {
		metrics.IncreaseDocumentUpload("failed")
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if err := documents.Validate(fileName, contentType, int64(len(data))); err != nil {
		metrics.IncreaseDocumentUpload("rejected")
		return nil, NewErrInvalidDocument(err)
	}

	id := uuid.New()
	document := model.Document{
		ID:           id,
		AccountID:    account.ID,
		DocumentType: form.DocumentType,
		FileName:     fileName,
		ContentType:  contentType,
		Size:         int64(len(data)),
		ObjectKey:    model.ObjectKeyFor(externalID, id, fileName),
	}

	if err := d.objects.Put(ctx, document.ObjectKey, bytes.NewReader(data), document.Size, contentType); err != nil {
		metrics.IncreaseDocumentUpload("failed")
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	if d.extractor != nil {
		text, err := d.extractor.Extract(bytes.NewReader(data), contentType)
		if err != nil {
			zap.S().Named("document_service").Warnw("failed to extract document text", "error", err, "document_id", id)
		} else {
			document.ExtractedText = text
		}
	}

	created, err := d.createDocument(ctx, account.ID, document)
	if err != nil {
		if delErr := d.objects.Delete(context.Background(), document.ObjectKey); delErr != nil {
			zap.S().Named("document_service").Errorw("failed to remove orphan object", "error", delErr, "key", document.ObjectKey)
		}
		metrics.IncreaseDocumentUpload("failed")
		return nil, err
	}

	metrics.IncreaseDocumentUpload("stored")
	zap.S().Named("document_service").Infow("document stored", "document_id", created.ID, "type", created.DocumentType, "size", created.Size, "storage", d.objects.Type())

	return created, nil
}

func (d *DocumentService) createDocument(ctx context.Context, accountID uuid.UUID, document model.Document) (*model.Document, error) {
	ctx, err := d.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	created, err := d.store.Document().Create(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	if created.DocumentType == model.DocumentTypeResume {
		profile, err := d.store.Profile().GetByAccountID(ctx, accountID)
		switch {
		case err == nil:
			if _, err := d.store.Profile().Update(ctx, profile.ID, map[string]any{"resume_document_id": created.ID}); err != nil {
				return nil, fmt.Errorf("failed to attach resume to profile: %w", err)
			}
		case !errors.Is(err, store.ErrRecordNotFound):
			return nil, fmt.Errorf("failed to get candidate profile: %w", err)
		}
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// Delete removes a document of the user. Removing the stored object is best effort.
func (d *DocumentService) Delete(ctx context.Context, externalID string, id uuid.UUID) error {
	document, err := d.store.Document().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrDocumentNotFound(id)
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	account, err := d.store.Account().GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrDocumentAccessForbidden(id)
		}
		return fmt.Errorf("failed to get account: %w", err)
	}
	if document.AccountID != account.ID {
		return NewErrDocumentAccessForbidden(id)
	}

	if err := d.deleteDocument(ctx, account.ID, id); err != nil {
		return err
	}

	if err := d.objects.Delete(ctx, document.ObjectKey); err != nil {
		zap.S().Named("document_service").Errorw("failed to remove object", "error", err, "key", document.ObjectKey)
	}

	zap.S().Named("document_service").Infow("document deleted", "document_id", id)
	return nil
}

func (d *DocumentService) deleteDocument(ctx context.Context, accountID, id uuid.UUID) error {
	ctx, err := d.store.NewTransactionContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	profile, err := d.store.Profile().GetByAccountID(ctx, accountID)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("failed to get candidate profile: %w", err)
	}
	if profile != nil && profile.ResumeDocumentID != nil && *profile.ResumeDocumentID == id {
		if _, err := d.store.Profile().Update(ctx, profile.ID, map[string]any{"resume_document_id": nil}); err != nil {
			return fmt.Errorf("failed to detach resume from profile: %w", err)
		}
	}

	if err := d.store.Document().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}

	_, err = store.Commit(ctx)
	return err
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
