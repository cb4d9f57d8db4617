package onboarding

import (
	"context"

	"github.com/hireloop/identity/internal/documents"
)

// AttachResume validates file locally, uploads it and records it on the
// session. A previously uploaded resume is deleted once the new one is
// stored. Failures are kept on Session.UploadError and leave the rest of the
// session untouched.
func (c *Controller) AttachResume(ctx context.Context, file ResumeFile) error {
	c.mu.Lock()
	if c.navigated {
		c.mu.Unlock()
		return ErrNavigatedAway
	}
	c.session.UploadError = ""
	previous, _ := c.session.ProfileData[FieldResumeDocumentID].(string)
	c.mu.Unlock()

	file.ContentType = documents.NormalizeContentType(file.ContentType, file.Name)
	if err := documents.Validate(file.Name, file.ContentType, file.Size); err != nil {
		return c.uploadFailed(&UploadError{Local: true, Err: err})
	}

	doc, err := c.backend.UploadDocument(ctx, file, DocumentMeta{DocumentType: DocumentTypeResume})
	if err != nil {
		return c.uploadFailed(&UploadError{Err: err})
	}

	if previous != "" && previous != doc.ID {
		if err := c.backend.DeleteDocument(ctx, previous); err != nil {
			c.log.Warnw("failed to delete previous resume", "document", previous, "error", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.ProfileData = c.session.ProfileData.Merge(ProfileData{
		FieldResumeFile:       file,
		FieldResumeUploaded:   true,
		FieldResumeDocumentID: doc.ID,
	})
	c.log.Infow("resume attached", "document", doc.ID, "size", file.Size)
	return nil
}

func (c *Controller) uploadFailed(err *UploadError) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.UploadError = err.Error()
	return err
}
