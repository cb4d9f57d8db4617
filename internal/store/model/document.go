package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const DocumentTypeResume = "resume"

type Document struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid"`
	AccountID     uuid.UUID `gorm:"type:uuid;index;not null"`
	DocumentType  string    `gorm:"size:32;not null"`
	FileName      string    `gorm:"size:255;not null"`
	ContentType   string    `gorm:"size:255;not null"`
	Size          int64     `gorm:"not null"`
	ObjectKey     string    `gorm:"not null"`
	ExtractedText string    `gorm:"type:text"`
	CreatedAt     time.Time
}

type DocumentList []Document

// ObjectKeyFor places every document under its owner so a bucket listing by
// prefix returns one user's files.
func ObjectKeyFor(externalID string, id uuid.UUID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s", externalID, id, fileName)
}
