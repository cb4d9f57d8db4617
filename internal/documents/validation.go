package documents

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/thoas/go-funk"
)

const (
	// MaxSize is the largest resume accepted, 5 MiB.
	MaxSize int64 = 5 << 20

	ContentTypePDF  = "application/pdf"
	ContentTypeDoc  = "application/msword"
	ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrUnsupportedType = errors.New("only PDF, DOC and DOCX files are accepted")
	ErrTooLarge        = fmt.Errorf("file exceeds the %d MiB limit", MaxSize>>20)
	ErrEmpty           = errors.New("file is empty")

	allowedContentTypes = []string{ContentTypePDF, ContentTypeDoc, ContentTypeDocx}

	extensions = map[string]string{
		".pdf":  ContentTypePDF,
		".doc":  ContentTypeDoc,
		".docx": ContentTypeDocx,
	}
)

// ContentTypeFor resolves the content type of a resume from its file name.
// It returns an empty string for extensions that are not accepted.
func ContentTypeFor(fileName string) string {
	return extensions[strings.ToLower(filepath.Ext(fileName))]
}

// NormalizeContentType strips parameters and falls back on the file extension
// when the declared type is missing or generic.
func NormalizeContentType(declared, fileName string) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
			return mediaType
		}
	}
	return ContentTypeFor(fileName)
}

// Validate checks a resume before it is sent anywhere.
func Validate(fileName, contentType string, size int64) error {
	if size <= 0 {
		return ErrEmpty
	}
	if size > MaxSize {
		return ErrTooLarge
	}
	if !funk.ContainsString(allowedContentTypes, NormalizeContentType(contentType, fileName)) {
		return ErrUnsupportedType
	}
	return nil
}
