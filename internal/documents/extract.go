package documents

import (
	"fmt"
	"io"

	"code.sajari.com/docconv"
)

// Extractor turns a document into plain text.
type Extractor interface {
	Extract(r io.Reader, contentType string) (string, error)
}

type DocconvExtractor struct{}

func NewExtractor() *DocconvExtractor {
	return &DocconvExtractor{}
}

func (e *DocconvExtractor) Extract(r io.Reader, contentType string) (string, error) {
	res, err := docconv.Convert(r, contentType, false)
	if err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}
	return res.Body, nil
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(r io.Reader, contentType string) (string, error)

func (f ExtractorFunc) Extract(r io.Reader, contentType string) (string, error) {
	return f(r, contentType)
}
