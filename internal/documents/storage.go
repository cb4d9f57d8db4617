package documents

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectStore keeps the raw bytes of uploaded documents.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string, dst io.Writer) error
	Delete(ctx context.Context, key string) error
	Type() string
}
