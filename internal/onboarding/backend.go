package onboarding

import (
	"context"
)

// TokenProvider supplies a bearer credential. It is called for every backend
// call and may not cache.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

//go:generate moq -fmt=goimports -out zz_generated_backend.go . Backend

// Backend is the profile service the wizard reads from and writes to.
type Backend interface {
	// FetchOwnProfile returns ErrNotFound when the caller has no profile yet.
	FetchOwnProfile(ctx context.Context) (*Profile, error)
	// CreateAccountAndProfile is safe to call repeatedly.
	CreateAccountAndProfile(ctx context.Context, seed Principal) (*CreateResult, error)
	FetchAccount(ctx context.Context) (*Account, error)
	// UpdateProfile writes only the given fields.
	UpdateProfile(ctx context.Context, candidateID string, fields ProfileData) (*Profile, error)
	UpdateAccount(ctx context.Context, patch AccountPatch) (*Account, error)
	UploadDocument(ctx context.Context, file ResumeFile, meta DocumentMeta) (*Document, error)
	DeleteDocument(ctx context.Context, documentID string) error
}

// Navigator performs hard navigation: the caller leaves the wizard and any
// in-memory state is abandoned.
type Navigator interface {
	Navigate(destination string)
}

type NavigatorFunc func(destination string)

func (f NavigatorFunc) Navigate(destination string) {
	f(destination)
}
