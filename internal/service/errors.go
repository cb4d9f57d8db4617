package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id string, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrAccountNotFound(externalID string) *ErrResourceNotFound {
	return NewErrResourceNotFound(externalID, "account for user")
}

func NewErrProfileNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id.String(), "candidate profile")
}

func NewErrOwnProfileNotFound(externalID string) *ErrResourceNotFound {
	return NewErrResourceNotFound(externalID, "candidate profile of user")
}

func NewErrDocumentNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id.String(), "document")
}

type ErrForbidden struct {
	error
}

func NewErrProfileUpdateForbidden(id uuid.UUID) *ErrForbidden {
	return &ErrForbidden{fmt.Errorf("forbidden to update candidate profile %s", id)}
}

func NewErrDocumentAccessForbidden(id uuid.UUID) *ErrForbidden {
	return &ErrForbidden{fmt.Errorf("forbidden access to document %s", id)}
}

type ErrInvalidTransition struct {
	error
}

func NewErrInvalidTransition(from, to string) *ErrInvalidTransition {
	return &ErrInvalidTransition{fmt.Errorf("onboarding status cannot move from %q to %q", from, to)}
}

type ErrInvalidDocument struct {
	error
}

func NewErrInvalidDocument(err error) *ErrInvalidDocument {
	return &ErrInvalidDocument{fmt.Errorf("invalid document: %w", err)}
}
