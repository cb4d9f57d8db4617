package auth

import (
	"context"

	"go.uber.org/zap"
)

type tokenKeyType struct{}

var (
	tokenKey tokenKeyType
)

// User is the authenticated principal of a request. ExternalID is the
// subject issued by the identity provider.
type User struct {
	ExternalID string
	Email      string
	FirstName  string
	LastName   string
	Token      string
}

func UserFromContext(ctx context.Context) (User, bool) {
	val, ok := ctx.Value(tokenKey).(User)
	return val, ok
}

func MustHaveUser(ctx context.Context) User {
	user, found := UserFromContext(ctx)
	if !found {
		zap.S().Named("auth").Panic("failed to find user in context")
	}
	return user
}

func NewTokenContext(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, tokenKey, u)
}
