package auth

import (
	"net/http"
)

const (
	DevUserID    = "dev-user"
	DevUserEmail = "dev-user@hireloop.local"
)

// NoneAuthenticator trusts every request. A bearer token, when present, is
// taken as the user id so several local users can share one dev server.
type NoneAuthenticator struct{}

func NewNoneAuthenticator() (*NoneAuthenticator, error) {
	return &NoneAuthenticator{}, nil
}

func (n *NoneAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := User{
			ExternalID: DevUserID,
			Email:      DevUserEmail,
			FirstName:  "Dev",
			LastName:   "User",
		}
		if token, ok := bearerToken(r); ok {
			user.ExternalID = token
			user.Email = token + "@hireloop.local"
			user.Token = token
		}

		ctx := NewTokenContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
