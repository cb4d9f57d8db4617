package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	keyfunc "github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type JWKSAuthenticator struct {
	keyFn  func(t *jwt.Token) (any, error)
	issuer string
}

func NewJWKSAuthenticatorWithKeyFn(keyFn func(t *jwt.Token) (any, error), issuer string) (*JWKSAuthenticator, error) {
	return &JWKSAuthenticator{keyFn: keyFn, issuer: issuer}, nil
}

// NewJWKSAuthenticator loads the signing keys of the identity provider.
// The key set is refreshed in the background for as long as ctx lives.
func NewJWKSAuthenticator(ctx context.Context, jwkCertUrl string, issuer string) (*JWKSAuthenticator, error) {
	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwkCertUrl})
	if err != nil {
		return nil, fmt.Errorf("failed to get identity provider public keys: %w", err)
	}

	return &JWKSAuthenticator{keyFn: k.Keyfunc, issuer: issuer}, nil
}

func (a *JWKSAuthenticator) Authenticate(token string) (User, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name, jwt.SigningMethodES256.Name}),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	t, err := jwt.NewParser(opts...).Parse(token, a.keyFn)
	if err != nil {
		zap.S().Named("auth").Debugw("failed to parse or the token is invalid", "error", err)
		return User{}, fmt.Errorf("failed to authenticate token: %w", err)
	}

	if !t.Valid {
		return User{}, errors.New("failed to parse or validate token")
	}

	return a.parseToken(t, token)
}

func (a *JWKSAuthenticator) parseToken(userToken *jwt.Token, raw string) (User, error) {
	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, errors.New("failed to parse jwt token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return User{}, errors.New("token has no subject")
	}

	return User{
		ExternalID: sub,
		Email:      stringClaim(claims, "email"),
		FirstName:  stringClaim(claims, "given_name"),
		LastName:   stringClaim(claims, "family_name"),
		Token:      raw,
	}, nil
}

func (a *JWKSAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken, ok := bearerToken(r)
		if !ok {
			unauthorized(w, r, "no token provided")
			return
		}

		user, err := a.Authenticate(accessToken)
		if err != nil {
			unauthorized(w, r, "authentication failed")
			return
		}

		ctx := NewTokenContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}
