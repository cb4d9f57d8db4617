package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hireloop/identity/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type tokenClaims struct {
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	jwt.RegisteredClaims
}

func validClaims(subject string) tokenClaims {
	return tokenClaims{
		Email:      "ada@example.com",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "test",
			Subject:   subject,
			ID:        "1",
		},
	}
}

func signRS256(claims tokenClaims) (string, func(t *jwt.Token) (any, error)) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	Expect(err).To(BeNil())

	ss, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privateKey)
	Expect(err).To(BeNil())

	return ss, func(t *jwt.Token) (any, error) {
		return privateKey.Public(), nil
	}
}

var _ = Describe("jwks authentication", func() {
	Context("authenticate", func() {
		It("successfully validates the token", func() {
			sToken, keyFn := signRS256(validClaims("user_123"))
			authenticator, err := auth.NewJWKSAuthenticatorWithKeyFn(keyFn, "test")
			Expect(err).To(BeNil())

			user, err := authenticator.Authenticate(sToken)
			Expect(err).To(BeNil())
			Expect(user.ExternalID).To(Equal("user_123"))
			Expect(user.Email).To(Equal("ada@example.com"))
			Expect(user.FirstName).To(Equal("Ada"))
			Expect(user.LastName).To(Equal("Lovelace"))
			Expect(user.Token).To(Equal(sToken))
		})

		It("fails with the wrong issuer", func() {
			sToken, keyFn := signRS256(validClaims("user_123"))
			authenticator, err := auth.NewJWKSAuthenticatorWithKeyFn(keyFn, "someone-else")
			Expect(err).To(BeNil())

			_, err = authenticator.Authenticate(sToken)
			Expect(err).ToNot(BeNil())
		})

		It("fails without a subject", func() {
			sToken, keyFn := signRS256(validClaims(""))
			authenticator, err := auth.NewJWKSAuthenticatorWithKeyFn(keyFn, "")
			Expect(err).To(BeNil())

			_, err = authenticator.Authenticate(sToken)
			Expect(err).ToNot(BeNil())
		})

		It("fails with an expired token", func() {
			claims := validClaims("user_123")
			claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
			sToken, keyFn := signRS256(claims)
			authenticator, err := auth.NewJWKSAuthenticatorWithKeyFn(keyFn, "")
			Expect(err).To(BeNil())

			_, err = authenticator.Authenticate(sToken)
			Expect(err).ToNot(BeNil())
		})

		It("fails with a symmetric signing method", func() {
			secret := []byte("secret")
			sToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("user_123")).SignedString(secret)
			Expect(err).To(BeNil())

			authenticator, err := auth.NewJWKSAuthenticatorWithKeyFn(func(t *jwt.Token) (any, error) { return secret, nil }, "")
			Expect(err).To(BeNil())

			_, err = authenticator.Authenticate(sToken)
			Expect(err).ToNot(BeNil())
		})
	})

	Context("middleware", func() {
		It("puts the user in the request context", func() {
			sToken, keyFn := signRS256(validClaims("user_123"))
			authenticator, err := auth.NewJWKSAuthenticatorWithKeyFn(keyFn, "")
			Expect(err).To(BeNil())

			h := &handler{}
			ts := httptest.NewServer(authenticator.Authenticator(h))
			defer ts.Close()

			req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
			Expect(err).To(BeNil())
			req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", sToken))

			resp, rerr := http.DefaultClient.Do(req)
			Expect(rerr).To(BeNil())
			Expect(resp.StatusCode).To(Equal(200))
			Expect(h.User().ExternalID).To(Equal("user_123"))
		})

		It("rejects requests without a token", func() {
			_, keyFn := signRS256(validClaims("user_123"))
			authenticator, err := auth.NewJWKSAuthenticatorWithKeyFn(keyFn, "")
			Expect(err).To(BeNil())

			ts := httptest.NewServer(authenticator.Authenticator(&handler{}))
			defer ts.Close()

			resp, rerr := http.Get(ts.URL)
			Expect(rerr).To(BeNil())
			Expect(resp.StatusCode).To(Equal(401))
		})

		It("rejects an invalid token", func() {
			_, keyFn := signRS256(validClaims("user_123"))
			otherToken, _ := signRS256(validClaims("user_123"))
			authenticator, err := auth.NewJWKSAuthenticatorWithKeyFn(keyFn, "")
			Expect(err).To(BeNil())

			ts := httptest.NewServer(authenticator.Authenticator(&handler{}))
			defer ts.Close()

			req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
			Expect(err).To(BeNil())
			req.Header.Add("Authorization", "Bearer "+otherToken)

			resp, rerr := http.DefaultClient.Do(req)
			Expect(rerr).To(BeNil())
			Expect(resp.StatusCode).To(Equal(401))
		})
	})
})

var _ = Describe("none authentication", func() {
	It("uses the dev user", func() {
		authenticator, err := auth.NewNoneAuthenticator()
		Expect(err).To(BeNil())

		h := &handler{}
		rec := httptest.NewRecorder()
		authenticator.Authenticator(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(rec.Code).To(Equal(200))
		Expect(h.User().ExternalID).To(Equal(auth.DevUserID))
	})

	It("takes the bearer token as the user id", func() {
		authenticator, err := auth.NewNoneAuthenticator()
		Expect(err).To(BeNil())

		h := &handler{}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer alice")
		authenticator.Authenticator(h).ServeHTTP(httptest.NewRecorder(), req)
		Expect(h.User().ExternalID).To(Equal("alice"))
	})
})

type handler struct {
	mu   sync.Mutex
	user auth.User
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.user = auth.MustHaveUser(r.Context())
	h.mu.Unlock()
	w.WriteHeader(200)
}

func (h *handler) User() auth.User {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.user
}
