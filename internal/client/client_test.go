package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	api "github.com/hireloop/identity/api/v1"
	"github.com/hireloop/identity/internal/client"
	"github.com/hireloop/identity/internal/onboarding"
	"github.com/hireloop/identity/pkg/requestid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	ContentType   string
	Body          []byte
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get(requestid.Header),
		ContentType:   r.Header.Get("Content-Type"),
		Body:          body,
	})
	handler := f.handler
	f.mu.Unlock()

	r.Body = io.NopCloser(strings.NewReader(string(body)))
	handler(w, r)
}

func (f *fakeAPI) Last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var _ = Describe("client", func() {
	var (
		ctx    context.Context
		fake   *fakeAPI
		server *httptest.Server
		c      *client.Client
	)

	BeforeEach(func() {
		ctx = context.TODO()
		fake = &fakeAPI{}
		server = httptest.NewServer(fake)

		var err error
		c, err = client.New(server.URL, client.StaticToken("token-1"))
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		server.Close()
	})

	It("sends the bearer token and a request id", func() {
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, api.Account{Id: uuid.New(), OnboardingStatus: api.OnboardingStatusPending})
		}

		_, err := c.FetchAccount(ctx)
		Expect(err).To(BeNil())

		req := fake.Last()
		Expect(req.Authorization).To(Equal("Bearer token-1"))
		Expect(req.RequestID).NotTo(BeEmpty())
		Expect(req.Path).To(Equal("/api/v1/users/me"))
	})

	It("reports a missing profile as not found", func() {
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, api.Error{Message: "profile not found"})
		}

		_, err := c.FetchOwnProfile(ctx)
		Expect(errors.Is(err, onboarding.ErrNotFound)).To(BeTrue())
	})

	It("flattens the profile into sparse fields", func() {
		id := uuid.New()
		remote := true
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, api.CandidateProfile{
				Id:           id,
				AccountId:    uuid.New(),
				Phone:        "555",
				OpenToRemote: &remote,
				Skills:       []string{"go"},
				CreatedAt:    time.Now(),
			})
		}

		profile, err := c.FetchOwnProfile(ctx)
		Expect(err).To(BeNil())
		Expect(profile.ID).To(Equal(id.String()))
		Expect(profile.Fields).To(Equal(onboarding.ProfileData{
			"phone":          "555",
			"open_to_remote": true,
			"skills":         []any{"go"},
		}))
	})

	It("returns the bootstrap result", func() {
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, api.BootstrapResult{
				Success: true,
				Created: true,
				Profile: &api.CandidateProfile{Id: uuid.New()},
				Account: &api.Account{Id: uuid.New(), Role: "candidate", OnboardingStatus: api.OnboardingStatusPending},
			})
		}

		result, err := c.CreateAccountAndProfile(ctx, onboarding.Principal{Email: "ada@example.com", FirstName: "Ada"})
		Expect(err).To(BeNil())
		Expect(result.Success).To(BeTrue())
		Expect(result.Profile).NotTo(BeNil())
		Expect(result.Account.OnboardingStatus).To(Equal(onboarding.StatusPending))

		var body api.BootstrapRequest
		Expect(json.Unmarshal(fake.Last().Body, &body)).To(Succeed())
		Expect(body.Email).To(Equal("ada@example.com"))
		Expect(body.FirstName).To(Equal("Ada"))
	})

	It("turns a refused bootstrap into an unsuccessful result", func() {
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, api.BootstrapResult{Success: false, Error: "failed to create account and profile"})
		}

		result, err := c.CreateAccountAndProfile(ctx, onboarding.Principal{})
		Expect(err).To(BeNil())
		Expect(result.Success).To(BeFalse())
		Expect(result.Error).To(Equal("failed to create account and profile"))
	})

	It("sends only the given profile fields", func() {
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, api.CandidateProfile{Id: uuid.New(), Phone: "555"})
		}

		_, err := c.UpdateProfile(ctx, "profile-1", onboarding.ProfileData{"phone": "555"})
		Expect(err).To(BeNil())

		req := fake.Last()
		Expect(req.Method).To(Equal(http.MethodPatch))
		Expect(req.Path).To(Equal("/api/v1/candidates/profile-1"))
		Expect(req.Body).To(MatchJSON(`{"phone":"555"}`))
	})

	It("omits absent account fields", func() {
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, api.Account{Id: uuid.New(), OnboardingStatus: api.OnboardingStatusInProgress})
		}
		status := onboarding.StatusInProgress

		_, err := c.UpdateAccount(ctx, onboarding.AccountPatch{
			OnboardingStatus:   &status,
			OnboardingMetadata: json.RawMessage(`{"current_step":2}`),
		})
		Expect(err).To(BeNil())
		Expect(fake.Last().Body).To(MatchJSON(`{"onboarding_status":"in_progress","onboarding_metadata":{"current_step":2}}`))
	})

	It("surfaces conflicts with the request id", func() {
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, api.Error{Message: "invalid transition", RequestId: "req-9"})
		}

		_, err := c.UpdateAccount(ctx, onboarding.AccountPatch{})

		var apiErr *client.APIError
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.StatusCode).To(Equal(http.StatusConflict))
		Expect(apiErr.Message).To(Equal("invalid transition"))
		Expect(apiErr.RequestID).To(Equal("req-9"))
	})

	It("uploads the resume as multipart form data", func() {
		docID := uuid.New()
		var documentType, fileName, contentType, content string
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			file, header, err := r.FormFile("file")
			if err != nil {
				writeJSON(w, http.StatusBadRequest, api.Error{Message: err.Error()})
				return
			}
			data, _ := io.ReadAll(file)
			documentType = r.FormValue("document_type")
			fileName = header.Filename
			contentType = header.Header.Get("Content-Type")
			content = string(data)
			writeJSON(w, http.StatusCreated, api.Document{Id: docID, DocumentType: documentType, FileName: fileName, Size: int64(len(data))})
		}

		doc, err := c.UploadDocument(ctx, onboarding.ResumeFile{
			Name:        "cv.pdf",
			ContentType: "application/pdf",
			Size:        4,
			Content:     strings.NewReader("%PDF"),
		}, onboarding.DocumentMeta{DocumentType: onboarding.DocumentTypeResume})
		Expect(err).To(BeNil())

		Expect(doc.ID).To(Equal(docID.String()))
		Expect(documentType).To(Equal("resume"))
		Expect(fileName).To(Equal("cv.pdf"))
		Expect(contentType).To(Equal("application/pdf"))
		Expect(content).To(Equal("%PDF"))
	})

	It("deletes documents", func() {
		fake.handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}

		Expect(c.DeleteDocument(ctx, "doc-1")).To(Succeed())
		Expect(fake.Last().Method).To(Equal(http.MethodDelete))
		Expect(fake.Last().Path).To(Equal("/api/v1/documents/doc-1"))
	})

	It("fails without a credential before any request", func() {
		c, err := client.New(server.URL, client.StaticToken(""))
		Expect(err).To(BeNil())

		_, err = c.FetchAccount(ctx)
		Expect(errors.Is(err, client.ErrNoToken)).To(BeTrue())
		Expect(fake.requests).To(BeEmpty())
	})
})

var _ = Describe("token providers", func() {
	It("prefers the environment", func() {
		GinkgoT().Setenv(client.TokenEnvKey, "from-env")
		token, err := client.EnvToken{Fallback: "from-config"}.Token(context.TODO())
		Expect(err).To(BeNil())
		Expect(token).To(Equal("from-env"))
	})

	It("falls back on the configured token", func() {
		GinkgoT().Setenv(client.TokenEnvKey, "")
		token, err := client.EnvToken{Fallback: "from-config"}.Token(context.TODO())
		Expect(err).To(BeNil())
		Expect(token).To(Equal("from-config"))
	})
})
