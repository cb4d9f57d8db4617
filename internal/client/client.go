package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	api "github.com/hireloop/identity/api/v1"
	"github.com/hireloop/identity/internal/onboarding"
	"github.com/hireloop/identity/pkg/requestid"
)

// APIError is a non-2xx answer of the identity API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID == "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%d: %s (request %s)", e.StatusCode, e.Message, e.RequestID)
}

// Client talks to the identity API on behalf of the signed-in user. It
// implements onboarding.Backend.
type Client struct {
	server     *url.URL
	httpClient *http.Client
	tokens     onboarding.TokenProvider
}

var _ onboarding.Backend = &Client{}

type ClientOption func(c *Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(server string, tokens onboarding.TokenProvider, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(server, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid server %q", server)
	}
	c := &Client{
		server:     u,
		httpClient: NewHTTPClient(),
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromConfig returns a client for the configured server, authenticated
// with HIRELOOP_TOKEN or the configured token.
func NewFromConfig(config *Config) (*Client, error) {
	return New(config.Service.Server, EnvToken{Fallback: config.Service.Token})
}

// NewHTTPClient returns an HTTP client that stamps every request with a request id.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &requestid.Transport{
			Base: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

func (c *Client) FetchOwnProfile(ctx context.Context) (*onboarding.Profile, error) {
	var profile api.CandidateProfile
	if err := c.do(ctx, http.MethodGet, "/api/v1/candidates/me", nil, &profile); err != nil {
		return nil, err
	}
	return profileFromApi(profile)
}

func (c *Client) CreateAccountAndProfile(ctx context.Context, seed onboarding.Principal) (*onboarding.CreateResult, error) {
	body := api.BootstrapRequest{Email: seed.Email, FirstName: seed.FirstName, LastName: seed.LastName}

	var result api.BootstrapResult
	err := c.do(ctx, http.MethodPost, "/api/v1/users/me/bootstrap", body, &result)
	if err != nil {
		// a refused bootstrap still carries a result
		var apiErr *APIError
		if errors.As(err, &apiErr) && result.Error != "" {
			return &onboarding.CreateResult{Success: false, Error: result.Error}, nil
		}
		return nil, err
	}

	out := &onboarding.CreateResult{Success: result.Success, Error: result.Error}
	if result.Profile != nil {
		if out.Profile, err = profileFromApi(*result.Profile); err != nil {
			return nil, err
		}
	}
	if result.Account != nil {
		out.Account = accountFromApi(*result.Account)
	}
	return out, nil
}

func (c *Client) FetchAccount(ctx context.Context) (*onboarding.Account, error) {
	var account api.Account
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, &account); err != nil {
		return nil, err
	}
	return accountFromApi(account), nil
}

func (c *Client) UpdateProfile(ctx context.Context, candidateID string, fields onboarding.ProfileData) (*onboarding.Profile, error) {
	var profile api.CandidateProfile
	if err := c.do(ctx, http.MethodPatch, "/api/v1/candidates/"+url.PathEscape(candidateID), fields, &profile); err != nil {
		return nil, err
	}
	return profileFromApi(profile)
}

func (c *Client) UpdateAccount(ctx context.Context, patch onboarding.AccountPatch) (*onboarding.Account, error) {
	body := api.AccountUpdate{
		OnboardingMetadata:    patch.OnboardingMetadata,
		OnboardingCompletedAt: patch.OnboardingCompletedAt,
	}
	if patch.OnboardingStatus != nil {
		status := api.OnboardingStatus(*patch.OnboardingStatus)
		body.OnboardingStatus = &status
	}

	var account api.Account
	if err := c.do(ctx, http.MethodPatch, "/api/v1/users/me", body, &account); err != nil {
		return nil, err
	}
	return accountFromApi(account), nil
}

func (c *Client) UploadDocument(ctx context.Context, file onboarding.ResumeFile, meta onboarding.DocumentMeta) (*onboarding.Document, error) {
	if file.Content == nil {
		return nil, errors.New("file has no content")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("document_type", meta.DocumentType); err != nil {
		return nil, errors.Wrap(err, "writing form")
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	if file.ContentType != "" {
		header.Set("Content-Type", file.ContentType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, errors.Wrap(err, "writing form")
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "writing form")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/documents", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var doc api.Document
	if err := c.send(req, &doc); err != nil {
		return nil, err
	}
	return &onboarding.Document{
		ID:           doc.Id.String(),
		DocumentType: doc.DocumentType,
		FileName:     doc.FileName,
		ContentType:  doc.ContentType,
		Size:         doc.Size,
	}, nil
}

func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/documents/"+url.PathEscape(documentID), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting credential")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.server.String()+path, body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s", method, path)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// send decodes a successful answer into out. A 404 is reported as
// onboarding.ErrNotFound, any other failure as an *APIError. The error body
// is also decoded into out when it fits.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s %s", req.Method, req.URL.Path)
	}

	if resp.StatusCode >= 300 {
		var apiErr api.Error
		_ = json.Unmarshal(data, &apiErr)
		if resp.StatusCode == http.StatusNotFound {
			return errors.Wrapf(onboarding.ErrNotFound, "%s %s", req.Method, req.URL.Path)
		}
		if out != nil {
			_ = json.Unmarshal(data, out)
		}
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message, RequestID: apiErr.RequestId}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decoding %s %s", req.Method, req.URL.Path)
	}
	return nil
}

// profileFromApi flattens a profile into the sparse field map the wizard works on.
func profileFromApi(profile api.CandidateProfile) (*onboarding.Profile, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return nil, errors.Wrap(err, "encoding profile")
	}
	fields := onboarding.ProfileData{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "decoding profile")
	}
	for _, k := range []string{"id", "account_id", "created_at", "updated_at"} {
		delete(fields, k)
	}
	return &onboarding.Profile{ID: profile.Id.String(), Fields: fields}, nil
}

func accountFromApi(account api.Account) *onboarding.Account {
	return &onboarding.Account{
		ID:                    account.Id.String(),
		UserID:                account.ExternalId,
		Email:                 account.Email,
		Role:                  account.Role,
		OnboardingStatus:      onboarding.Status(account.OnboardingStatus),
		OnboardingMetadata:    account.OnboardingMetadata,
		OnboardingCompletedAt: account.OnboardingCompletedAt,
	}
}
