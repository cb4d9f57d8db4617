package onboarding_test

import (
	"context"
	"errors"

	"github.com/hireloop/identity/internal/onboarding"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("initializer", func() {
	var (
		ctx       context.Context
		navigator *recordingNavigator
	)

	BeforeEach(func() {
		ctx = context.TODO()
		navigator = &recordingNavigator{}
	})

	Context("fresh user", func() {
		It("creates the account and profile and starts at the first step", func() {
			backend := newBackend(nil, pendingAccount())

			c, err := onboarding.NewInitializer(backend, navigator).Initialize(ctx, principal)
			Expect(err).To(BeNil())
			defer c.Close()

			state := c.State()
			Expect(state.CurrentStep).To(Equal(onboarding.StepContact))
			Expect(state.Status).To(Equal(onboarding.StatusPending))
			Expect(state.ProfileData).To(BeEmpty())
			Expect(state.CandidateID).NotTo(BeNil())
			Expect(*state.CandidateID).To(Equal("profile-new"))

			Expect(backend.CreateAccountAndProfileCalls()).To(HaveLen(1))
			Expect(backend.CreateAccountAndProfileCalls()[0].Seed).To(Equal(principal))
			Expect(backend.FetchAccountCalls()).To(HaveLen(1))
			Expect(navigator.Destinations()).To(BeEmpty())
		})

		It("falls back on creation when the profile lookup fails for any reason", func() {
			backend := newBackend(nil, pendingAccount())
			backend.FetchOwnProfileFunc = func(ctx context.Context) (*onboarding.Profile, error) {
				return nil, errors.New("connection reset")
			}

			c, err := onboarding.NewInitializer(backend, navigator).Initialize(ctx, principal)
			Expect(err).To(BeNil())
			defer c.Close()
			Expect(backend.CreateAccountAndProfileCalls()).To(HaveLen(1))
		})

		It("fails when creation succeeds without a profile", func() {
			backend := newBackend(nil, pendingAccount())
			backend.CreateAccountAndProfileFunc = func(ctx context.Context, seed onboarding.Principal) (*onboarding.CreateResult, error) {
				return &onboarding.CreateResult{Success: true}, nil
			}

			c, err := onboarding.NewInitializer(backend, navigator).Initialize(ctx, principal)
			Expect(c).To(BeNil())

			var initErr *onboarding.InitError
			Expect(errors.As(err, &initErr)).To(BeTrue())
			Expect(initErr.Message).To(Equal("failed to create profile, retry"))
			Expect(initErr.Actions()).To(ConsistOf(onboarding.ActionRetry, onboarding.ActionSignOut))
			Expect(backend.FetchAccountCalls()).To(BeEmpty())
		})

		It("reports the backend message when creation is refused", func() {
			backend := newBackend(nil, pendingAccount())
			backend.CreateAccountAndProfileFunc = func(ctx context.Context, seed onboarding.Principal) (*onboarding.CreateResult, error) {
				return &onboarding.CreateResult{Success: false, Error: "email already used"}, nil
			}

			_, err := onboarding.NewInitializer(backend, navigator).Initialize(ctx, principal)

			var initErr *onboarding.InitError
			Expect(errors.As(err, &initErr)).To(BeTrue())
			Expect(initErr.Message).To(Equal("email already used"))
		})
	})

	It("fails without a credential before calling the backend", func() {
		backend := newBackend(nil, pendingAccount())
		tokens := onboarding.TokenFunc(func(ctx context.Context) (string, error) {
			return "", errors.New("no session")
		})

		_, err := onboarding.NewInitializer(backend, navigator, onboarding.WithTokenProvider(tokens)).Initialize(ctx, principal)

		var initErr *onboarding.InitError
		Expect(errors.As(err, &initErr)).To(BeTrue())
		Expect(backend.FetchOwnProfileCalls()).To(BeEmpty())
	})

	It("fails when the account cannot be loaded", func() {
		backend := newBackend(&onboarding.Profile{ID: "profile-1"}, nil)
		backend.FetchAccountFunc = func(ctx context.Context) (*onboarding.Account, error) {
			return nil, errors.New("boom")
		}

		_, err := onboarding.NewInitializer(backend, navigator).Initialize(ctx, principal)

		var initErr *onboarding.InitError
		Expect(errors.As(err, &initErr)).To(BeTrue())
		Expect(initErr.Unwrap()).To(MatchError("boom"))
	})

	Context("returning user", func() {
		It("resumes from the saved snapshot", func() {
			account := pendingAccount()
			account.OnboardingStatus = onboarding.StatusInProgress
			account.OnboardingMetadata = snapshotBlob(map[string]any{
				"current_step": 4,
				"profile_data": map[string]any{"phone": "555-1111", "open_to_remote": true},
			})
			backend := newBackend(&onboarding.Profile{ID: "profile-1"}, account)

			c, err := onboarding.NewInitializer(backend, navigator).Initialize(ctx, principal)
			Expect(err).To(BeNil())
			defer c.Close()

			state := c.State()
			Expect(state.CurrentStep).To(Equal(onboarding.StepResume))
			Expect(state.Status).To(Equal(onboarding.StatusInProgress))
			Expect(state.ProfileData["phone"]).To(Equal("555-1111"))
			Expect(state.ProfileData["open_to_remote"]).To(Equal(true))
			Expect(backend.CreateAccountAndProfileCalls()).To(BeEmpty())
		})

		It("prefers snapshot answers over the stored profile", func() {
			account := pendingAccount()
			account.OnboardingMetadata = snapshotBlob(map[string]any{
				"current_step": 2,
				"profile_data": map[string]any{"phone": "555"},
			})
			profile := &onboarding.Profile{ID: "profile-1", Fields: onboarding.ProfileData{"phone": "111", "location": "Oslo"}}

			c, err := onboarding.NewInitializer(newBackend(profile, account), navigator).Initialize(ctx, principal)
			Expect(err).To(BeNil())
			defer c.Close()

			Expect(c.State().ProfileData).To(Equal(onboarding.ProfileData{"phone": "555", "location": "Oslo"}))
		})

		It("restores the resume markers but never the file handle", func() {
			account := pendingAccount()
			account.OnboardingMetadata = snapshotBlob(map[string]any{
				"current_step": 4,
				"profile_data": map[string]any{
					"resume_file":        map[string]any{"Name": "cv.pdf"},
					"resume_uploaded":    true,
					"resume_document_id": "doc-1",
				},
			})

			c, err := onboarding.NewInitializer(newBackend(&onboarding.Profile{ID: "profile-1"}, account), navigator).Initialize(ctx, principal)
			Expect(err).To(BeNil())
			defer c.Close()

			data := c.State().ProfileData
			Expect(data).NotTo(HaveKey(onboarding.FieldResumeFile))
			Expect(data).To(HaveKeyWithValue(onboarding.FieldResumeUploaded, true))
			Expect(data).To(HaveKeyWithValue(onboarding.FieldResumeDocumentID, "doc-1"))
		})

		It("derives the uploaded marker from a stored resume", func() {
			profile := &onboarding.Profile{ID: "profile-1", Fields: onboarding.ProfileData{onboarding.FieldResumeDocumentID: "doc-9"}}

			c, err := onboarding.NewInitializer(newBackend(profile, pendingAccount()), navigator).Initialize(ctx, principal)
			Expect(err).To(BeNil())
			defer c.Close()

			Expect(c.State().ProfileData).To(HaveKeyWithValue(onboarding.FieldResumeUploaded, true))
		})

		DescribeTable("clamps snapshot steps to the navigable range",
			func(saved int, expected onboarding.Step) {
				account := pendingAccount()
				account.OnboardingMetadata = snapshotBlob(map[string]any{"current_step": saved})

				c, err := onboarding.NewInitializer(newBackend(&onboarding.Profile{ID: "profile-1"}, account), navigator).Initialize(ctx, principal)
				Expect(err).To(BeNil())
				defer c.Close()
				Expect(c.State().CurrentStep).To(Equal(expected))
			},
			Entry("summary step", 6, onboarding.StepPreferences),
			Entry("zero", 0, onboarding.StepContact),
			Entry("negative", -3, onboarding.StepContact),
		)

		It("ignores an unreadable snapshot", func() {
			account := pendingAccount()
			account.OnboardingMetadata = []byte(`{"current_step": "four"}`)

			c, err := onboarding.NewInitializer(newBackend(&onboarding.Profile{ID: "profile-1"}, account), navigator).Initialize(ctx, principal)
			Expect(err).To(BeNil())
			defer c.Close()
			Expect(c.State().CurrentStep).To(Equal(onboarding.StepContact))
		})
	})

	Context("finished onboarding", func() {
		It("redirects every time and never produces a session", func() {
			account := pendingAccount()
			account.OnboardingStatus = onboarding.StatusCompleted
			initializer := onboarding.NewInitializer(newBackend(&onboarding.Profile{ID: "profile-1"}, account), navigator,
				onboarding.WithDashboard("/jobs"))

			for range 2 {
				c, err := initializer.Initialize(ctx, principal)
				Expect(err).To(MatchError(onboarding.ErrRedirected))
				Expect(c).To(BeNil())
			}
			Expect(navigator.Destinations()).To(Equal([]string{"/jobs", "/jobs"}))
		})

		It("redirects skipped users", func() {
			account := pendingAccount()
			account.OnboardingStatus = onboarding.StatusSkipped

			_, err := onboarding.NewInitializer(newBackend(&onboarding.Profile{ID: "profile-1"}, account), navigator).Initialize(ctx, principal)
			Expect(err).To(MatchError(onboarding.ErrRedirected))
			Expect(navigator.Destinations()).To(Equal([]string{onboarding.DefaultDashboard}))
		})

		It("sends administrators to their dashboard", func() {
			account := pendingAccount()
			account.Role = onboarding.RoleAdmin

			_, err := onboarding.NewInitializer(newBackend(&onboarding.Profile{ID: "profile-1"}, account), navigator).Initialize(ctx, principal)
			Expect(err).To(MatchError(onboarding.ErrRedirected))
			Expect(navigator.Destinations()).To(Equal([]string{onboarding.DefaultAdminDashboard}))
		})
	})
})
