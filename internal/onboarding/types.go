package onboarding

import (
	"encoding/json"
	"io"
	"reflect"
	"time"
)

// Step is a page of the onboarding wizard.
type Step int

const (
	StepContact Step = iota + 1
	StepBackground
	StepLinks
	StepResume
	StepPreferences
	// StepComplete is the post-submit summary. It is display only and
	// cannot be reached by navigation.
	StepComplete
)

func (s Step) Valid() bool {
	return s >= StepContact && s <= StepComplete
}

// Navigable reports whether GoToStep may move to s.
func (s Step) Navigable() bool {
	return s >= StepContact && s <= StepPreferences
}

func (s Step) clamp() Step {
	switch {
	case s < StepContact:
		return StepContact
	case s > StepPreferences:
		return StepPreferences
	}
	return s
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
)

// Terminal reports whether the status ends the wizard.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// Profile fields collected by the wizard.
const (
	FieldFirstName        = "first_name"
	FieldLastName         = "last_name"
	FieldPhone            = "phone"
	FieldLocation         = "location"
	FieldLinkedinURL      = "linkedin_url"
	FieldGithubURL        = "github_url"
	FieldPortfolioURL     = "portfolio_url"
	FieldWebsiteURL       = "website_url"
	FieldCurrentTitle     = "current_title"
	FieldCurrentCompany   = "current_company"
	FieldYearsExperience  = "years_experience"
	FieldBio              = "bio"
	FieldSkills           = "skills"
	FieldDesiredTitles    = "desired_titles"
	FieldDesiredLocations = "desired_locations"
	FieldOpenToRemote     = "open_to_remote"
	FieldDesiredSalaryMin = "desired_salary_min"
	FieldDesiredSalaryMax = "desired_salary_max"
	FieldAvailability     = "availability"
	FieldResumeFile       = "resume_file"
	FieldResumeUploaded   = "resume_uploaded"
	FieldResumeDocumentID = "resume_document_id"
)

// ProfileData is the sparse record of answers collected so far. Every field
// is optional.
type ProfileData map[string]any

// Merge copies the keys of partial over d. Keys missing from partial are
// left untouched.
func (d ProfileData) Merge(partial ProfileData) ProfileData {
	if d == nil {
		d = ProfileData{}
	}
	for k, v := range partial {
		d[k] = v
	}
	return d
}

// Clone copies the map and any slice values so the copy can be handed out.
func (d ProfileData) Clone() ProfileData {
	out := make(ProfileData, len(d))
	for k, v := range d {
		switch t := v.(type) {
		case []string:
			out[k] = append([]string(nil), t...)
		case []any:
			out[k] = append([]any(nil), t...)
		default:
			out[k] = v
		}
	}
	return out
}

// Populated returns the fields holding an answer. false and 0 are answers;
// nil, empty strings and empty collections are not.
func (d ProfileData) Populated() ProfileData {
	out := ProfileData{}
	for k, v := range d {
		if !isEmpty(v) {
			out[k] = v
		}
	}
	return out
}

// Serializable drops the fields that cannot outlive the process, such as an
// attached file handle.
func (d ProfileData) Serializable() ProfileData {
	return d.without(FieldResumeFile)
}

// Writable returns the populated fields the profile record stores.
func (d ProfileData) Writable() ProfileData {
	return d.Populated().without(FieldResumeFile, FieldResumeUploaded)
}

func (d ProfileData) without(keys ...string) ProfileData {
	out := d.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Session is the state of one wizard run. The controller is its only writer.
type Session struct {
	CurrentStep Step
	Status      Status
	ProfileData ProfileData
	// CandidateID is the profile id, set once during initialization.
	CandidateID *string
	Submitting  bool
	Error       string
	UploadError string
}

// Snapshot is the resumable form of a session, stored opaquely on the
// account record.
type Snapshot struct {
	CurrentStep    Step        `json:"current_step"`
	ProfileData    ProfileData `json:"profile_data"`
	CompletedSteps []Step      `json:"completed_steps"`
	LastUpdatedAt  time.Time   `json:"last_updated_at"`
	Device         Device      `json:"device"`
}

type Device struct {
	UserAgent string `json:"user_agent,omitempty"`
	Platform  string `json:"platform,omitempty"`
	Hostname  string `json:"hostname,omitempty"`
}

func newSnapshot(s Session, device Device, now time.Time) Snapshot {
	completed := make([]Step, 0, int(s.CurrentStep))
	for step := StepContact; step < s.CurrentStep; step++ {
		completed = append(completed, step)
	}
	return Snapshot{
		CurrentStep:    s.CurrentStep,
		ProfileData:    s.ProfileData.Serializable(),
		CompletedSteps: completed,
		LastUpdatedAt:  now.UTC(),
		Device:         device,
	}
}

// Principal is the signed-in user the wizard runs for.
type Principal struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
}

// Profile is a candidate profile record.
type Profile struct {
	ID     string
	Fields ProfileData
}

const RoleAdmin = "admin"

// Account is the user account record. Onboarding status lives here.
type Account struct {
	ID                    string
	UserID                string
	Email                 string
	Role                  string
	OnboardingStatus      Status
	OnboardingMetadata    json.RawMessage
	OnboardingCompletedAt *time.Time
}

// CreateResult is returned by Backend.CreateAccountAndProfile.
type CreateResult struct {
	Success bool
	Profile *Profile
	Account *Account
	Error   string
}

// AccountPatch is a partial account update. Nil fields are not sent.
type AccountPatch struct {
	OnboardingStatus      *Status
	OnboardingMetadata    json.RawMessage
	OnboardingCompletedAt *time.Time
}

const DocumentTypeResume = "resume"

// ResumeFile is a file picked by the user. It is never persisted.
type ResumeFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

type DocumentMeta struct {
	DocumentType string
}

type Document struct {
	ID           string
	DocumentType string
	FileName     string
	ContentType  string
	Size         int64
}
