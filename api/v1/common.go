package v1

func (s OnboardingStatus) Valid() bool {
	switch s {
	case OnboardingStatusPending, OnboardingStatusInProgress, OnboardingStatusCompleted, OnboardingStatusSkipped:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status closes the onboarding flow.
func (s OnboardingStatus) Terminal() bool {
	return s == OnboardingStatusCompleted || s == OnboardingStatusSkipped
}

// CanTransitionTo reports whether an account in status s may move to next.
// Statuses only move forward; repeating the current status is allowed.
func (s OnboardingStatus) CanTransitionTo(next OnboardingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case OnboardingStatusPending:
		return next.Valid()
	case OnboardingStatusInProgress:
		return next.Terminal()
	default:
		return false
	}
}

func StringToOnboardingStatus(s string) OnboardingStatus {
	status := OnboardingStatus(s)
	if !status.Valid() {
		return OnboardingStatusPending
	}
	return status
}
