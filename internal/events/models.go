package events

import "time"

type OnboardingEvent struct {
	AccountID  string    `json:"account_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
