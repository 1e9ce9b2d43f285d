package domain

import (
	"encoding/json"
	"time"
)

// ApplicationStatus is the pipeline stage of a job application.
type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "Applied"
	StatusInterviewing ApplicationStatus = "Interviewing"
	StatusOffer        ApplicationStatus = "Offer"
	StatusRejected     ApplicationStatus = "Rejected"
)

// Statuses lists every status in pipeline order.
var Statuses = []ApplicationStatus{StatusApplied, StatusInterviewing, StatusOffer, StatusRejected}

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Application is a job application tracked by the user.
type Application struct {
	ID          string            `json:"id"`
	Company     string            `json:"company"`
	Title       string            `json:"title"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate time.Time         `json:"appliedDate"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`

	// Raw holds the object an imported application was read from when the
	// fields above cannot reproduce it, such as unknown keys, numeric ids or
	// date-only timestamps. It is never modified after decoding.
	Raw map[string]json.RawMessage `json:"-"`
}

// ApplicationDraft is the raw application form as submitted by the user.
// AppliedDate is either a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
type ApplicationDraft struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	AppliedDate string `json:"appliedDate"`
	Notes       string `json:"notes"`
}
