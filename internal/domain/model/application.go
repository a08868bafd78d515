package model

import (
	"strings"
	"time"
)

// ApplicationState is a job application's lifecycle state. There is no
// terminal state; any state is re-enterable.
type ApplicationState string

const (
	StateInterested ApplicationState = "interested"
	StateApplied    ApplicationState = "applied"
	StateAccepted   ApplicationState = "accepted"
	StateRejected   ApplicationState = "rejected"
)

// Valid reports whether the state is one of the four enum values.
func (s ApplicationState) Valid() bool {
	switch s {
	case StateInterested, StateApplied, StateAccepted, StateRejected:
		return true
	default:
		return false
	}
}

// ValidInitial reports whether the state may open a brand-new application.
// Only the two self-initiated states qualify; accepted/rejected exist solely
// as responses to an application that is already on file.
func (s ApplicationState) ValidInitial() bool {
	return s == StateInterested || s == StateApplied
}

// ParseApplicationState normalizes a state string and reports whether it is
// one of the enum values.
func ParseApplicationState(value string) (ApplicationState, bool) {
	s := ApplicationState(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Application is a user's interest/candidacy record for a specific job.
// Identity is the (username, job_id) pair; at most one record exists per pair.
type Application struct {
	Username  string           `json:"username"   db:"username"`
	JobID     int64            `json:"job_id"     db:"job_id"`
	State     ApplicationState `json:"state"      db:"state"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// RespondRequest carries an admin's decision on a user's application.
type RespondRequest struct {
	Username string `json:"username"`
	State    string `json:"state"`

	Token string `json:"_token,omitempty"`
}
