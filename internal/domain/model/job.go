package model

import (
	"strings"
	"time"

	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

// Job represents a job posting.
type Job struct {
	ID            int64     `json:"id"             db:"id"`
	Title         string    `json:"title"          db:"title"`
	Salary        *float64  `json:"salary,omitempty" db:"salary"`
	Equity        *float64  `json:"equity,omitempty" db:"equity"`
	CompanyHandle string    `json:"company_handle" db:"company_handle"`
	DatePosted    time.Time `json:"date_posted"    db:"date_posted"`
}

// JobSummary is the search result shape.
type JobSummary struct {
	Title         string `json:"title"          db:"title"`
	CompanyHandle string `json:"company_handle" db:"company_handle"`
}

// JobSearchOptions controls filtering for job search. MinSalary/MinEquity of
// nil default to zero, matching every posting.
type JobSearchOptions struct {
	Search    *string // substring match on title (ILIKE)
	MinSalary *float64
	MinEquity *float64
}

// CreateJobRequest carries input for creating a job posting.
type CreateJobRequest struct {
	Title         string   `json:"title"`
	Salary        *float64 `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"company_handle"`

	Token string `json:"_token,omitempty"`
}

// Validate checks required fields and bounds, collecting every failure.
func (r *CreateJobRequest) Validate() error {
	var msgs []string
	if strings.TrimSpace(r.Title) == "" {
		msgs = append(msgs, "title is required")
	}
	if strings.TrimSpace(r.CompanyHandle) == "" {
		msgs = append(msgs, "company_handle is required")
	}
	if r.Salary != nil && *r.Salary < 0 {
		msgs = append(msgs, "salary must not be negative")
	}
	if r.Equity != nil && (*r.Equity < 0 || *r.Equity > 1) {
		msgs = append(msgs, "equity must be between 0 and 1")
	}
	if len(msgs) > 0 {
		return apperrors.ValidationList(msgs)
	}
	return nil
}

// UpdateJobRequest carries a sparse update. Nil fields are untouched.
type UpdateJobRequest struct {
	Title  *string  `json:"title"`
	Salary *float64 `json:"salary"`
	Equity *float64 `json:"equity"`

	Token string `json:"_token,omitempty"`
}

// Validate checks the provided fields, collecting every failure.
func (r *UpdateJobRequest) Validate() error {
	var msgs []string
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		msgs = append(msgs, "title must not be empty")
	}
	if r.Salary != nil && *r.Salary < 0 {
		msgs = append(msgs, "salary must not be negative")
	}
	if r.Equity != nil && (*r.Equity < 0 || *r.Equity > 1) {
		msgs = append(msgs, "equity must be between 0 and 1")
	}
	if len(msgs) > 0 {
		return apperrors.ValidationList(msgs)
	}
	return nil
}
