//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

const (
	maxHandleLen      = 64
	maxCompanyNameLen = 255
)

// Company represents an employer that posts jobs.
type Company struct {
	Handle       string  `json:"handle"                db:"handle"`
	Name         string  `json:"name"                  db:"name"`
	NumEmployees *int    `json:"num_employees,omitempty" db:"num_employees"`
	Description  *string `json:"description,omitempty" db:"description"`
	LogoURL      *string `json:"logo_url,omitempty"    db:"logo_url"`
}

// CompanyWithJobs is the company detail shape: the company plus its job
// postings ordered by date posted.
type CompanyWithJobs struct {
	Company
	Jobs []*Job `json:"jobs"`
}

// CompanySummary is the search result shape.
type CompanySummary struct {
	Handle string `json:"handle" db:"handle"`
	Name   string `json:"name"   db:"name"`
}

// CompanySearchOptions controls filtering for company search.
// MinEmployees/MaxEmployees of nil mean unbounded.
type CompanySearchOptions struct {
	Search       *string // substring match on name (ILIKE)
	MinEmployees *int
	MaxEmployees *int
}

// Validate checks the search bounds.
func (o CompanySearchOptions) Validate() error {
	if o.MinEmployees != nil && o.MaxEmployees != nil && *o.MinEmployees > *o.MaxEmployees {
		return apperrors.Validation("min_employees must not be greater than max_employees")
	}
	return nil
}

// CreateCompanyRequest carries input for creating a company.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	NumEmployees *int    `json:"num_employees"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`

	// Token is the transport-only bearer token field. It is consumed by the
	// authentication middleware and must never reach the data layer.
	Token string `json:"_token,omitempty"`
}

// Validate checks required fields and bounds, collecting every failure.
func (r *CreateCompanyRequest) Validate() error {
	var msgs []string
	if strings.TrimSpace(r.Handle) == "" {
		msgs = append(msgs, "handle is required")
	}
	if utf8.RuneCountInString(r.Handle) > maxHandleLen {
		msgs = append(msgs, "handle cannot exceed 64 characters")
	}
	if strings.TrimSpace(r.Name) == "" {
		msgs = append(msgs, "name is required")
	}
	if utf8.RuneCountInString(r.Name) > maxCompanyNameLen {
		msgs = append(msgs, "name cannot exceed 255 characters")
	}
	if r.NumEmployees != nil && *r.NumEmployees < 0 {
		msgs = append(msgs, "num_employees must not be negative")
	}
	if len(msgs) > 0 {
		return apperrors.ValidationList(msgs)
	}
	return nil
}

// UpdateCompanyRequest carries a sparse update. Nil fields are untouched.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	NumEmployees *int    `json:"num_employees"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`

	Token string `json:"_token,omitempty"`
}

// Validate checks the provided fields, collecting every failure.
func (r *UpdateCompanyRequest) Validate() error {
	var msgs []string
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		msgs = append(msgs, "name must not be empty")
	}
	if r.Name != nil && utf8.RuneCountInString(*r.Name) > maxCompanyNameLen {
		msgs = append(msgs, "name cannot exceed 255 characters")
	}
	if r.NumEmployees != nil && *r.NumEmployees < 0 {
		msgs = append(msgs, "num_employees must not be negative")
	}
	if len(msgs) > 0 {
		return apperrors.ValidationList(msgs)
	}
	return nil
}
