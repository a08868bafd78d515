// Package core defines the repository interfaces (ports in hexagonal
// architecture) between the service layer and the data layer. Service
// implementations depend on these interfaces, never on concrete repos.
package core

import (
	"context"
	"time"

	"github.com/joblydev/jobly-api/internal/domain/model"
)

// CompanyRepository defines data operations for companies.
type CompanyRepository interface {
	Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error)
	GetByHandle(ctx context.Context, handle string) (*model.Company, error)
	Search(ctx context.Context, opts model.CompanySearchOptions) ([]*model.CompanySummary, error)
	Update(ctx context.Context, handle string, req model.UpdateCompanyRequest) (*model.Company, error)
	Delete(ctx context.Context, handle string) (bool, error)
}

// JobRepository defines data operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	Search(ctx context.Context, opts model.JobSearchOptions) ([]*model.JobSummary, error)
	ListByCompany(ctx context.Context, handle string) ([]*model.Job, error)
	Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateUserParams groups parameters for UserRepository.Create; the password
// arrives pre-hashed from the service layer.
type CreateUserParams struct {
	Username     string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Email        *string
	PhotoURL     *string
	IsAdmin      bool
}

// UserUpdateFields is the sparse field set for a user update. The service
// layer has already replaced any plaintext password with its hash.
type UserUpdateFields struct {
	PasswordHash *string
	FirstName    *string
	LastName     *string
	Email        *string
	PhotoURL     *string
}

// UserRepository defines data operations for users.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.UserSummary, error)
	Update(ctx context.Context, username string, fields UserUpdateFields) (*model.User, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// ApplicationKey identifies an application record.
type ApplicationKey struct {
	Username string
	JobID    int64
}

// ApplicationRepository defines data operations for job applications.
// Identity is (username, job_id); the table carries a primary key over the
// pair, which Upsert leans on for atomicity.
type ApplicationRepository interface {
	// Upsert atomically inserts the record or, when one already exists for
	// the key, overwrites its state. Backed by a single
	// INSERT ... ON CONFLICT statement so concurrent calls for the same key
	// can never produce two rows or a duplicate-key failure.
	Upsert(ctx context.Context, key ApplicationKey, state model.ApplicationState) (*model.Application, error)

	// UpdateState overwrites the state of an existing record, leaving
	// created_at untouched. Reports pgx.ErrNoRows-mapped NotFound when no
	// record exists for the key.
	UpdateState(ctx context.Context, key ApplicationKey, state model.ApplicationState) (*model.Application, error)

	Get(ctx context.Context, key ApplicationKey) (*model.Application, error)
}

// CacheRepository defines the byte-oriented cache operations used by the
// search-result cache.
type CacheRepository interface {
	// Set stores a value with the given key and TTL. A TTL of 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by key. Returns nil when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Incr atomically increments the counter at key and returns the new value.
	// Used to bump cache-namespace versions on writes.
	Incr(ctx context.Context, key string) (int64, error)

	// Health checks the cache connection.
	Health(ctx context.Context) error
}
