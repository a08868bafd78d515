// Package devseed populates a development database with sample companies,
// jobs, and users so the API is explorable immediately after startup. It is
// only invoked in dev mode and is safe to run repeatedly.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/joblydev/jobly-api/internal/adapters/bcrypthash"
	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/data"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	companies *data.CompanyRepo
	jobs      *data.JobRepo
	users     *data.UserRepo
	apps      *data.ApplicationRepo
	hasher    *bcrypthash.Hasher
}

// NewServices constructs the repositories used for seeding from the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		companies: data.NewCompanyRepo(db, 0),
		jobs:      data.NewJobRepo(db, 0),
		users:     data.NewUserRepo(db, 0),
		apps:      data.NewApplicationRepo(db, 0),
		// Low cost; these are throwaway dev credentials.
		hasher: bcrypthash.New(4),
	}
}

// Run executes the full development seeding workflow. Records that already
// exist are skipped, so reseeding an already-seeded database is harmless.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedCompanies(ctx, svcs, logger)
	failures += seedJobs(ctx, svcs, logger)
	failures += seedUsers(ctx, svcs, logger)
	failures += seedApplications(ctx, svcs, logger)
	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func seedCompanies(ctx context.Context, svcs Services, logger *slog.Logger) int {
	failures := 0
	companies := []*model.CreateCompanyRequest{
		{Handle: "acme", Name: "Acme Corp", NumEmployees: intPtr(500), Description: strPtr("Full-stack anvils")},
		{Handle: "initech", Name: "Initech", NumEmployees: intPtr(120)},
		{Handle: "hooli", Name: "Hooli", NumEmployees: intPtr(9000), Description: strPtr("Making the world a better place")},
	}

	for _, req := range companies {
		if _, err := svcs.companies.Create(ctx, req); err != nil {
			if apperrors.IsConflict(err) {
				continue
			}
			logSeedError(ctx, logger, "company", req.Handle, err)
			failures++
			continue
		}
		logSeeded(ctx, logger, "company", req.Handle)
	}
	return failures
}

func seedJobs(ctx context.Context, svcs Services, logger *slog.Logger) int {
	failures := 0
	jobs := []*model.CreateJobRequest{
		{Title: "Anvil Engineer", Salary: floatPtr(95000), Equity: floatPtr(0.01), CompanyHandle: "acme"},
		{Title: "TPS Report Analyst", Salary: floatPtr(55000), CompanyHandle: "initech"},
		{Title: "Compression Researcher", Salary: floatPtr(180000), Equity: floatPtr(0.05), CompanyHandle: "hooli"},
	}

	for _, req := range jobs {
		if exists, err := jobExists(ctx, svcs, req); err != nil || exists {
			if err != nil {
				logSeedError(ctx, logger, "job", req.Title, err)
				failures++
			}
			continue
		}
		if _, err := svcs.jobs.Create(ctx, req); err != nil {
			logSeedError(ctx, logger, "job", req.Title, err)
			failures++
			continue
		}
		logSeeded(ctx, logger, "job", req.Title)
	}
	return failures
}

// jobExists reports whether a posting with the same title already exists at
// the company. Jobs have no natural key, so this keeps reseeds idempotent.
func jobExists(ctx context.Context, svcs Services, req *model.CreateJobRequest) (bool, error) {
	existing, err := svcs.jobs.ListByCompany(ctx, req.CompanyHandle)
	if err != nil {
		return false, err
	}
	for _, job := range existing {
		if job.Title == req.Title {
			return true, nil
		}
	}
	return false, nil
}

func seedUsers(ctx context.Context, svcs Services, logger *slog.Logger) int {
	failures := 0
	users := []struct {
		username string
		password string
		isAdmin  bool
	}{
		{"admin", "admin-dev-password", true},
		{"whiskey", "hunter22", false},
	}

	for _, u := range users {
		hash, err := svcs.hasher.Hash(u.password)
		if err != nil {
			logSeedError(ctx, logger, "user", u.username, err)
			failures++
			continue
		}
		_, err = svcs.users.Create(ctx, core.CreateUserParams{
			Username:     u.username,
			PasswordHash: hash,
			IsAdmin:      u.isAdmin,
		})
		if err != nil {
			if apperrors.IsConflict(err) {
				continue
			}
			logSeedError(ctx, logger, "user", u.username, err)
			failures++
			continue
		}
		logSeeded(ctx, logger, "user", u.username)
	}
	return failures
}

func seedApplications(ctx context.Context, svcs Services, logger *slog.Logger) int {
	jobs, err := svcs.jobs.ListByCompany(ctx, "acme")
	if err != nil || len(jobs) == 0 {
		if err != nil {
			logSeedError(ctx, logger, "application", "acme jobs", err)
			return 1
		}
		return 0
	}

	key := core.ApplicationKey{Username: "whiskey", JobID: jobs[0].ID}
	if _, err := svcs.apps.Upsert(ctx, key, model.StateInterested); err != nil {
		logSeedError(ctx, logger, "application", key.Username, err)
		return 1
	}
	logSeeded(ctx, logger, "application", key.Username)
	return 0
}

func logSeeded(ctx context.Context, logger *slog.Logger, kind, name string) {
	if logger != nil {
		logger.InfoContext(ctx, "seeded "+kind, "name", name)
	}
}

func logSeedError(ctx context.Context, logger *slog.Logger, kind, name string, err error) {
	if logger != nil {
		logger.ErrorContext(ctx, "failed to seed "+kind, "name", name, "error", err)
	}
}
