package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

// CompanyServiceOptions groups dependencies for CompanyService.
type CompanyServiceOptions struct {
	Companies core.CompanyRepository
	Jobs      core.JobRepository
	Cache     CompanyCacheOptions
}

// CompanyCacheOptions configures the optional search-result cache.
type CompanyCacheOptions struct {
	Repo   core.CacheRepository // nil disables caching
	TTL    time.Duration
	Logger *slog.Logger
}

// CompanyService orchestrates company CRUD, search caching, and the
// company-with-jobs detail view.
type CompanyService struct {
	companies core.CompanyRepository
	jobs      core.JobRepository
	cache     *searchCache
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(opts CompanyServiceOptions) *CompanyService {
	return &CompanyService{
		companies: opts.Companies,
		jobs:      opts.Jobs,
		cache:     newSearchCache(opts.Cache.Repo, opts.Cache.TTL, "companies", opts.Cache.Logger),
	}
}

func companySearchKey(opts model.CompanySearchOptions) string {
	search, minE, maxE := "", "", ""
	if opts.Search != nil {
		search = *opts.Search
	}
	if opts.MinEmployees != nil {
		minE = fmt.Sprint(*opts.MinEmployees)
	}
	if opts.MaxEmployees != nil {
		maxE = fmt.Sprint(*opts.MaxEmployees)
	}
	return fmt.Sprintf("search=%s&min_employees=%s&max_employees=%s", search, minE, maxE)
}

// Search returns company summaries matching the filters, read through the
// cache when one is configured.
func (s *CompanyService) Search(ctx context.Context, opts model.CompanySearchOptions) ([]*model.CompanySummary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	suffix := companySearchKey(opts)
	var cached []*model.CompanySummary
	if s.cache.lookup(ctx, suffix, &cached) {
		return cached, nil
	}

	results, err := s.companies.Search(ctx, opts)
	if err != nil {
		return nil, err
	}
	s.cache.store(ctx, suffix, results)
	return results, nil
}

// Get retrieves a company and its job postings, fetched in parallel.
func (s *CompanyService) Get(ctx context.Context, handle string) (*model.CompanyWithJobs, error) {
	var (
		company *model.Company
		jobs    []*model.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		company, err = s.companies.GetByHandle(gctx, handle)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.jobs.ListByCompany(gctx, handle)
		return err
	})
	if err := g.Wait(); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("There exists no company '%s'", handle)
		}
		return nil, err
	}

	return &model.CompanyWithJobs{Company: *company, Jobs: jobs}, nil
}

// Create creates a company and invalidates the search cache.
func (s *CompanyService) Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
	company, err := s.companies.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.bump(ctx)
	return company, nil
}

// Update applies a sparse update to a company.
func (s *CompanyService) Update(ctx context.Context, handle string, req model.UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.companies.Update(ctx, handle, req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("There exists no company '%s'", handle)
		}
		return nil, err
	}
	s.cache.bump(ctx)
	return company, nil
}

// Delete removes a company and its job postings.
func (s *CompanyService) Delete(ctx context.Context, handle string) error {
	deleted, err := s.companies.Delete(ctx, handle)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFoundf("There exists no company '%s'", handle)
	}
	s.cache.bump(ctx)
	return nil
}
