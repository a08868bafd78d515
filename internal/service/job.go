package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Jobs  core.JobRepository
	Cache JobCacheOptions
}

// JobCacheOptions configures the optional search-result cache.
type JobCacheOptions struct {
	Repo   core.CacheRepository // nil disables caching
	TTL    time.Duration
	Logger *slog.Logger
}

// JobService orchestrates job posting CRUD and search caching.
type JobService struct {
	jobs  core.JobRepository
	cache *searchCache
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	return &JobService{
		jobs:  opts.Jobs,
		cache: newSearchCache(opts.Cache.Repo, opts.Cache.TTL, "jobs", opts.Cache.Logger),
	}
}

func jobSearchKey(opts model.JobSearchOptions) string {
	search, minSalary, minEquity := "", "", ""
	if opts.Search != nil {
		search = *opts.Search
	}
	if opts.MinSalary != nil {
		minSalary = fmt.Sprint(*opts.MinSalary)
	}
	if opts.MinEquity != nil {
		minEquity = fmt.Sprint(*opts.MinEquity)
	}
	return fmt.Sprintf("search=%s&min_salary=%s&min_equity=%s", search, minSalary, minEquity)
}

// Search returns job summaries matching the filters, read through the cache
// when one is configured.
func (s *JobService) Search(ctx context.Context, opts model.JobSearchOptions) ([]*model.JobSummary, error) {
	suffix := jobSearchKey(opts)
	var cached []*model.JobSummary
	if s.cache.lookup(ctx, suffix, &cached) {
		return cached, nil
	}

	results, err := s.jobs.Search(ctx, opts)
	if err != nil {
		return nil, err
	}
	s.cache.store(ctx, suffix, results)
	return results, nil
}

// Get retrieves a job by ID.
func (s *JobService) Get(ctx context.Context, id int64) (*model.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("There exists no job with id '%d'", id)
		}
		return nil, err
	}
	return job, nil
}

// Create creates a job posting and invalidates the search cache.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	job, err := s.jobs.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.bump(ctx)
	return job, nil
}

// Update applies a sparse update to a job posting.
func (s *JobService) Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error) {
	job, err := s.jobs.Update(ctx, id, req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("There exists no job with id '%d'", id)
		}
		return nil, err
	}
	s.cache.bump(ctx)
	return job, nil
}

// Delete removes a job posting.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.jobs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFoundf("There exists no job with id '%d'", id)
	}
	s.cache.bump(ctx)
	return nil
}
