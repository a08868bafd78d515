package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/mocks"
)

func newJobService(t *testing.T, withCache bool) (*mocks.MockJobRepository, *mocks.MockCacheRepository, *JobService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	jobs := mocks.NewMockJobRepository(ctrl)
	opts := JobServiceOptions{Jobs: jobs}
	var cache *mocks.MockCacheRepository
	if withCache {
		cache = mocks.NewMockCacheRepository(ctrl)
		opts.Cache = JobCacheOptions{Repo: cache, TTL: time.Minute}
	}
	return jobs, cache, NewJobService(opts)
}

func TestJobService_Search_NoCache(t *testing.T) {
	t.Parallel()
	jobs, _, svc := newJobService(t, false)
	ctx := context.Background()

	expected := []*model.JobSummary{{Title: "Engineer", CompanyHandle: "acme"}}
	jobs.EXPECT().Search(ctx, gomock.Any()).Return(expected, nil)

	results, err := svc.Search(ctx, model.JobSearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestJobService_Delete_BumpsCacheVersion(t *testing.T) {
	t.Parallel()
	jobs, cache, svc := newJobService(t, true)
	ctx := context.Background()

	jobs.EXPECT().Delete(ctx, int64(7)).Return(true, nil)
	cache.EXPECT().Incr(ctx, "cache:jobs:version").Return(int64(3), nil)

	require.NoError(t, svc.Delete(ctx, 7))
}

func TestJobService_Get_Missing(t *testing.T) {
	t.Parallel()
	jobs, _, svc := newJobService(t, false)
	ctx := context.Background()

	jobs.EXPECT().GetByID(ctx, int64(9)).Return(nil, apperrors.NotFound("job not found"))

	_, err := svc.Get(ctx, 9)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "9")
}
