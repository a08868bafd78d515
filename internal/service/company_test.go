package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/mocks"
)

func intPtr(i int) *int { return &i }

type companyMocks struct {
	companies *mocks.MockCompanyRepository
	jobs      *mocks.MockJobRepository
	cache     *mocks.MockCacheRepository
}

func newCompanyService(t *testing.T, withCache bool) (companyMocks, *CompanyService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := companyMocks{
		companies: mocks.NewMockCompanyRepository(ctrl),
		jobs:      mocks.NewMockJobRepository(ctrl),
	}
	opts := CompanyServiceOptions{Companies: m.companies, Jobs: m.jobs}
	if withCache {
		m.cache = mocks.NewMockCacheRepository(ctrl)
		opts.Cache = CompanyCacheOptions{Repo: m.cache, TTL: time.Minute}
	}
	return m, NewCompanyService(opts)
}

func TestCompanyService_Search_NoCache(t *testing.T) {
	t.Parallel()
	m, svc := newCompanyService(t, false)
	ctx := context.Background()

	expected := []*model.CompanySummary{{Handle: "acme", Name: "Acme Corp"}}
	m.companies.EXPECT().Search(ctx, gomock.Any()).Return(expected, nil)

	results, err := svc.Search(ctx, model.CompanySearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestCompanyService_Search_InvalidRange(t *testing.T) {
	t.Parallel()
	_, svc := newCompanyService(t, false)

	_, err := svc.Search(context.Background(), model.CompanySearchOptions{
		MinEmployees: intPtr(100),
		MaxEmployees: intPtr(10),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCompanyService_Search_CacheMissThenStore(t *testing.T) {
	t.Parallel()
	m, svc := newCompanyService(t, true)
	ctx := context.Background()

	expected := []*model.CompanySummary{{Handle: "acme", Name: "Acme Corp"}}

	// Version lookup + miss on the value key, then repository hit, then store.
	m.cache.EXPECT().Get(ctx, "cache:companies:version").Return(nil, nil).Times(2)
	m.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	m.companies.EXPECT().Search(ctx, gomock.Any()).Return(expected, nil)
	m.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), time.Minute).Return(nil)

	results, err := svc.Search(ctx, model.CompanySearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestCompanyService_Search_CacheHitSkipsRepo(t *testing.T) {
	t.Parallel()
	m, svc := newCompanyService(t, true)
	ctx := context.Background()

	cached := []*model.CompanySummary{{Handle: "acme", Name: "Acme Corp"}}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	m.cache.EXPECT().Get(ctx, "cache:companies:version").Return([]byte("7"), nil)
	m.cache.EXPECT().Get(ctx, "cache:companies:v7:search=&min_employees=&max_employees=").Return(raw, nil)

	results, err := svc.Search(ctx, model.CompanySearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, cached, results)
}

func TestCompanyService_Search_CacheErrorFallsThrough(t *testing.T) {
	t.Parallel()
	m, svc := newCompanyService(t, true)
	ctx := context.Background()

	expected := []*model.CompanySummary{{Handle: "acme", Name: "Acme Corp"}}

	m.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, assert.AnError).AnyTimes()
	m.companies.EXPECT().Search(ctx, gomock.Any()).Return(expected, nil)
	m.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	results, err := svc.Search(ctx, model.CompanySearchOptions{})
	require.NoError(t, err, "cache failures must not fail the request")
	assert.Equal(t, expected, results)
}

func TestCompanyService_Create_BumpsCacheVersion(t *testing.T) {
	t.Parallel()
	m, svc := newCompanyService(t, true)
	ctx := context.Background()

	req := &model.CreateCompanyRequest{Handle: "acme", Name: "Acme Corp"}
	m.companies.EXPECT().Create(ctx, req).Return(&model.Company{Handle: "acme", Name: "Acme Corp"}, nil)
	m.cache.EXPECT().Incr(ctx, "cache:companies:version").Return(int64(1), nil)

	company, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "acme", company.Handle)
}

func TestCompanyService_Get_CompanyWithJobs(t *testing.T) {
	t.Parallel()
	m, svc := newCompanyService(t, false)
	ctx := context.Background()

	company := &model.Company{Handle: "acme", Name: "Acme Corp"}
	jobs := []*model.Job{{ID: 1, Title: "Engineer", CompanyHandle: "acme"}}

	m.companies.EXPECT().GetByHandle(gomock.Any(), "acme").Return(company, nil)
	m.jobs.EXPECT().ListByCompany(gomock.Any(), "acme").Return(jobs, nil)

	got, err := svc.Get(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, *company, got.Company)
	assert.Equal(t, jobs, got.Jobs)
}

func TestCompanyService_Get_NotFound(t *testing.T) {
	t.Parallel()
	m, svc := newCompanyService(t, false)
	ctx := context.Background()

	m.companies.EXPECT().GetByHandle(gomock.Any(), "ghost").
		Return(nil, apperrors.NotFound("company not found"))
	m.jobs.EXPECT().ListByCompany(gomock.Any(), "ghost").
		Return(nil, nil).AnyTimes()

	_, err := svc.Get(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "ghost")
}

func TestCompanyService_Delete_NotFound(t *testing.T) {
	t.Parallel()
	m, svc := newCompanyService(t, false)
	ctx := context.Background()

	m.companies.EXPECT().Delete(ctx, "ghost").Return(false, nil)

	err := svc.Delete(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
