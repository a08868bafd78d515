package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/testutil"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCompanyRepo_Integration_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewCompanyRepo(db, 0)
		ctx := context.Background()

		created, err := repo.Create(ctx, &model.CreateCompanyRequest{
			Handle:       "acme",
			Name:         "Acme Corp",
			NumEmployees: intPtr(250),
			Description:  strPtr("Makers of everything"),
		})
		require.NoError(t, err)
		assert.Equal(t, "acme", created.Handle)
		require.NotNil(t, created.NumEmployees)
		assert.Equal(t, 250, *created.NumEmployees)

		got, err := repo.GetByHandle(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})
}

func TestCompanyRepo_Integration_DuplicateHandle(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewCompanyRepo(db, 0)
		ctx := context.Background()

		_, err := repo.Create(ctx, &model.CreateCompanyRequest{Handle: "acme", Name: "Acme Corp"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &model.CreateCompanyRequest{Handle: "acme", Name: "Other Corp"})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestCompanyRepo_Integration_Search(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewCompanyRepo(db, 0)
		ctx := context.Background()

		for _, c := range []struct {
			handle, name string
			employees    int
		}{
			{"tiny", "Tiny Startup", 5},
			{"meta-widgets", "Meta Widgets", 120},
			{"widget-world", "Widget World", 4000},
		} {
			_, err := repo.Create(ctx, &model.CreateCompanyRequest{
				Handle: c.handle, Name: c.name, NumEmployees: intPtr(c.employees),
			})
			require.NoError(t, err)
		}

		all, err := repo.Search(ctx, model.CompanySearchOptions{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		// Ordered by name
		assert.Equal(t, "meta-widgets", all[0].Handle)

		widgets, err := repo.Search(ctx, model.CompanySearchOptions{Search: strPtr("widget")})
		require.NoError(t, err)
		assert.Len(t, widgets, 2)

		mid, err := repo.Search(ctx, model.CompanySearchOptions{
			MinEmployees: intPtr(10),
			MaxEmployees: intPtr(1000),
		})
		require.NoError(t, err)
		require.Len(t, mid, 1)
		assert.Equal(t, "meta-widgets", mid[0].Handle)
	})
}

func TestCompanyRepo_Integration_Update(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewCompanyRepo(db, 0)
		ctx := context.Background()

		_, err := repo.Create(ctx, &model.CreateCompanyRequest{Handle: "acme", Name: "Acme Corp"})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, "acme", model.UpdateCompanyRequest{
			Name:         strPtr("Acme Holdings"),
			NumEmployees: intPtr(9),
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme Holdings", updated.Name)
		require.NotNil(t, updated.NumEmployees)
		assert.Equal(t, 9, *updated.NumEmployees)
		assert.Nil(t, updated.Description)
	})
}

func TestCompanyRepo_Integration_UpdateMissing(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewCompanyRepo(db, 0)

		_, err := repo.Update(context.Background(), "ghost", model.UpdateCompanyRequest{
			Name: strPtr("Ghost Inc"),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestCompanyRepo_Integration_DeleteCascadesJobs(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		companies := NewCompanyRepo(db, 0)
		jobs := NewJobRepo(db, 0)
		ctx := context.Background()

		_, err := companies.Create(ctx, &model.CreateCompanyRequest{Handle: "acme", Name: "Acme Corp"})
		require.NoError(t, err)
		job, err := jobs.Create(ctx, &model.CreateJobRequest{Title: "Engineer", CompanyHandle: "acme"})
		require.NoError(t, err)

		deleted, err := companies.Delete(ctx, "acme")
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = jobs.GetByID(ctx, job.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))

		deleted, err = companies.Delete(ctx, "acme")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
