package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joblydev/jobly-api/internal/core"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/testutil"
)

func TestUserRepo_Integration_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db, 0)
		ctx := context.Background()

		created, err := repo.Create(ctx, core.CreateUserParams{
			Username:     "rocky",
			PasswordHash: "$2a$12$somehash",
			FirstName:    strPtr("Rocky"),
			Email:        strPtr("rocky@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "rocky", created.Username)
		assert.Equal(t, "$2a$12$somehash", created.PasswordHash)
		assert.False(t, created.IsAdmin)

		got, err := repo.GetByUsername(ctx, "rocky")
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})
}

func TestUserRepo_Integration_DuplicateUsername(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db, 0)
		ctx := context.Background()

		_, err := repo.Create(ctx, core.CreateUserParams{Username: "rocky", PasswordHash: "h"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, core.CreateUserParams{Username: "rocky", PasswordHash: "h2"})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestUserRepo_Integration_UpdateSparseFields(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db, 0)
		ctx := context.Background()

		_, err := repo.Create(ctx, core.CreateUserParams{
			Username:     "rocky",
			PasswordHash: "originalhash",
			FirstName:    strPtr("Rocky"),
		})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, "rocky", core.UserUpdateFields{
			LastName: strPtr("Balboa"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.LastName)
		assert.Equal(t, "Balboa", *updated.LastName)
		// Untouched fields survive a sparse update.
		require.NotNil(t, updated.FirstName)
		assert.Equal(t, "Rocky", *updated.FirstName)
		assert.Equal(t, "originalhash", updated.PasswordHash)
	})
}

func TestUserRepo_Integration_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db, 0)
		ctx := context.Background()

		for _, u := range []string{"zara", "adam", "mina"} {
			_, err := repo.Create(ctx, core.CreateUserParams{Username: u, PasswordHash: "h"})
			require.NoError(t, err)
		}

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "adam", users[0].Username)
		assert.Equal(t, "zara", users[2].Username)
	})
}
