package data

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/data/pgxutil"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

const applicationColumns = `username, job_id, state, created_at`

// applicationUpsertQuery leans on the (username, job_id) primary key so that
// concurrent submissions for the same user and job collapse into one row
// instead of racing a read-then-write.
const applicationUpsertQuery = `
	INSERT INTO applications (username, job_id, state)
	VALUES ($1, $2, $3)
	ON CONFLICT (username, job_id) DO UPDATE SET state = EXCLUDED.state
	RETURNING ` + applicationColumns

// ApplicationRepo provides database operations for job applications.
type ApplicationRepo struct {
	DB      *sql.DB
	timeout time.Duration
}

// NewApplicationRepo creates a new ApplicationRepo. queryTimeout caps each
// store call; pass 0 to disable.
func NewApplicationRepo(db *sql.DB, queryTimeout time.Duration) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeout: queryTimeout}
}

// Upsert inserts an application or, when one exists for the key, overwrites
// its state. Single statement, so it cannot race itself into a duplicate row.
func (r *ApplicationRepo) Upsert(ctx context.Context, key core.ApplicationKey, state model.ApplicationState) (*model.Application, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.Application
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, applicationUpsertQuery, key.Username, key.JobID, state)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// UpdateState overwrites the state of an existing application. created_at is
// untouched. Zero matched rows maps to a not-found error.
func (r *ApplicationRepo) UpdateState(ctx context.Context, key core.ApplicationKey, state model.ApplicationState) (*model.Application, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.Application
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE applications SET state = $1
			WHERE username = $2 AND job_id = $3
			RETURNING `+applicationColumns,
			state, key.Username, key.JobID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Get retrieves an application by its (username, job_id) key.
func (r *ApplicationRepo) Get(ctx context.Context, key core.ApplicationKey) (*model.Application, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.Application
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+applicationColumns+` FROM applications WHERE username = $1 AND job_id = $2`,
			key.Username, key.JobID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
