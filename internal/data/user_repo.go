package data

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/data/database"
	"github.com/joblydev/jobly-api/internal/data/pgxutil"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

const userColumns = `username, password, first_name, last_name, email, photo_url, is_admin`

// UserRepo provides database operations for users. Passwords arrive already
// hashed; this layer never sees plaintext.
type UserRepo struct {
	DB      *sql.DB
	timeout time.Duration
}

// NewUserRepo creates a new UserRepo. queryTimeout caps each store call;
// pass 0 to disable.
func NewUserRepo(db *sql.DB, queryTimeout time.Duration) *UserRepo {
	return &UserRepo{DB: db, timeout: queryTimeout}
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, params core.CreateUserParams) (*model.User, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (username, password, first_name, last_name, email, photo_url, is_admin)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+userColumns,
			params.Username, params.PasswordHash, params.FirstName, params.LastName,
			params.Email, params.PhotoURL, params.IsAdmin)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByUsername retrieves a user by username, including the password hash.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves all user summaries ordered by username.
func (r *UserRepo) List(ctx context.Context) ([]*model.UserSummary, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var rowsOut []model.UserSummary
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT username, first_name, last_name, email FROM users ORDER BY username`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.UserSummary])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.UserSummary, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies a sparse update to a user. Only non-nil fields are written,
// in their declared order.
func (r *UserRepo) Update(ctx context.Context, username string, fields core.UserUpdateFields) (*model.User, error) {
	spec := database.UpdateSpec{Table: "users", KeyColumn: "username", KeyValue: username}
	if fields.PasswordHash != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "password", Value: *fields.PasswordHash})
	}
	if fields.FirstName != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "first_name", Value: *fields.FirstName})
	}
	if fields.LastName != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "last_name", Value: *fields.LastName})
	}
	if fields.Email != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "email", Value: *fields.Email})
	}
	if fields.PhotoURL != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "photo_url", Value: *fields.PhotoURL})
	}
	query, values, err := database.BuildPartialUpdate(spec)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, values...)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return qerr
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a user and, through the schema's cascade, their
// applications. Returns false when no user had the username.
func (r *UserRepo) Delete(ctx context.Context, username string) (bool, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var deleted bool
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	}); err != nil {
		return false, apperrors.MapDBError(err)
	}
	return deleted, nil
}
