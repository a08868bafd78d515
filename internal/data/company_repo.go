package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/joblydev/jobly-api/internal/data/database"
	"github.com/joblydev/jobly-api/internal/data/pgxutil"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

// CompanyRepo provides database operations for companies.
type CompanyRepo struct {
	DB      *sql.DB
	timeout time.Duration
}

// NewCompanyRepo creates a new CompanyRepo. queryTimeout caps each store
// call; pass 0 to disable.
func NewCompanyRepo(db *sql.DB, queryTimeout time.Duration) *CompanyRepo {
	return &CompanyRepo{DB: db, timeout: queryTimeout}
}

// Create inserts a new company.
func (r *CompanyRepo) Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
	if req == nil {
		return nil, errors.New("create company request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO companies (handle, name, num_employees, description, logo_url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING handle, name, num_employees, description, logo_url
		`, req.Handle, req.Name, req.NumEmployees, req.Description, req.LogoURL)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByHandle retrieves a company by handle.
func (r *CompanyRepo) GetByHandle(ctx context.Context, handle string) (*model.Company, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT handle, name, num_employees, description, logo_url FROM companies WHERE handle = $1`,
			handle)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Search retrieves company summaries matching the given filters, ordered by name.
func (r *CompanyRepo) Search(ctx context.Context, opts model.CompanySearchOptions) ([]*model.CompanySummary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	listOpts := []database.ListQueryOption{
		database.WithColumns("handle", "name"),
		database.WithOrderBy("name", "ASC"),
	}
	if opts.Search != nil && *opts.Search != "" {
		listOpts = append(listOpts, database.WithCondition(
			database.WhereCond("name", database.ILike, "%"+*opts.Search+"%")))
	}
	if opts.MinEmployees != nil {
		listOpts = append(listOpts, database.WithCondition(
			database.WhereCond("num_employees", database.GreaterThanOrEqual, *opts.MinEmployees)))
	}
	if opts.MaxEmployees != nil {
		listOpts = append(listOpts, database.WithCondition(
			database.WhereCond("num_employees", database.LessThanOrEqual, *opts.MaxEmployees)))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("companies", listOpts...))

	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var rowsOut []model.CompanySummary
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CompanySummary])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.CompanySummary, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies a sparse update to a company. Only non-nil request fields
// are written, in their declared order.
func (r *CompanyRepo) Update(ctx context.Context, handle string, req model.UpdateCompanyRequest) (*model.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	spec := database.UpdateSpec{Table: "companies", KeyColumn: "handle", KeyValue: handle}
	if req.Name != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "name", Value: *req.Name})
	}
	if req.NumEmployees != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "num_employees", Value: *req.NumEmployees})
	}
	if req.Description != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "description", Value: *req.Description})
	}
	if req.LogoURL != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "logo_url", Value: *req.LogoURL})
	}
	query, values, err := database.BuildPartialUpdate(spec)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, values...)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return qerr
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a company and, through the schema's cascade, its jobs.
// Returns false when no company had the handle.
func (r *CompanyRepo) Delete(ctx context.Context, handle string) (bool, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var deleted bool
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
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
