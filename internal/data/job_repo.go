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

const jobColumns = `id, title, salary, equity, company_handle, date_posted`

// JobRepo provides database operations for job postings.
type JobRepo struct {
	DB      *sql.DB
	timeout time.Duration
}

// NewJobRepo creates a new JobRepo. queryTimeout caps each store call;
// pass 0 to disable.
func NewJobRepo(db *sql.DB, queryTimeout time.Duration) *JobRepo {
	return &JobRepo{DB: db, timeout: queryTimeout}
}

// Create inserts a new job posting. date_posted is set by the database.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, errors.New("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs (title, salary, equity, company_handle)
			VALUES ($1, $2, $3, $4)
			RETURNING `+jobColumns,
			req.Title, req.Salary, req.Equity, req.CompanyHandle)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a job by ID.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Search retrieves job summaries matching the given filters, newest first.
func (r *JobRepo) Search(ctx context.Context, opts model.JobSearchOptions) ([]*model.JobSummary, error) {
	listOpts := []database.ListQueryOption{
		database.WithColumns("title", "company_handle"),
		database.WithOrderBy("date_posted", "DESC"),
	}
	if opts.Search != nil && *opts.Search != "" {
		listOpts = append(listOpts, database.WithCondition(
			database.WhereCond("title", database.ILike, "%"+*opts.Search+"%")))
	}
	if opts.MinSalary != nil {
		listOpts = append(listOpts, database.WithCondition(
			database.WhereCond("salary", database.GreaterThanOrEqual, *opts.MinSalary)))
	}
	if opts.MinEquity != nil {
		listOpts = append(listOpts, database.WithCondition(
			database.WhereCond("equity", database.GreaterThanOrEqual, *opts.MinEquity)))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("jobs", listOpts...))

	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var rowsOut []model.JobSummary
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobSummary])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.JobSummary, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListByCompany retrieves all jobs posted by a company, newest first.
func (r *JobRepo) ListByCompany(ctx context.Context, handle string) ([]*model.Job, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var rowsOut []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+jobColumns+` FROM jobs WHERE company_handle = $1 ORDER BY date_posted DESC`,
			handle)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Job, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies a sparse update to a job. Only non-nil request fields are
// written, in their declared order.
func (r *JobRepo) Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	spec := database.UpdateSpec{Table: "jobs", KeyColumn: "id", KeyValue: id}
	if req.Title != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "title", Value: *req.Title})
	}
	if req.Salary != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "salary", Value: *req.Salary})
	}
	if req.Equity != nil {
		spec.Fields = append(spec.Fields, database.UpdateField{Column: "equity", Value: *req.Equity})
	}
	query, values, err := database.BuildPartialUpdate(spec)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, values...)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return qerr
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a job posting. Returns false when no job had the ID.
func (r *JobRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var deleted bool
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
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
