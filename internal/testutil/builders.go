package testutil

import (
	"context"
	"database/sql"
	"time"
)

// Fixture builders insert minimal rows the repositories under test depend
// on via foreign keys.

// InsertTestCompany inserts a company row and returns its handle.
func InsertTestCompany(t TestingTB, db *sql.DB, handle, name string) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx,
		`INSERT INTO companies (handle, name) VALUES ($1, $2)`, handle, name); err != nil {
		t.Fatalf("Failed to insert test company %s: %v", handle, err)
	}
	return handle
}

// InsertTestUser inserts a user row with a placeholder password hash.
func InsertTestUser(t TestingTB, db *sql.DB, username string, isAdmin bool) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx,
		`INSERT INTO users (username, password, is_admin) VALUES ($1, $2, $3)`,
		username, "$2a$04$testhashtesthashtesthash", isAdmin); err != nil {
		t.Fatalf("Failed to insert test user %s: %v", username, err)
	}
	return username
}

// InsertTestJob inserts a job row for the given company and returns its ID.
func InsertTestJob(t TestingTB, db *sql.DB, title, companyHandle string) int64 {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var id int64
	if err := db.QueryRowContext(ctx,
		`INSERT INTO jobs (title, company_handle) VALUES ($1, $2) RETURNING id`,
		title, companyHandle).Scan(&id); err != nil {
		t.Fatalf("Failed to insert test job %q: %v", title, err)
	}
	return id
}
