package database

import (
	"strings"
	"testing"
)

func TestBuildListQuery_BasicSelect(t *testing.T) {
	opts := NewListQueryOptions("companies")
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "companies"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_WithColumns(t *testing.T) {
	opts := NewListQueryOptions("companies",
		WithColumns("handle", "name"),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT "handle", "name" FROM "companies"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_WithConditions(t *testing.T) {
	opts := NewListQueryOptions("companies",
		WithColumns("handle", "name"),
		WithCondition(WhereCond("name", ILike, "%net%")),
		WithCondition(WhereCond("num_employees", GreaterThanOrEqual, 10)),
		WithCondition(WhereCond("num_employees", LessThanOrEqual, 500)),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT "handle", "name" FROM "companies" WHERE "name" ILIKE $1 AND "num_employees" >= $2 AND "num_employees" <= $3`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 3 {
		t.Fatalf("Expected 3 args, got %d", len(args))
	}
	if args[0] != "%net%" || args[1] != 10 || args[2] != 500 {
		t.Errorf("Unexpected args: %v", args)
	}
}

func TestBuildListQuery_OrderLimitOffset(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("salary", GreaterThanOrEqual, 50000.0)),
		WithOrderBy("date_posted", "desc"),
		WithLimit(25),
		WithOffset(50),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "salary" >= $1 ORDER BY "date_posted" DESC LIMIT $2 OFFSET $3`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 3 {
		t.Fatalf("Expected 3 args, got %d", len(args))
	}
	if args[1] != 25 || args[2] != 50 {
		t.Errorf("Unexpected pagination args: %v", args)
	}
}

func TestBuildListQuery_InvalidOrderDirIgnored(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithOrderBy("title", "sideways"),
	)
	query, _ := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" ORDER BY "title"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
}

func TestBuildListQuery_SanitizesIdentifiers(t *testing.T) {
	opts := NewListQueryOptions(`jobs"; DROP TABLE jobs; --`,
		WithCondition(WhereCond(`title" OR 1=1 --`, Equal, "x")),
	)
	query, _ := BuildListQuery(opts)

	if query == "" {
		t.Fatal("expected non-empty query")
	}
	if want := `FROM "jobs""; DROP TABLE jobs; --"`; !strings.Contains(query, want) {
		t.Errorf("table identifier not quoted: %q", query)
	}
}
