package database

import (
	"fmt"
	"strings"

	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

// UpdateField is a single column assignment in a partial update. Fields are
// applied in slice order, which fixes the placeholder numbering.
type UpdateField struct {
	Column string
	Value  any
}

// UpdateSpec describes a sparse UPDATE against a single row. Table, KeyColumn
// and field columns are code-controlled identifiers, never caller input; only
// the values travel as bind parameters.
type UpdateSpec struct {
	Table     string
	KeyColumn string
	KeyValue  any
	Fields    []UpdateField
}

// BuildPartialUpdate renders an UPDATE statement covering exactly the columns
// in spec.Fields, in order, with the key value bound as the final parameter:
//
//	UPDATE items SET name=$1, price=$2 WHERE id=$3 RETURNING *
//
// An empty field set is a validation error; SQL has no zero-column UPDATE.
func BuildPartialUpdate(spec UpdateSpec) (string, []any, error) {
	if spec.Table == "" || spec.KeyColumn == "" {
		return "", nil, apperrors.Internal("update spec missing table or key column")
	}
	if len(spec.Fields) == 0 {
		return "", nil, apperrors.Validation("no fields to update")
	}

	assignments := make([]string, len(spec.Fields))
	values := make([]any, 0, len(spec.Fields)+1)
	for i, f := range spec.Fields {
		assignments[i] = fmt.Sprintf("%s=$%d", f.Column, i+1)
		values = append(values, f.Value)
	}
	values = append(values, spec.KeyValue)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s=$%d RETURNING *",
		spec.Table,
		strings.Join(assignments, ", "),
		spec.KeyColumn,
		len(spec.Fields)+1,
	)
	return query, values, nil
}
