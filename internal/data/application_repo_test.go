package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The upsert must stay a single statement over the (username, job_id) key;
// splitting it into a read followed by a write reintroduces the duplicate
// submission race.
func TestApplicationUpsertQuery_IsAtomic(t *testing.T) {
	assert.Contains(t, applicationUpsertQuery, "ON CONFLICT (username, job_id)")
	assert.Contains(t, applicationUpsertQuery, "DO UPDATE SET state = EXCLUDED.state")
	assert.False(t, strings.Contains(strings.ToUpper(applicationUpsertQuery), "SELECT"),
		"upsert must not read before writing")
}
