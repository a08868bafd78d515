package bcrypthash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	t.Parallel()
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, h.Compare(hash, "hunter22"))
	assert.False(t, h.Compare(hash, "hunter23"))
	assert.False(t, h.Compare("not-a-hash", "hunter22"))
}

func TestNew_ClampsInvalidCost(t *testing.T) {
	t.Parallel()
	h := New(99)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
