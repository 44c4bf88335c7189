package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(4)

	hash, err := hasher.Hash("hunter2secret")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2secret", hash)

	assert.NoError(t, hasher.Compare(hash, "hunter2secret"))
	assert.ErrorIs(t, hasher.Compare(hash, "wrong"), ErrPasswordMismatch)
	assert.ErrorIs(t, hasher.Compare("not-a-hash", "hunter2secret"), ErrPasswordMismatch)
}

func TestPasswordHasherRejectsEmpty(t *testing.T) {
	hasher := NewPasswordHasher(4)
	_, err := hasher.Hash("")
	assert.Error(t, err)
}

func TestPasswordHasherCostFallback(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default rather than failing
	hasher := NewPasswordHasher(99)
	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "pw"))
}
