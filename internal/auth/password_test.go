package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, VerifyPassword(hash, "pw123456"))
	assert.False(t, VerifyPassword(hash, "pw1234567"))
	assert.False(t, VerifyPassword("not-a-hash", "pw123456"))
}

func TestVerifyTempPassword(t *testing.T) {
	assert.True(t, VerifyTempPassword("temp-secret", "temp-secret"))
	assert.False(t, VerifyTempPassword("temp-secret", "other"))
	assert.False(t, VerifyTempPassword("", ""), "an absent stored password never matches")
}
