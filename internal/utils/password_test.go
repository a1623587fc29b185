package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/compchange/internal/utils"
)

func TestHashPassword_VerifiesAgainstOriginal(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
}

func TestCheckPasswordHash_RejectsWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.False(t, utils.CheckPasswordHash("wrong-pass", hash))
	assert.False(t, utils.CheckPasswordHash("s3cret-pass", "not-a-bcrypt-hash"))
}
