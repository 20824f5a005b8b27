package utils_test

import (
	"strings"
	"testing"

	"github.com/staffdeck/payroll_hr_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cure-Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cure-Passw0rd!", hash)

	assert.True(t, utils.CheckPasswordHash("s3cure-Passw0rd!", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
}

func TestHashPassword_RejectsOverlongInput(t *testing.T) {
	_, err := utils.HashPassword(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "72 byte")
}

func TestCheckPasswordHash_GarbageHash(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}
