package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		plain    string
		hash     string
		expected bool
	}{
		{
			name:     "matching password",
			plain:    "correct",
			hash:     hash,
			expected: true,
		},
		{
			name:     "wrong password",
			plain:    "wrong",
			hash:     hash,
			expected: false,
		},
		{
			name:     "empty password",
			plain:    "",
			hash:     hash,
			expected: false,
		},
		{
			name:     "empty hash",
			plain:    "correct",
			hash:     "",
			expected: false,
		},
		{
			name:     "malformed hash",
			plain:    "correct",
			hash:     "not-a-bcrypt-hash",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VerifyPassword(tt.plain, tt.hash))
		})
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := HashPassword("secret", bcrypt.MaxCost+1)
	assert.Error(t, err)
}

func TestVerifyPassword_LongPasswordUsesFirst72Bytes(t *testing.T) {
	// 40 two-byte runes: within a 72 rune limit but 80 bytes long
	long := strings.Repeat("é", 40)
	hash, err := HashPassword(long[:72], bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(long, hash))
	assert.True(t, VerifyPassword(long[:72], hash))
	assert.False(t, VerifyPassword(long[:70], hash))
}
