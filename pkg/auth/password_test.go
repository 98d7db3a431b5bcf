package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cure-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cure-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cure-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
	assert.False(t, CheckPassword("not-a-hash", "s3cure-pass"))
}

func TestPasswordPolicyValidate(t *testing.T) {
	policy := DefaultPasswordPolicy()

	tests := []struct {
		name     string
		password string
		username string
		problems int
	}{
		{"valid password", "correct-horse", "peter", 0},
		{"too short", "short", "peter", 1},
		{"entirely numeric", "123456789", "peter", 1},
		{"equal to username", "peterparker", "peterparker", 1},
		{"equal to username ignoring case", "PeterParker", "peterparker", 1},
		{"short and numeric", "1234", "peter", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := policy.Validate(tt.password, tt.username)
			assert.Len(t, problems, tt.problems)
		})
	}
}

func TestPasswordPolicyZeroMinLengthFallsBack(t *testing.T) {
	policy := PasswordPolicy{}
	assert.NotEmpty(t, policy.Validate("seven77", ""))
	assert.Empty(t, policy.Validate("eight888", ""))
}

func TestGenerateTokenKey(t *testing.T) {
	key1, err := GenerateTokenKey()
	require.NoError(t, err)
	key2, err := GenerateTokenKey()
	require.NoError(t, err)

	assert.Len(t, key1, 40)
	assert.Len(t, key2, 40)
	assert.NotEqual(t, key1, key2)
	assert.Regexp(t, "^[0-9a-f]{40}$", key1)
}
