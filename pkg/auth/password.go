package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
// bcrypt's comparison is constant-time.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PasswordPolicy is the configurable strength policy applied to new passwords.
type PasswordPolicy struct {
	MinLength int
}

// DefaultPasswordPolicy mirrors the usual framework defaults.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: 8}
}

// Validate returns every policy violation for the candidate password.
// The username is checked so a password cannot trivially restate the account name.
func (p PasswordPolicy) Validate(password, username string) []string {
	var problems []string

	minLength := p.MinLength
	if minLength <= 0 {
		minLength = 8
	}
	if len(password) < minLength {
		problems = append(problems, fmt.Sprintf("must be at least %d characters", minLength))
	}

	if password != "" && isAllDigits(password) {
		problems = append(problems, "must not be entirely numeric")
	}

	if username != "" && strings.EqualFold(password, username) {
		problems = append(problems, "must not be equal to the username")
	}

	return problems
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
