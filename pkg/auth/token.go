package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateTokenKey returns an opaque 40-character hex token key.
func GenerateTokenKey() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate token key: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
