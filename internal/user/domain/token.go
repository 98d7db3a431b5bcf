package domain

import (
	"context"
	"time"
)

// AuthToken is the opaque bearer credential bound one-to-one to a user.
// A token is created lazily on first successful login and reused on every
// later login; it is never rotated or expired.
type AuthToken struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null;size:40"`
	UserID    uint      `json:"-" gorm:"uniqueIndex;not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"-"`
}

// TableName specifies the table name
func (AuthToken) TableName() string {
	return "auth_tokens"
}

// TokenRepository defines the contract for auth token data access
type TokenRepository interface {
	// GetOrCreate returns the user's token, creating it on first login.
	// The second result reports whether a new token was issued.
	GetOrCreate(ctx context.Context, userID uint) (*AuthToken, bool, error)
	// FindByKey resolves a token key to the token and its owning user.
	FindByKey(ctx context.Context, key string) (*AuthToken, error)
}
