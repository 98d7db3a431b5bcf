package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/pkg/auth"
)

// GormTokenRepository implements TokenRepository using GORM
type GormTokenRepository struct {
	db *gorm.DB
}

// NewGormTokenRepository creates a new GORM token repository
func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormTokenRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.AuthToken{})
}

// GetOrCreate returns the existing token for the user, generating one on
// first login. Repeated logins always yield the same key.
func (r *GormTokenRepository) GetOrCreate(ctx context.Context, userID uint) (*domain.AuthToken, bool, error) {
	var token domain.AuthToken
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to look up token: %w", err)
	}

	key, err := auth.GenerateTokenKey()
	if err != nil {
		return nil, false, err
	}

	token = domain.AuthToken{Key: key, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&token).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create token: %w", err)
	}
	if err := r.db.WithContext(ctx).Preload("User").First(&token, token.ID).Error; err != nil {
		return nil, false, fmt.Errorf("failed to reload token: %w", err)
	}
	return &token, true, nil
}

// FindByKey resolves a token key to the token and its owning user
func (r *GormTokenRepository) FindByKey(ctx context.Context, key string) (*domain.AuthToken, error) {
	var token domain.AuthToken
	if err := r.db.WithContext(ctx).Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to find token: %w", err)
	}
	return &token, nil
}

// TokenVerifier adapts the token repository to the auth.Verifier interface
// consumed by the route guard.
type TokenVerifier struct {
	tokens domain.TokenRepository
}

// NewTokenVerifier creates a verifier backed by the token repository
func NewTokenVerifier(tokens domain.TokenRepository) *TokenVerifier {
	return &TokenVerifier{tokens: tokens}
}

// Verify resolves key to the identity owning it. Inactive accounts
// do not authenticate.
func (v *TokenVerifier) Verify(ctx context.Context, key string) (*auth.Identity, error) {
	token, err := v.tokens.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if !token.User.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}
	return &auth.Identity{
		UserID:   token.User.ID,
		Username: token.User.Username,
		IsStaff:  token.User.IsStaff,
	}, nil
}
