//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/franvila/comic-commerce/internal/user/delivery/http"
	"github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/internal/user/repository"
	"github.com/franvila/comic-commerce/pkg/auth"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepositoryWithTracing(db)
}

// ProvideTokenRepository provides the auth token repository
func ProvideTokenRepository(db *gorm.DB) domain.TokenRepository {
	return repository.NewGormTokenRepository(db)
}

// ProvidePasswordPolicy provides the password validation policy
func ProvidePasswordPolicy() auth.PasswordPolicy {
	return auth.DefaultPasswordPolicy()
}

// ProvideVerifier provides the token verifier backing the guard
func ProvideVerifier(tokens domain.TokenRepository) auth.Verifier {
	return repository.NewTokenVerifier(tokens)
}

// ProvideGuard provides the request policy guard
func ProvideGuard(verifier auth.Verifier) *auth.Guard {
	return auth.NewGuard(verifier)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideTokenRepository,
)

var AuthSet = wire.NewSet(
	ProvidePasswordPolicy,
	ProvideVerifier,
	ProvideGuard,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		AuthSet,
		http.NewUserHandler,
	)
	return nil, nil
}

// InitializeGuard initializes the policy guard shared across services
func InitializeGuard(db *gorm.DB) (*auth.Guard, error) {
	wire.Build(
		ProvideTokenRepository,
		ProvideVerifier,
		ProvideGuard,
	)
	return nil, nil
}
