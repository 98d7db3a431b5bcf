//go:build wireinject
// +build wireinject

package wishlist

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	comicdomain "github.com/franvila/comic-commerce/internal/comic/domain"
	comicrepo "github.com/franvila/comic-commerce/internal/comic/repository"
	userdomain "github.com/franvila/comic-commerce/internal/user/domain"
	userrepo "github.com/franvila/comic-commerce/internal/user/repository"
	"github.com/franvila/comic-commerce/internal/wishlist/delivery/http"
	"github.com/franvila/comic-commerce/internal/wishlist/domain"
	"github.com/franvila/comic-commerce/internal/wishlist/repository"
	"github.com/franvila/comic-commerce/kafka"
	"github.com/franvila/comic-commerce/pkg/auth"
)

// ProvideWishlistRepository provides the wishlist repository
func ProvideWishlistRepository(db *gorm.DB) domain.WishlistRepository {
	return repository.NewGormWishlistRepository(db)
}

// ProvideUserRepository provides the user repository for entry validation
func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewGormUserRepositoryWithTracing(db)
}

// ProvideComicRepository provides the comic repository for entry validation
func ProvideComicRepository(db *gorm.DB) comicdomain.ComicRepository {
	return comicrepo.NewGormComicRepositoryWithTracing(db)
}

var RepositorySet = wire.NewSet(
	ProvideWishlistRepository,
	ProvideUserRepository,
	ProvideComicRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher, guard *auth.Guard) (*http.WishlistHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewWishlistHandler,
	)
	return nil, nil
}
