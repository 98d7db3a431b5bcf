//go:build wireinject
// +build wireinject

package comic

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/franvila/comic-commerce/internal/comic/delivery/http"
	"github.com/franvila/comic-commerce/internal/comic/domain"
	"github.com/franvila/comic-commerce/internal/comic/repository"
	"github.com/franvila/comic-commerce/kafka"
	"github.com/franvila/comic-commerce/pkg/auth"
)

// ProvideComicRepository provides the comic repository
func ProvideComicRepository(db *gorm.DB) domain.ComicRepository {
	return repository.NewGormComicRepositoryWithTracing(db)
}

var RepositorySet = wire.NewSet(
	ProvideComicRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher, guard *auth.Guard) (*http.ComicHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewComicHandler,
	)
	return nil, nil
}
