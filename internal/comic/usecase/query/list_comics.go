package query

import (
	"context"

	"github.com/franvila/comic-commerce/internal/comic/domain"
)

// ListComicsQuery represents the query to list the whole catalog
type ListComicsQuery struct{}

// ListComicsHandler handles the catalog listing
type ListComicsHandler struct {
	repo domain.ComicRepository
}

// NewListComicsHandler creates a new list comics handler
func NewListComicsHandler(repo domain.ComicRepository) *ListComicsHandler {
	return &ListComicsHandler{repo: repo}
}

// Handle executes the list comics query
func (h *ListComicsHandler) Handle(ctx context.Context, q ListComicsQuery) ([]domain.Comic, error) {
	return h.repo.FindAll(ctx)
}
