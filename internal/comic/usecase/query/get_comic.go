package query

import (
	"context"

	"github.com/franvila/comic-commerce/internal/comic/domain"
)

// GetComicQuery represents the query for a single catalog item
type GetComicQuery struct {
	ID uint
}

// GetComicHandler handles the single-comic lookup
type GetComicHandler struct {
	repo domain.ComicRepository
}

// NewGetComicHandler creates a new get comic handler
func NewGetComicHandler(repo domain.ComicRepository) *GetComicHandler {
	return &GetComicHandler{repo: repo}
}

// Handle returns the catalog narrowed to the requested identifier.
// The result keeps the list envelope: zero or one element, never an
// error for an unknown id.
func (h *GetComicHandler) Handle(ctx context.Context, q GetComicQuery) ([]domain.Comic, error) {
	return h.repo.FindByIDs(ctx, []uint{q.ID})
}
