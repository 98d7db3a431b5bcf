package query

import (
	"context"

	"github.com/franvila/comic-commerce/internal/wishlist/domain"
)

// ListEntriesQuery represents the query to list every wishlist entry
type ListEntriesQuery struct{}

// ListEntriesHandler handles the wishlist listing
type ListEntriesHandler struct {
	repo domain.WishlistRepository
}

// NewListEntriesHandler creates a new list entries handler
func NewListEntriesHandler(repo domain.WishlistRepository) *ListEntriesHandler {
	return &ListEntriesHandler{repo: repo}
}

// Handle executes the list entries query
func (h *ListEntriesHandler) Handle(ctx context.Context, q ListEntriesQuery) ([]domain.WishlistEntry, error) {
	return h.repo.FindAll(ctx)
}
