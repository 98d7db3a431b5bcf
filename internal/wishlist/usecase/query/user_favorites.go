package query

import (
	"context"

	comicdomain "github.com/franvila/comic-commerce/internal/comic/domain"
	"github.com/franvila/comic-commerce/internal/wishlist/domain"
)

// UserFavoritesQuery asks for the comics a user marked favorite
type UserFavoritesQuery struct {
	Username string
}

// UserFavoritesHandler joins favorite wishlist entries to the catalog
type UserFavoritesHandler struct {
	entries domain.WishlistRepository
	comics  comicdomain.ComicRepository
}

// NewUserFavoritesHandler creates a new user favorites handler
func NewUserFavoritesHandler(entries domain.WishlistRepository, comics comicdomain.ComicRepository) *UserFavoritesHandler {
	return &UserFavoritesHandler{entries: entries, comics: comics}
}

// Handle projects the user's favorite entries onto catalog items.
// An unknown username or a user with no favorites yields an empty
// collection, never an error.
func (h *UserFavoritesHandler) Handle(ctx context.Context, q UserFavoritesQuery) ([]comicdomain.Comic, error) {
	ids, err := h.entries.FavoriteComicIDs(ctx, q.Username)
	if err != nil {
		return nil, err
	}
	return h.comics.FindByIDs(ctx, ids)
}
