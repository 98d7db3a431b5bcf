package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	comicdomain "github.com/franvila/comic-commerce/internal/comic/domain"
	"github.com/franvila/comic-commerce/internal/wishlist/domain"
)

type stubWishlistRepo struct {
	favorites map[string][]uint
	entries   []domain.WishlistEntry
}

func (s *stubWishlistRepo) Create(context.Context, *domain.WishlistEntry) error { return nil }
func (s *stubWishlistRepo) FindAll(context.Context) ([]domain.WishlistEntry, error) {
	return s.entries, nil
}
func (s *stubWishlistRepo) FindByUserAndComic(context.Context, uint, uint) (*domain.WishlistEntry, error) {
	return nil, domain.ErrEntryNotFound
}
func (s *stubWishlistRepo) FavoriteComicIDs(_ context.Context, username string) ([]uint, error) {
	return s.favorites[username], nil
}

type stubComicRepo struct {
	known map[uint]comicdomain.Comic
}

func (s *stubComicRepo) Create(context.Context, *comicdomain.Comic) error { return nil }
func (s *stubComicRepo) FindByID(context.Context, uint) (*comicdomain.Comic, error) {
	return nil, comicdomain.ErrComicNotFound
}
func (s *stubComicRepo) FindByMarvelID(context.Context, int) (*comicdomain.Comic, error) {
	return nil, comicdomain.ErrComicNotFound
}
func (s *stubComicRepo) FindByIDs(_ context.Context, ids []uint) ([]comicdomain.Comic, error) {
	out := []comicdomain.Comic{}
	for _, id := range ids {
		if comic, ok := s.known[id]; ok {
			out = append(out, comic)
		}
	}
	return out, nil
}
func (s *stubComicRepo) FindAll(context.Context) ([]comicdomain.Comic, error) { return nil, nil }
func (s *stubComicRepo) Update(context.Context, *comicdomain.Comic) error     { return nil }
func (s *stubComicRepo) Delete(context.Context, uint) error                   { return nil }
func (s *stubComicRepo) Count(context.Context) (int64, error)                 { return 0, nil }

func TestUserFavoritesResolvesComics(t *testing.T) {
	entries := &stubWishlistRepo{favorites: map[string][]uint{
		"peter": {10, 11},
	}}
	comics := &stubComicRepo{known: map[uint]comicdomain.Comic{
		10: {ID: 10, Title: "Amazing Fantasy #15"},
		11: {ID: 11, Title: "The Amazing Spider-Man #1"},
	}}
	handler := NewUserFavoritesHandler(entries, comics)

	favorites, err := handler.Handle(context.Background(), UserFavoritesQuery{Username: "peter"})
	require.NoError(t, err)

	require.Len(t, favorites, 2)
	assert.Equal(t, "Amazing Fantasy #15", favorites[0].Title)
}

func TestUserFavoritesUnknownUsername(t *testing.T) {
	handler := NewUserFavoritesHandler(
		&stubWishlistRepo{favorites: map[string][]uint{}},
		&stubComicRepo{known: map[uint]comicdomain.Comic{}},
	)

	favorites, err := handler.Handle(context.Background(), UserFavoritesQuery{Username: "nobody"})
	require.NoError(t, err, "unknown usernames yield an empty collection, not an error")
	assert.Empty(t, favorites)
}
