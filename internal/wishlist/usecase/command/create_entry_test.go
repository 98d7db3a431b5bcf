package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	comicdomain "github.com/franvila/comic-commerce/internal/comic/domain"
	userdomain "github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/internal/wishlist/domain"
	"github.com/franvila/comic-commerce/pkg/validation"
)

type stubUserRepo struct {
	known map[uint]*userdomain.User
}

func (s *stubUserRepo) Create(context.Context, *userdomain.User) error { return nil }
func (s *stubUserRepo) FindByID(_ context.Context, id uint) (*userdomain.User, error) {
	if user, ok := s.known[id]; ok {
		return user, nil
	}
	return nil, userdomain.ErrUserNotFound
}
func (s *stubUserRepo) FindByUsername(context.Context, string) (*userdomain.User, error) {
	return nil, userdomain.ErrUserNotFound
}
func (s *stubUserRepo) List(context.Context, userdomain.UserFilter) ([]userdomain.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Update(context.Context, *userdomain.User) error { return nil }
func (s *stubUserRepo) Delete(context.Context, uint) error             { return nil }
func (s *stubUserRepo) Count(context.Context) (int64, error)           { return 0, nil }

type stubComicRepo struct {
	known map[uint]*comicdomain.Comic
}

func (s *stubComicRepo) Create(context.Context, *comicdomain.Comic) error { return nil }
func (s *stubComicRepo) FindByID(_ context.Context, id uint) (*comicdomain.Comic, error) {
	if comic, ok := s.known[id]; ok {
		return comic, nil
	}
	return nil, comicdomain.ErrComicNotFound
}
func (s *stubComicRepo) FindByMarvelID(context.Context, int) (*comicdomain.Comic, error) {
	return nil, comicdomain.ErrComicNotFound
}
func (s *stubComicRepo) FindByIDs(context.Context, []uint) ([]comicdomain.Comic, error) {
	return nil, nil
}
func (s *stubComicRepo) FindAll(context.Context) ([]comicdomain.Comic, error) { return nil, nil }
func (s *stubComicRepo) Update(context.Context, *comicdomain.Comic) error     { return nil }
func (s *stubComicRepo) Delete(context.Context, uint) error                   { return nil }
func (s *stubComicRepo) Count(context.Context) (int64, error)                 { return 0, nil }

type fakeWishlistRepo struct {
	entries   []domain.WishlistEntry
	nextID    uint
	createErr error
}

func (f *fakeWishlistRepo) Create(_ context.Context, entry *domain.WishlistEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeWishlistRepo) FindAll(context.Context) ([]domain.WishlistEntry, error) {
	return f.entries, nil
}

func (f *fakeWishlistRepo) FindByUserAndComic(_ context.Context, userID, comicID uint) (*domain.WishlistEntry, error) {
	for i := range f.entries {
		if f.entries[i].UserID == userID && f.entries[i].ComicID == comicID {
			return &f.entries[i], nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (f *fakeWishlistRepo) FavoriteComicIDs(context.Context, string) ([]uint, error) { return nil, nil }

func uintPtr(v uint) *uint { return &v }

func newHandler() (*CreateEntryHandler, *fakeWishlistRepo) {
	users := &stubUserRepo{known: map[uint]*userdomain.User{
		1: {ID: 1, Username: "peter"},
	}}
	comics := &stubComicRepo{known: map[uint]*comicdomain.Comic{
		10: {ID: 10, MarvelID: 100, Title: "Amazing Fantasy #15"},
	}}
	entries := &fakeWishlistRepo{}
	return NewCreateEntryHandler(entries, users, comics), entries
}

func TestCreateEntry(t *testing.T) {
	handler, entries := newHandler()

	entry, err := handler.Handle(context.Background(), CreateEntryCommand{
		UserID:    uintPtr(1),
		ComicID:   uintPtr(10),
		Favorite:  true,
		WishedQty: 2,
	})
	require.NoError(t, err)

	assert.NotZero(t, entry.ID)
	assert.Equal(t, uint(1), entry.UserID)
	assert.Equal(t, uint(10), entry.ComicID)
	assert.True(t, entry.Favorite)
	assert.Len(t, entries.entries, 1)
}

func TestCreateEntryMissingReferences(t *testing.T) {
	handler, _ := newHandler()

	_, err := handler.Handle(context.Background(), CreateEntryCommand{})
	require.Error(t, err)

	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"This field is required."}, errs["user"])
	assert.Equal(t, []string{"This field is required."}, errs["comic"])
}

func TestCreateEntryUnknownReferences(t *testing.T) {
	handler, entries := newHandler()

	_, err := handler.Handle(context.Background(), CreateEntryCommand{
		UserID:  uintPtr(99),
		ComicID: uintPtr(77),
	})
	require.Error(t, err)

	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{`Invalid pk "99" - object does not exist.`}, errs["user"])
	assert.Equal(t, []string{`Invalid pk "77" - object does not exist.`}, errs["comic"])
	assert.Empty(t, entries.entries)
}

func TestCreateEntryDuplicatePair(t *testing.T) {
	handler, entries := newHandler()

	_, err := handler.Handle(context.Background(), CreateEntryCommand{UserID: uintPtr(1), ComicID: uintPtr(10)})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), CreateEntryCommand{UserID: uintPtr(1), ComicID: uintPtr(10)})
	require.Error(t, err)

	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"This comic is already on the user's wishlist."}, errs["non_field_errors"])
	assert.Len(t, entries.entries, 1)
}

func TestCreateEntryDuplicateInsertRace(t *testing.T) {
	handler, entries := newHandler()

	// The pair is absent at check time but the insert collides with a
	// row committed in between, surfacing the unique index violation.
	entries.createErr = domain.ErrDuplicateEntry

	_, err := handler.Handle(context.Background(), CreateEntryCommand{
		UserID:  uintPtr(1),
		ComicID: uintPtr(10),
	})
	require.Error(t, err)

	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"This comic is already on the user's wishlist."}, errs["non_field_errors"])
	assert.Empty(t, entries.entries)
}

func TestCreateEntryNegativeQuantities(t *testing.T) {
	handler, _ := newHandler()

	_, err := handler.Handle(context.Background(), CreateEntryCommand{
		UserID:    uintPtr(1),
		ComicID:   uintPtr(10),
		WishedQty: -1,
	})
	require.Error(t, err)

	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, errs, "wished_qty")
}
