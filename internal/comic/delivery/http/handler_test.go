package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franvila/comic-commerce/internal/comic/domain"
	"github.com/franvila/comic-commerce/pkg/auth"
)

// fakeComicRepo is an in-memory ComicRepository keyed by ID.
type fakeComicRepo struct {
	comics map[uint]*domain.Comic
	nextID uint
}

func newFakeComicRepo() *fakeComicRepo {
	return &fakeComicRepo{comics: map[uint]*domain.Comic{}, nextID: 1}
}

func (f *fakeComicRepo) Create(_ context.Context, comic *domain.Comic) error {
	comic.ID = f.nextID
	f.nextID++
	copied := *comic
	f.comics[comic.ID] = &copied
	return nil
}

func (f *fakeComicRepo) FindByID(_ context.Context, id uint) (*domain.Comic, error) {
	if comic, ok := f.comics[id]; ok {
		copied := *comic
		return &copied, nil
	}
	return nil, domain.ErrComicNotFound
}

func (f *fakeComicRepo) FindByMarvelID(_ context.Context, marvelID int) (*domain.Comic, error) {
	for _, comic := range f.comics {
		if comic.MarvelID == marvelID {
			copied := *comic
			return &copied, nil
		}
	}
	return nil, domain.ErrComicNotFound
}

func (f *fakeComicRepo) FindByIDs(_ context.Context, ids []uint) ([]domain.Comic, error) {
	out := []domain.Comic{}
	for _, id := range ids {
		if comic, ok := f.comics[id]; ok {
			out = append(out, *comic)
		}
	}
	return out, nil
}

func (f *fakeComicRepo) FindAll(context.Context) ([]domain.Comic, error) {
	out := []domain.Comic{}
	for id := uint(1); id < f.nextID; id++ {
		if comic, ok := f.comics[id]; ok {
			out = append(out, *comic)
		}
	}
	return out, nil
}

func (f *fakeComicRepo) Update(_ context.Context, comic *domain.Comic) error {
	if _, ok := f.comics[comic.ID]; !ok {
		return domain.ErrComicNotFound
	}
	copied := *comic
	f.comics[comic.ID] = &copied
	return nil
}

func (f *fakeComicRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.comics[id]; !ok {
		return domain.ErrComicNotFound
	}
	delete(f.comics, id)
	return nil
}

func (f *fakeComicRepo) Count(context.Context) (int64, error) {
	return int64(len(f.comics)), nil
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(ctx context.Context, key string) (*auth.Identity, error) {
	switch key {
	case "member-key":
		return &auth.Identity{UserID: 1, Username: "peter", IsStaff: false}, nil
	case "staff-key":
		return &auth.Identity{UserID: 2, Username: "admin", IsStaff: true}, nil
	}
	return nil, errors.New("invalid token")
}

func newTestRouter(repo domain.ComicRepository) *mux.Router {
	handler := NewComicHandler(repo, nil, auth.NewGuard(fakeVerifier{}))
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func seedComic(t *testing.T, repo *fakeComicRepo, marvelID int, title string) *domain.Comic {
	t.Helper()
	comic := &domain.Comic{MarvelID: marvelID, Title: title, Price: 9.99, StockQty: 3}
	require.NoError(t, repo.Create(context.Background(), comic))
	return comic
}

func doRequest(router *mux.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListComics(t *testing.T) {
	repo := newFakeComicRepo()
	seedComic(t, repo, 100, "Amazing Fantasy #15")
	seedComic(t, repo, 101, "The Amazing Spider-Man #1")
	router := newTestRouter(repo)

	rec := doRequest(router, http.MethodGet, "/comics", "member-key", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var comics []domain.Comic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comics))
	assert.Len(t, comics, 2)
}

func TestListComicsRequiresToken(t *testing.T) {
	router := newTestRouter(newFakeComicRepo())

	rec := doRequest(router, http.MethodGet, "/comics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetComicReturnsListEnvelope(t *testing.T) {
	repo := newFakeComicRepo()
	comic := seedComic(t, repo, 100, "Amazing Fantasy #15")
	router := newTestRouter(repo)

	rec := doRequest(router, http.MethodGet, "/comics/1", "member-key", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var comics []domain.Comic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comics))
	require.Len(t, comics, 1)
	assert.Equal(t, comic.Title, comics[0].Title)
}

func TestGetComicUnknownIDReturnsEmptyList(t *testing.T) {
	router := newTestRouter(newFakeComicRepo())

	rec := doRequest(router, http.MethodGet, "/comics/42", "member-key", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetComicInvalidID(t *testing.T) {
	router := newTestRouter(newFakeComicRepo())

	rec := doRequest(router, http.MethodGet, "/comics/abc", "member-key", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateComicRequiresStaff(t *testing.T) {
	router := newTestRouter(newFakeComicRepo())
	body := map[string]any{"marvel_id": 100, "title": "Amazing Fantasy #15"}

	rec := doRequest(router, http.MethodPost, "/comics", "member-key", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(router, http.MethodPost, "/comics", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateComic(t *testing.T) {
	repo := newFakeComicRepo()
	router := newTestRouter(repo)
	body := map[string]any{
		"marvel_id": 100,
		"title":     "Amazing Fantasy #15",
		"price":     1200.50,
		"stock_qty": 1,
	}

	rec := doRequest(router, http.MethodPost, "/comics", "staff-key", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var comic domain.Comic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comic))
	assert.NotZero(t, comic.ID)
	assert.Equal(t, 100, comic.MarvelID)
}

func TestCreateComicValidationErrorMap(t *testing.T) {
	router := newTestRouter(newFakeComicRepo())

	rec := doRequest(router, http.MethodPost, "/comics", "staff-key", map[string]any{"price": -1})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	assert.Contains(t, errs, "marvel_id")
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "price")
}

func TestCreateComicDuplicateMarvelID(t *testing.T) {
	repo := newFakeComicRepo()
	seedComic(t, repo, 100, "Amazing Fantasy #15")
	router := newTestRouter(repo)

	rec := doRequest(router, http.MethodPost, "/comics", "staff-key", map[string]any{
		"marvel_id": 100,
		"title":     "Duplicate",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	assert.Equal(t, []string{"A comic with that marvel_id already exists."}, errs["marvel_id"])
}

func TestUpdateComicRequiresStaff(t *testing.T) {
	repo := newFakeComicRepo()
	seedComic(t, repo, 100, "Amazing Fantasy #15")
	router := newTestRouter(repo)

	rec := doRequest(router, http.MethodPatch, "/comics/1", "member-key", map[string]any{"title": "New"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateComicPartial(t *testing.T) {
	repo := newFakeComicRepo()
	comic := seedComic(t, repo, 100, "Amazing Fantasy #15")
	router := newTestRouter(repo)

	rec := doRequest(router, http.MethodPatch, "/comics/1", "staff-key", map[string]any{"stock_qty": 9})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Comic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 9, updated.StockQty)
	assert.Equal(t, comic.Title, updated.Title, "omitted fields keep their value")
}

func TestDeleteComic(t *testing.T) {
	repo := newFakeComicRepo()
	seedComic(t, repo, 100, "Amazing Fantasy #15")
	router := newTestRouter(repo)

	// Any authenticated caller may delete, staff not required.
	rec := doRequest(router, http.MethodDelete, "/comics/1", "member-key", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/comics/1", "member-key", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
