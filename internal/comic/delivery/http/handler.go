package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/franvila/comic-commerce/internal/comic/domain"
	"github.com/franvila/comic-commerce/internal/comic/usecase/command"
	"github.com/franvila/comic-commerce/internal/comic/usecase/query"
	"github.com/franvila/comic-commerce/kafka"
	"github.com/franvila/comic-commerce/pkg/auth"
	"github.com/franvila/comic-commerce/pkg/logger"
	"github.com/franvila/comic-commerce/pkg/validation"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comic_service_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "comic_service_request_duration_seconds",
			Help:    "Duration of catalog endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	catalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "comic_service_catalog_size",
			Help: "Number of comics in the catalog",
		},
	)
)

// ComicHandler handles HTTP requests for the catalog
type ComicHandler struct {
	createHandler *command.CreateComicHandler
	updateHandler *command.UpdateComicHandler
	deleteHandler *command.DeleteComicHandler

	getHandler  *query.GetComicHandler
	listHandler *query.ListComicsHandler

	repo      domain.ComicRepository
	publisher *kafka.Publisher
	guard     *auth.Guard
}

// NewComicHandler creates a new comic handler. publisher may be nil when
// event publishing is not configured.
func NewComicHandler(repo domain.ComicRepository, publisher *kafka.Publisher, guard *auth.Guard) *ComicHandler {
	return &ComicHandler{
		createHandler: command.NewCreateComicHandler(repo),
		updateHandler: command.NewUpdateComicHandler(repo),
		deleteHandler: command.NewDeleteComicHandler(repo),
		getHandler:    query.NewGetComicHandler(repo),
		listHandler:   query.NewListComicsHandler(repo),
		repo:          repo,
		publisher:     publisher,
		guard:         guard,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListComics handles GET /comics
func (h *ComicHandler) ListComics(w http.ResponseWriter, r *http.Request) {
	comics, err := h.listHandler.Handle(r.Context(), query.ListComicsQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, comics)
}

// GetComic handles GET /comics/{id}. It answers with the catalog narrowed
// to the identifier, a list of zero or one comics, keeping the uniform
// list envelope of the collection endpoint.
func (h *ComicHandler) GetComic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	comics, err := h.getHandler.Handle(r.Context(), query.GetComicQuery{ID: id})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, comics)
}

// CreateComic handles POST /comics
func (h *ComicHandler) CreateComic(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateComicCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comic, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	if h.publisher != nil {
		event := kafka.ComicCreatedEvent{
			ComicID:  comic.ID,
			MarvelID: comic.MarvelID,
			Title:    comic.Title,
			Price:    comic.Price,
			StockQty: comic.StockQty,
		}
		if err := h.publisher.PublishComicCreated(r.Context(), event); err != nil {
			logger.WithContext(r.Context()).Warn().
				Err(err).
				Uint("comic_id", comic.ID).
				Msg("failed to publish comic created event")
		}
	}

	h.updateCatalogSizeMetric(r.Context())
	respondJSON(w, http.StatusCreated, comic)
}

// UpdateComic handles PUT and PATCH /comics/{id}
func (h *ComicHandler) UpdateComic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var cmd command.UpdateComicCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	cmd.ID = id

	comic, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, comic)
}

// DeleteComic handles DELETE /comics/{id}
func (h *ComicHandler) DeleteComic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteComicCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrComicNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.updateCatalogSizeMetric(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{"message": "the comic was deleted successfully"})
}

func (h *ComicHandler) updateCatalogSizeMetric(ctx context.Context) {
	if count, err := h.repo.Count(ctx); err == nil {
		catalogSize.Set(float64(count))
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid comic ID")
		return 0, false
	}
	return uint(id), true
}

func respondUsecaseError(w http.ResponseWriter, err error) {
	if errs, ok := validation.AsErrors(err); ok {
		respondJSON(w, http.StatusBadRequest, errs)
		return
	}
	if errors.Is(err, domain.ErrComicNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes installs the catalog routes. Note the deliberate
// asymmetry: creating and updating require staff, listing and deleting
// accept any valid token.
func (h *ComicHandler) RegisterRoutes(router *mux.Router) {
	g := h.guard

	router.HandleFunc("/comics",
		metricsMiddleware("/comics", g.Require(auth.AdminOrAuthenticated, h.ListComics))).Methods("GET")
	router.HandleFunc("/comics",
		metricsMiddleware("/comics", g.Require(auth.AdminAndAuthenticated, h.CreateComic))).Methods("POST")

	router.HandleFunc("/comics/{id}",
		metricsMiddleware("/comics/{id}", g.Require(auth.AdminOrAuthenticated, h.GetComic))).Methods("GET")
	router.HandleFunc("/comics/{id}",
		metricsMiddleware("/comics/{id}", g.Require(auth.AdminAndAuthenticated, h.UpdateComic))).Methods("PUT", "PATCH")
	router.HandleFunc("/comics/{id}",
		metricsMiddleware("/comics/{id}", g.Require(auth.AdminOrAuthenticated, h.DeleteComic))).Methods("DELETE")
}
