package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	comicdomain "github.com/franvila/comic-commerce/internal/comic/domain"
	userdomain "github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/internal/wishlist/domain"
	"github.com/franvila/comic-commerce/internal/wishlist/usecase/command"
	"github.com/franvila/comic-commerce/internal/wishlist/usecase/query"
	"github.com/franvila/comic-commerce/kafka"
	"github.com/franvila/comic-commerce/pkg/auth"
	"github.com/franvila/comic-commerce/pkg/logger"
	"github.com/franvila/comic-commerce/pkg/validation"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wishlist_service_requests_total",
			Help: "Total number of requests to wishlist endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wishlist_service_request_duration_seconds",
			Help:    "Duration of wishlist endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// WishlistHandler handles HTTP requests for wishlists and favorites
type WishlistHandler struct {
	createHandler    *command.CreateEntryHandler
	listHandler      *query.ListEntriesHandler
	favoritesHandler *query.UserFavoritesHandler

	publisher *kafka.Publisher
	guard     *auth.Guard
}

// NewWishlistHandler creates a new wishlist handler. publisher may be nil
// when event publishing is not configured.
func NewWishlistHandler(
	entries domain.WishlistRepository,
	users userdomain.UserRepository,
	comics comicdomain.ComicRepository,
	publisher *kafka.Publisher,
	guard *auth.Guard,
) *WishlistHandler {
	return &WishlistHandler{
		createHandler:    command.NewCreateEntryHandler(entries, users, comics),
		listHandler:      query.NewListEntriesHandler(entries),
		favoritesHandler: query.NewUserFavoritesHandler(entries, comics),
		publisher:        publisher,
		guard:            guard,
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

// ListEntries handles GET /wishlist
func (h *WishlistHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.listHandler.Handle(r.Context(), query.ListEntriesQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// CreateEntry handles POST /wishlist
func (h *WishlistHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateEntryCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			respondJSON(w, http.StatusBadRequest, errs)
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.publisher != nil {
		event := kafka.WishlistEntryAddedEvent{
			EntryID:  entry.ID,
			UserID:   entry.UserID,
			ComicID:  entry.ComicID,
			Favorite: entry.Favorite,
		}
		if err := h.publisher.PublishWishlistEntryAdded(r.Context(), event); err != nil {
			logger.WithContext(r.Context()).Warn().
				Err(err).
				Uint("entry_id", entry.ID).
				Msg("failed to publish wishlist entry added event")
		}
	}

	respondJSON(w, http.StatusCreated, entry)
}

// UserFavorites handles GET /users/{username}/favorites
func (h *WishlistHandler) UserFavorites(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	comics, err := h.favoritesHandler.Handle(r.Context(), query.UserFavoritesQuery{Username: username})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, comics)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes installs the wishlist routes. Listing the raw entries is
// staff-only; creating one is open so self-registered users can populate
// their wishlist before logging in elsewhere.
func (h *WishlistHandler) RegisterRoutes(router *mux.Router) {
	g := h.guard

	router.HandleFunc("/wishlist",
		metricsMiddleware("/wishlist", g.Require(auth.AdminAndAuthenticated, h.ListEntries))).Methods("GET")
	router.HandleFunc("/wishlist",
		metricsMiddleware("/wishlist", g.Require(auth.Open, h.CreateEntry))).Methods("POST")

	router.HandleFunc("/users/{username}/favorites",
		metricsMiddleware("/users/{username}/favorites", g.Require(auth.Authenticated, h.UserFavorites))).Methods("GET")
}
