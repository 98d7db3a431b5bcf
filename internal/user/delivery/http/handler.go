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

	"github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/internal/user/usecase/command"
	"github.com/franvila/comic-commerce/internal/user/usecase/query"
	"github.com/franvila/comic-commerce/pkg/auth"
	"github.com/franvila/comic-commerce/pkg/logger"
	"github.com/franvila/comic-commerce/pkg/validation"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_service_requests_total",
			Help: "Total number of requests to user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_service_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	registeredUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "user_service_registered_users",
			Help: "Number of user accounts in the system",
		},
	)
)

// UserHandler handles HTTP requests for accounts, login and the
// filtered user listing
type UserHandler struct {
	registerHandler       *command.RegisterUserHandler
	loginHandler          *command.LoginUserHandler
	updateHandler         *command.UpdateUserHandler
	deleteHandler         *command.DeleteUserHandler
	changePasswordHandler *command.ChangePasswordHandler

	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler

	repo  domain.UserRepository
	guard *auth.Guard
}

// NewUserHandler creates a new user handler
func NewUserHandler(users domain.UserRepository, tokens domain.TokenRepository, policy auth.PasswordPolicy, guard *auth.Guard) *UserHandler {
	return &UserHandler{
		registerHandler:       command.NewRegisterUserHandler(users, policy),
		loginHandler:          command.NewLoginUserHandler(users, tokens),
		updateHandler:         command.NewUpdateUserHandler(users, policy),
		deleteHandler:         command.NewDeleteUserHandler(users),
		changePasswordHandler: command.NewChangePasswordHandler(users, policy),
		getUserHandler:        query.NewGetUserHandler(users),
		listHandler:           query.NewListUsersHandler(users),
		repo:                  users,
		guard:                 guard,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
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

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var cmd command.LoginUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.loginHandler.Handle(r.Context(), cmd)
	if err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			respondJSON(w, http.StatusBadRequest, errs)
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.WithContext(r.Context()).Info().
		Str("username", response.User.Username).
		Msg("user logged in")

	respondJSON(w, http.StatusOK, response)
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var cmd command.RegisterUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Staff status is administrator-granted, never self-assigned.
	if staff, _ := r.Context().Value(auth.IsStaffKey).(bool); !staff {
		cmd.IsStaff = false
	}

	user, err := h.registerHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	h.updateUserCountMetric(r.Context())
	respondJSON(w, http.StatusCreated, user)
}

// ListUsers handles GET /users with filter/search/ordering parameters
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter, errs := query.ParseFilter(r.URL.Query())
	if errs != nil {
		respondJSON(w, http.StatusBadRequest, errs)
		return
	}

	users, err := h.listHandler.Handle(r.Context(), query.ListUsersQuery{Filter: filter})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: id})
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var cmd command.UpdateUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	cmd.ID = id

	user, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: id}); err != nil {
		respondUsecaseError(w, err)
		return
	}

	h.updateUserCountMetric(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{"message": "the user was deleted successfully"})
}

// ChangePassword handles PUT /users/{id}/change-password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var cmd command.ChangePasswordCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	cmd.UserID = id

	profile, err := h.changePasswordHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	logger.WithContext(r.Context()).Info().
		Str("username", profile.Username).
		Msg("password updated")

	respondJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) updateUserCountMetric(ctx context.Context) {
	if count, err := h.repo.Count(ctx); err == nil {
		registeredUsers.Set(float64(count))
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return uint(id), true
}

// respondUsecaseError translates a usecase failure: validation maps are
// client errors, sentinel lookups are not-found, the rest are server faults.
func respondUsecaseError(w http.ResponseWriter, err error) {
	if errs, ok := validation.AsErrors(err); ok {
		respondJSON(w, http.StatusBadRequest, errs)
		return
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes installs the user routes with their per-operation
// authorization policies.
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	g := h.guard

	router.HandleFunc("/login",
		metricsMiddleware("/login", g.Require(auth.Open, h.Login))).Methods("POST")

	router.HandleFunc("/users",
		metricsMiddleware("/users", g.Require(auth.Open, h.Register))).Methods("POST")
	router.HandleFunc("/users",
		metricsMiddleware("/users", g.Require(auth.Authenticated, h.ListUsers))).Methods("GET")

	router.HandleFunc("/users/{id:[0-9]+}",
		metricsMiddleware("/users/{id}", g.Require(auth.Authenticated, h.GetUser))).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}",
		metricsMiddleware("/users/{id}", g.Require(auth.Authenticated, h.UpdateUser))).Methods("PUT")
	router.HandleFunc("/users/{id:[0-9]+}",
		metricsMiddleware("/users/{id}", g.Require(auth.Authenticated, h.DeleteUser))).Methods("DELETE")

	router.HandleFunc("/users/{id:[0-9]+}/change-password",
		metricsMiddleware("/users/{id}/change-password", g.Require(auth.Authenticated, h.ChangePassword))).Methods("PUT")
}
