package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/foodgram/foodgram-backend/internal/user/usecase/command"
	"github.com/foodgram/foodgram-backend/internal/user/usecase/query"
)

// UserHandler handles HTTP requests for profiles, avatars and follows
type UserHandler struct {
	subscribeHandler    *command.SubscribeHandler
	unsubscribeHandler  *command.UnsubscribeHandler
	setAvatarHandler    *command.SetAvatarHandler
	deleteAvatarHandler *command.DeleteAvatarHandler

	profileHandler       *query.GetProfileHandler
	subscriptionsHandler *query.ListSubscriptionsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	subscribeHandler *command.SubscribeHandler,
	unsubscribeHandler *command.UnsubscribeHandler,
	setAvatarHandler *command.SetAvatarHandler,
	deleteAvatarHandler *command.DeleteAvatarHandler,
	profileHandler *query.GetProfileHandler,
	subscriptionsHandler *query.ListSubscriptionsHandler,
) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_service_requests_total",
			Help: "Total number of requests to user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_service_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &UserHandler{
		subscribeHandler:     subscribeHandler,
		unsubscribeHandler:   unsubscribeHandler,
		setAvatarHandler:     setAvatarHandler,
		deleteAvatarHandler:  deleteAvatarHandler,
		profileHandler:       profileHandler,
		subscriptionsHandler: subscriptionsHandler,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
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

func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes wires the user endpoints onto the router
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/users/subscriptions/",
		h.metricsMiddleware("/api/users/subscriptions/", AuthMiddleware(h.ListSubscriptions))).Methods("GET")
	router.HandleFunc("/api/users/me/avatar/",
		h.metricsMiddleware("/api/users/me/avatar/", AuthMiddleware(h.SetAvatar))).Methods("PUT")
	router.HandleFunc("/api/users/me/avatar/",
		h.metricsMiddleware("/api/users/me/avatar/", AuthMiddleware(h.DeleteAvatar))).Methods("DELETE")
	router.HandleFunc("/api/users/{id}/subscribe/",
		h.metricsMiddleware("/api/users/{id}/subscribe/", AuthMiddleware(h.Subscribe))).Methods("POST")
	router.HandleFunc("/api/users/{id}/subscribe/",
		h.metricsMiddleware("/api/users/{id}/subscribe/", AuthMiddleware(h.Unsubscribe))).Methods("DELETE")
	router.HandleFunc("/api/users/{id}/",
		h.metricsMiddleware("/api/users/{id}/", OptionalAuthMiddleware(h.GetProfile))).Methods("GET")
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetProfile handles GET /api/users/{id}/
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid user ID"})
		return
	}

	profile, err := h.profileHandler.Handle(query.GetProfileQuery{ViewerID: currentUserID(r), UserID: id})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: profile})
}

// ListSubscriptions handles GET /api/users/subscriptions/
func (h *UserHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	recipesLimit, _ := strconv.Atoi(r.URL.Query().Get("recipes_limit"))

	page, err := h.subscriptionsHandler.Handle(query.ListSubscriptionsQuery{
		UserID:       currentUserID(r),
		Limit:        limit,
		Offset:       offset,
		RecipesLimit: recipesLimit,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: page})
}

// Subscribe handles POST /api/users/{id}/subscribe/
func (h *UserHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid user ID"})
		return
	}

	recipesLimit, _ := strconv.Atoi(r.URL.Query().Get("recipes_limit"))
	author, err := h.subscribeHandler.Handle(command.SubscribeCommand{
		UserID:       currentUserID(r),
		AuthorID:     id,
		RecipesLimit: recipesLimit,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, Response{Success: true, Data: author})
}

// Unsubscribe handles DELETE /api/users/{id}/subscribe/
func (h *UserHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid user ID"})
		return
	}

	if err := h.unsubscribeHandler.Handle(command.UnsubscribeCommand{UserID: currentUserID(r), AuthorID: id}); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetAvatar handles PUT /api/users/me/avatar/
func (h *UserHandler) SetAvatar(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Avatar string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if err := h.setAvatarHandler.Handle(command.SetAvatarCommand{UserID: currentUserID(r), Avatar: body.Avatar}); err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: map[string]string{"avatar": body.Avatar}})
}

// DeleteAvatar handles DELETE /api/users/me/avatar/
func (h *UserHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteAvatarHandler.Handle(command.DeleteAvatarCommand{UserID: currentUserID(r)}); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
