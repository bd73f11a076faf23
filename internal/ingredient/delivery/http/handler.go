package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/foodgram/foodgram-backend/internal/ingredient/usecase/query"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
	"github.com/foodgram/foodgram-backend/pkg/logger"
)

// IngredientHandler handles HTTP requests for the ingredient catalog.
// Both endpoints are public and read only.
type IngredientHandler struct {
	searchHandler *query.SearchIngredientsHandler
	getHandler    *query.GetIngredientHandler

	redisClient *redis.Client // nil disables the search cache
	cacheConfig CacheConfig

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(
	searchHandler *query.SearchIngredientsHandler,
	getHandler *query.GetIngredientHandler,
	redisClient *redis.Client,
) *IngredientHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingredient_service_requests_total",
			Help: "Total number of requests to ingredient endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ingredient_service_request_duration_seconds",
			Help:    "Duration of ingredient endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &IngredientHandler{
		searchHandler:  searchHandler,
		getHandler:     getHandler,
		redisClient:    redisClient,
		cacheConfig:    DefaultCacheConfig(),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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

func (h *IngredientHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes wires the ingredient endpoints onto the router
func (h *IngredientHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/ingredients/",
		h.metricsMiddleware("/api/ingredients/",
			CacheMiddleware(h.redisClient, h.cacheConfig, h.SearchIngredients))).Methods("GET")
	router.HandleFunc("/api/ingredients/{id}/",
		h.metricsMiddleware("/api/ingredients/{id}/", h.GetIngredient)).Methods("GET")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// SearchIngredients handles GET /api/ingredients/?name=<prefix>
func (h *IngredientHandler) SearchIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.searchHandler.Handle(query.SearchIngredientsQuery{
		NamePrefix: r.URL.Query().Get("name"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to search ingredients")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}
	respondJSON(w, http.StatusOK, ingredients)
}

// GetIngredient handles GET /api/ingredients/{id}/
func (h *IngredientHandler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid ingredient ID"})
		return
	}

	ingredient, err := h.getHandler.Handle(query.GetIngredientQuery{ID: uint(id)})
	if err != nil {
		if apperr.IsNotFound(err) {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to get ingredient")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}
	respondJSON(w, http.StatusOK, ingredient)
}
