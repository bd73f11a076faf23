package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	"github.com/foodgram/foodgram-backend/internal/recipe/usecase/command"
	"github.com/foodgram/foodgram-backend/internal/recipe/usecase/query"
	"github.com/foodgram/foodgram-backend/kafka"
	"github.com/foodgram/foodgram-backend/pkg/logger"
)

// EventPublisher publishes recipe lifecycle events to the event bus.
// Satisfied by *kafka.Publisher.
type EventPublisher interface {
	PublishRecipeEvent(ctx context.Context, eventType string, event kafka.RecipeEvent) error
}

// RecipeHandler handles HTTP requests for recipes using CQRS pattern
type RecipeHandler struct {
	// Command handlers
	createHandler  *command.CreateRecipeHandler
	updateHandler  *command.UpdateRecipeHandler
	deleteHandler  *command.DeleteRecipeHandler
	addFavorite    *command.AddFavoriteHandler
	removeFavorite *command.RemoveFavoriteHandler
	addToCart      *command.AddToCartHandler
	removeFromCart *command.RemoveFromCartHandler

	// Query handlers
	getHandler          *query.GetRecipeHandler
	listHandler         *query.ListRecipesHandler
	shoppingListHandler *query.BuildShoppingListHandler
	getLinkHandler      *query.GetLinkHandler

	repo      domain.RecipeRepository
	publisher EventPublisher // nil when no broker is configured

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalRecipes   prometheus.Gauge
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(
	createHandler *command.CreateRecipeHandler,
	updateHandler *command.UpdateRecipeHandler,
	deleteHandler *command.DeleteRecipeHandler,
	addFavorite *command.AddFavoriteHandler,
	removeFavorite *command.RemoveFavoriteHandler,
	addToCart *command.AddToCartHandler,
	removeFromCart *command.RemoveFromCartHandler,
	getHandler *query.GetRecipeHandler,
	listHandler *query.ListRecipesHandler,
	shoppingListHandler *query.BuildShoppingListHandler,
	getLinkHandler *query.GetLinkHandler,
	repo domain.RecipeRepository,
	publisher EventPublisher,
) *RecipeHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_service_requests_total",
			Help: "Total number of requests to recipe endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_service_request_duration_seconds",
			Help:    "Duration of recipe endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalRecipes := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipe_service_total_recipes",
			Help: "Total number of published recipes",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalRecipes)

	return &RecipeHandler{
		createHandler:       createHandler,
		updateHandler:       updateHandler,
		deleteHandler:       deleteHandler,
		addFavorite:         addFavorite,
		removeFavorite:      removeFavorite,
		addToCart:           addToCart,
		removeFromCart:      removeFromCart,
		getHandler:          getHandler,
		listHandler:         listHandler,
		shoppingListHandler: shoppingListHandler,
		getLinkHandler:      getLinkHandler,
		repo:                repo,
		publisher:           publisher,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		totalRecipes:        totalRecipes,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *RecipeHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes wires the recipe endpoints onto the router
func (h *RecipeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/recipes/download_shopping_cart/",
		h.metricsMiddleware("/api/recipes/download_shopping_cart/", AuthMiddleware(h.DownloadShoppingCart))).Methods("GET")

	router.HandleFunc("/api/recipes/",
		h.metricsMiddleware("/api/recipes/", OptionalAuthMiddleware(h.ListRecipes))).Methods("GET")
	router.HandleFunc("/api/recipes/",
		h.metricsMiddleware("/api/recipes/", AuthMiddleware(h.CreateRecipe))).Methods("POST")
	router.HandleFunc("/api/recipes/{id}/",
		h.metricsMiddleware("/api/recipes/{id}/", OptionalAuthMiddleware(h.GetRecipe))).Methods("GET")
	router.HandleFunc("/api/recipes/{id}/",
		h.metricsMiddleware("/api/recipes/{id}/", AuthMiddleware(h.UpdateRecipe))).Methods("PUT", "PATCH")
	router.HandleFunc("/api/recipes/{id}/",
		h.metricsMiddleware("/api/recipes/{id}/", AuthMiddleware(h.DeleteRecipe))).Methods("DELETE")

	router.HandleFunc("/api/recipes/{id}/favorite/",
		h.metricsMiddleware("/api/recipes/{id}/favorite/", AuthMiddleware(h.AddFavorite))).Methods("POST")
	router.HandleFunc("/api/recipes/{id}/favorite/",
		h.metricsMiddleware("/api/recipes/{id}/favorite/", AuthMiddleware(h.RemoveFavorite))).Methods("DELETE")
	router.HandleFunc("/api/recipes/{id}/shopping_cart/",
		h.metricsMiddleware("/api/recipes/{id}/shopping_cart/", AuthMiddleware(h.AddToCart))).Methods("POST")
	router.HandleFunc("/api/recipes/{id}/shopping_cart/",
		h.metricsMiddleware("/api/recipes/{id}/shopping_cart/", AuthMiddleware(h.RemoveFromCart))).Methods("DELETE")

	router.HandleFunc("/api/recipes/{id}/get-link/",
		h.metricsMiddleware("/api/recipes/{id}/get-link/", h.GetLink)).Methods("GET")

	router.HandleFunc("/s/{id}/", h.ShortLinkRedirect).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *RecipeHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Foodgram service is healthy",
		})
	}).Methods("GET")
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// CreateRecipe handles POST /api/recipes/
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var payload command.RecipePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	userID := currentUserID(r)
	recipe, err := h.createHandler.Handle(command.CreateRecipeCommand{AuthorID: userID, Payload: payload})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.publishEvent(r, kafka.EventTypeRecipePublished, recipe)
	h.updateRecipesMetric()

	detail, err := h.getHandler.Handle(query.GetRecipeQuery{ViewerID: userID, RecipeID: recipe.ID})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, Response{Success: true, Data: detail})
}

// GetRecipe handles GET /api/recipes/{id}/
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid recipe ID"})
		return
	}

	detail, err := h.getHandler.Handle(query.GetRecipeQuery{ViewerID: currentUserID(r), RecipeID: id})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: detail})
}

// ListRecipes handles GET /api/recipes/
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	authorID, _ := strconv.ParseUint(r.URL.Query().Get("author"), 10, 32)

	filter := domain.ListFilter{
		ViewerID:  currentUserID(r),
		AuthorID:  uint(authorID),
		Favorited: boolParam(r, "is_favorited"),
		InCart:    boolParam(r, "is_in_shopping_cart"),
		Limit:     limit,
		Offset:    offset,
	}

	page, err := h.listHandler.Handle(query.ListRecipesQuery{Filter: filter})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"recipes": page.Recipes,
			"total":   page.Total,
			"limit":   filter.Limit,
			"offset":  filter.Offset,
		},
	})
}

func boolParam(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v := raw == "1" || raw == "true"
	return &v
}

// UpdateRecipe handles PUT/PATCH /api/recipes/{id}/
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid recipe ID"})
		return
	}

	var payload command.RecipePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	userID := currentUserID(r)
	cmd := command.UpdateRecipeCommand{
		ActorID:  userID,
		RecipeID: id,
		Payload:  payload,
		Partial:  r.Method == http.MethodPatch,
	}
	if _, err := h.updateHandler.Handle(cmd); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	detail, err := h.getHandler.Handle(query.GetRecipeQuery{ViewerID: userID, RecipeID: id})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: detail})
}

// DeleteRecipe handles DELETE /api/recipes/{id}/
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid recipe ID"})
		return
	}

	// Snapshot the row first so the event still carries the name.
	recipe, findErr := h.repo.FindByID(id)

	if err := h.deleteHandler.Handle(command.DeleteRecipeCommand{ActorID: currentUserID(r), RecipeID: id}); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	if findErr == nil {
		h.publishEvent(r, kafka.EventTypeRecipeDeleted, recipe)
	}

	h.updateRecipesMetric()
	w.WriteHeader(http.StatusNoContent)
}

// AddFavorite handles POST /api/recipes/{id}/favorite/
func (h *RecipeHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.addToggle(w, r, func(cmd command.ToggleCommand) (*domain.RecipeShort, error) {
		return h.addFavorite.Handle(cmd)
	})
}

// RemoveFavorite handles DELETE /api/recipes/{id}/favorite/
func (h *RecipeHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.removeToggle(w, r, func(cmd command.ToggleCommand) error {
		return h.removeFavorite.Handle(cmd)
	})
}

// AddToCart handles POST /api/recipes/{id}/shopping_cart/
func (h *RecipeHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.addToggle(w, r, func(cmd command.ToggleCommand) (*domain.RecipeShort, error) {
		return h.addToCart.Handle(cmd)
	})
}

// RemoveFromCart handles DELETE /api/recipes/{id}/shopping_cart/
func (h *RecipeHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.removeToggle(w, r, func(cmd command.ToggleCommand) error {
		return h.removeFromCart.Handle(cmd)
	})
}

func (h *RecipeHandler) addToggle(w http.ResponseWriter, r *http.Request, handle func(command.ToggleCommand) (*domain.RecipeShort, error)) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid recipe ID"})
		return
	}
	short, err := handle(command.ToggleCommand{UserID: currentUserID(r), RecipeID: id})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, Response{Success: true, Data: short})
}

func (h *RecipeHandler) removeToggle(w http.ResponseWriter, r *http.Request, handle func(command.ToggleCommand) error) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid recipe ID"})
		return
	}
	if err := handle(command.ToggleCommand{UserID: currentUserID(r), RecipeID: id}); err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DownloadShoppingCart handles GET /api/recipes/download_shopping_cart/
func (h *RecipeHandler) DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	report, err := h.shoppingListHandler.Handle(query.BuildShoppingListQuery{UserID: currentUserID(r)})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+query.ShoppingListFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(report)); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to write shopping list")
	}
}

// GetLink handles GET /api/recipes/{id}/get-link/
func (h *RecipeHandler) GetLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid recipe ID"})
		return
	}

	path, err := h.getLinkHandler.Handle(query.GetLinkQuery{RecipeID: id})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"short-link": scheme + "://" + r.Host + path,
	})
}

func (h *RecipeHandler) publishEvent(r *http.Request, eventType string, recipe *domain.Recipe) {
	if h.publisher == nil {
		return
	}
	event := kafka.RecipeEvent{
		RecipeID: recipe.ID,
		AuthorID: recipe.AuthorID,
		Name:     recipe.Name,
	}
	if err := h.publisher.PublishRecipeEvent(r.Context(), eventType, event); err != nil {
		logger.Error(r.Context()).Err(err).Uint("recipe_id", recipe.ID).Msg("Failed to publish recipe event")
	}
}

func (h *RecipeHandler) updateRecipesMetric() {
	if count, err := h.repo.CountFiltered(domain.ListFilter{}); err == nil {
		h.totalRecipes.Set(float64(count))
	}
}
