package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/foodgram/foodgram-backend/pkg/auth"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware requires a valid bearer token and resolves the acting
// user id into the request context.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := resolveClaims(w, r, true)
		if !ok {
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// OptionalAuthMiddleware resolves the acting user when a token is
// present; anonymous requests pass through with no identity.
func OptionalAuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		claims, ok := resolveClaims(w, r, true)
		if !ok {
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func resolveClaims(w http.ResponseWriter, r *http.Request, required bool) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if required {
			respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authorization header required"})
		}
		return nil, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid authorization header format"})
		return nil, false
	}
	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid token"})
		return nil, false
	}
	return claims, true
}

// currentUserID returns the resolved identity, zero for anonymous.
func currentUserID(r *http.Request) uint {
	if id, ok := r.Context().Value(userIDKey).(uint); ok {
		return id
	}
	return 0
}
