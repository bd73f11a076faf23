package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foodgram/foodgram-backend/pkg/apperr"
	"github.com/foodgram/foodgram-backend/pkg/logger"
)

// Response is a standard API response
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondDomainError maps domain errors onto HTTP statuses. Anything not
// in the taxonomy is a server fault and gets logged.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case apperr.IsValidation(err):
		var ve *apperr.ValidationError
		errors.As(err, &ve)
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Errors: ve.Fields})
	case apperr.IsConflict(err):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	case apperr.IsAuthRequired(err):
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: err.Error()})
	case apperr.IsForbidden(err):
		respondJSON(w, http.StatusForbidden, Response{Success: false, Error: err.Error()})
	case apperr.IsNotFound(err):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("Unhandled error")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal server error"})
	}
}
