// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clearfolio/fund-catalog-backend/internal/api/response"
	"github.com/clearfolio/fund-catalog-backend/internal/validation"
)

// ValidateProviderIDMiddleware validates that the providerId URL parameter is
// present and a valid UUID before the handler runs.
// Returns 400 Bad Request otherwise.
func ValidateProviderIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "providerId")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "valid provider ID is required", "")
			return
		}

		if err := validation.ValidateUUID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid provider ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
