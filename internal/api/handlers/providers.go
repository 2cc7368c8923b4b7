package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clearfolio/fund-catalog-backend/internal/api/request"
	"github.com/clearfolio/fund-catalog-backend/internal/api/response"
	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/service"
	"github.com/clearfolio/fund-catalog-backend/internal/validation"
)

// ProviderHandler handles HTTP requests for data provider management.
// Responses never include the api_key field.
type ProviderHandler struct {
	providerService *service.ProviderService
}

// NewProviderHandler creates a new ProviderHandler with the provided service dependency.
func NewProviderHandler(providerService *service.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
	}
}

// List handles GET /api/data-providers.
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	providers, err := h.providerService.ListProviders()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve data providers", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, providers)
}

// Get handles GET /api/data-providers/{providerId}.
func (h *ProviderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "providerId")

	provider, err := h.providerService.GetProvider(id)
	if errors.Is(err, apperrors.ErrProviderNotFound) {
		response.RespondError(w, http.StatusNotFound, "data provider not found", "")
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve data provider", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, provider)
}

// Create handles POST /api/data-providers.
func (h *ProviderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	provider, err := h.providerService.CreateProvider(r.Context(), req)
	var verr *validation.Error
	if errors.As(err, &verr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Fields)
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create data provider", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, provider)
}

// Update handles PUT /api/data-providers/{providerId}.
func (h *ProviderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "providerId")

	var req request.UpdateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	provider, err := h.providerService.UpdateProvider(r.Context(), id, req)
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Fields)
		return
	case errors.Is(err, apperrors.ErrProviderNotFound):
		response.RespondError(w, http.StatusNotFound, "data provider not found", "")
		return
	case err != nil:
		response.RespondError(w, http.StatusInternalServerError, "failed to update data provider", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, provider)
}

// Delete handles DELETE /api/data-providers/{providerId}.
func (h *ProviderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "providerId")

	err := h.providerService.DeleteProvider(r.Context(), id)
	if errors.Is(err, apperrors.ErrProviderNotFound) {
		response.RespondError(w, http.StatusNotFound, "data provider not found", "")
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to delete data provider", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
