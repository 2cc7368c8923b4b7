package handlers

import (
	"errors"
	"net/http"

	"github.com/clearfolio/fund-catalog-backend/internal/api/response"
	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/service"
)

// SyncHandler handles the on-demand data refresh endpoint.
type SyncHandler struct {
	syncService *service.SyncService
}

// NewSyncHandler creates a new SyncHandler with the provided service dependency.
func NewSyncHandler(syncService *service.SyncService) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// RefreshData handles GET /api/refresh-data.
//
// Runs a synchronization batch against the active data provider and returns
// the reconciliation counts. 400 when no provider is active, 502 when the
// upstream source is unreachable or returns an invalid payload.
func (h *SyncHandler) RefreshData(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncService.RefreshFromProvider(r.Context())

	var fetchErr *apperrors.ExternalFetchError
	switch {
	case errors.Is(err, apperrors.ErrNoActiveProvider):
		response.RespondError(w, http.StatusBadRequest, "no active data provider", "")
		return
	case errors.As(err, &fetchErr):
		response.RespondError(w, http.StatusBadGateway, "failed to fetch fund data", fetchErr.Error())
		return
	case err != nil:
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh fund data", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
