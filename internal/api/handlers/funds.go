package handlers

import (
	"net/http"

	"github.com/clearfolio/fund-catalog-backend/internal/api/request"
	"github.com/clearfolio/fund-catalog-backend/internal/api/response"
	"github.com/clearfolio/fund-catalog-backend/internal/service"
)

// FundHandler handles HTTP requests for the read-oriented fund endpoints.
// It parses and validates query parameters and delegates to the FundService.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// Funds handles GET /api/funds.
//
// All filter parameters are optional; an empty query returns the full
// catalog. A malformed parameter value (non-numeric number, unknown enum) is
// a 400, distinct from an absent parameter which simply places no constraint.
func (h *FundHandler) Funds(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseFundFilter(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	funds, err := h.fundService.QueryFunds(*filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve funds", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, funds)
}

// TopFunds handles GET /api/top-funds.
//
// Query parameters: period (default "1Y"), category (optional), limit
// (default 10, must be a positive integer).
func (h *FundHandler) TopFunds(w http.ResponseWriter, r *http.Request) {
	period, category, limit, err := request.ParseTopFundsQuery(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid ranking parameters", err.Error())
		return
	}

	funds, err := h.fundService.TopFunds(period, category, limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve top funds", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, funds)
}

// AMCs handles GET /api/amcs, the sorted list of distinct AMC names.
func (h *FundHandler) AMCs(w http.ResponseWriter, r *http.Request) {
	amcs, err := h.fundService.AMCs()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve AMCs", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, amcs)
}

// AdvancedMetricsStats handles GET /api/advanced-metrics-stats.
func (h *FundHandler) AdvancedMetricsStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.fundService.AdvancedMetricsStats()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve metric statistics", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, stats)
}
