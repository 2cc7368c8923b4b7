package validation

import (
	"strings"

	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/model"
)

// ValidateFundUpdate checks an incoming fund record for the fields the
// synchronizer requires. A failing record is skipped and counted by the
// caller; it never aborts the batch.
func ValidateFundUpdate(rec model.FundUpdate) *apperrors.MalformedRecordError {
	code := strings.TrimSpace(rec.SchemeCode)
	if code == "" {
		return &apperrors.MalformedRecordError{Field: "scheme_code"}
	}
	if rec.Category == "" || !model.ValidFundCategory[rec.Category] {
		return &apperrors.MalformedRecordError{SchemeCode: code, Field: "category"}
	}
	if !rec.NAV.Valid {
		return &apperrors.MalformedRecordError{SchemeCode: code, Field: "nav"}
	}
	// Zero means absent and defaults to Moderate during conversion; anything
	// else must sit on the 1-5 scale.
	if rec.RiskRating != 0 && !rec.RiskRating.Valid() {
		return &apperrors.MalformedRecordError{SchemeCode: code, Field: "risk_rating"}
	}
	return nil
}
