package model

import "github.com/shopspring/decimal"

// FundUpdate is one externally-sourced fund record as delivered by a data
// provider. Required fields are scheme code, category and NAV; everything else
// is optional. NAV uses NullDecimal so a missing value is distinguishable from
// an explicit zero.
type FundUpdate struct {
	SchemeName        string                     `json:"scheme_name"`
	AMC               string                     `json:"amc"`
	SchemeCode        string                     `json:"scheme_code"`
	NAV               decimal.NullDecimal        `json:"nav"`
	Category          FundCategory               `json:"category"`
	SubCategory       *string                    `json:"sub_category"`
	ExpenseRatio      decimal.Decimal            `json:"expense_ratio"`
	AUM               decimal.Decimal            `json:"aum"`
	RiskRating        RiskRating                 `json:"risk_rating"`
	InceptionDate     Date                       `json:"inception_date"`
	FundManager       *string                    `json:"fund_manager"`
	MinSIPAmount      decimal.NullDecimal        `json:"min_sip_amount"`
	MinLumpsum        decimal.NullDecimal        `json:"min_lumpsum"`
	ExitLoad          *string                    `json:"exit_load"`
	Returns           map[string]decimal.Decimal `json:"returns"`
	StandardDeviation decimal.NullDecimal        `json:"standard_deviation"`
	SharpeRatio       decimal.NullDecimal        `json:"sharpe_ratio"`
	TreynorRatio      decimal.NullDecimal        `json:"treynor_ratio"`
	Beta              decimal.NullDecimal        `json:"beta"`
	Alpha             decimal.NullDecimal        `json:"alpha"`
	CAGR              decimal.NullDecimal        `json:"cagr"`
	MaxDrawdown       decimal.NullDecimal        `json:"max_drawdown"`
}

// Fund converts the incoming record into a stored Fund with the given ID.
// The record is treated as current truth: every mutable field is taken from
// it. The AUM bucket is always derived from the AUM value, never trusted from
// the provider, and a missing risk rating defaults to Moderate.
func (u FundUpdate) Fund(id string) Fund {
	risk := u.RiskRating
	if risk == 0 {
		risk = RiskModerate
	}

	return Fund{
		ID:                id,
		SchemeName:        u.SchemeName,
		AMC:               u.AMC,
		SchemeCode:        u.SchemeCode,
		NAV:               u.NAV.Decimal,
		Category:          u.Category,
		SubCategory:       u.SubCategory,
		ExpenseRatio:      u.ExpenseRatio,
		AUM:               u.AUM,
		AUMCategory:       AUMCategoryFor(u.AUM),
		RiskRating:        risk,
		InceptionDate:     u.InceptionDate,
		FundManager:       u.FundManager,
		MinSIPAmount:      u.MinSIPAmount,
		MinLumpsum:        u.MinLumpsum,
		ExitLoad:          u.ExitLoad,
		StandardDeviation: u.StandardDeviation,
		SharpeRatio:       u.SharpeRatio,
		TreynorRatio:      u.TreynorRatio,
		Beta:              u.Beta,
		Alpha:             u.Alpha,
		CAGR:              u.CAGR,
		MaxDrawdown:       u.MaxDrawdown,
	}
}

// SyncResult reports the outcome of one synchronization batch. The batch as a
// whole is not atomic: individual funds may fail while the rest commit, and
// every failure is surfaced here rather than silently dropped.
type SyncResult struct {
	FundsCreated     int      `json:"funds_created"`
	FundsUpdated     int      `json:"funds_updated"`
	ReturnsProcessed int      `json:"returns_processed"`
	RecordsSkipped   int      `json:"records_skipped"`
	Errors           []string `json:"errors,omitempty"`
}
