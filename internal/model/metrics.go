package model

import "github.com/shopspring/decimal"

// AdvancedMetricsStats carries min/max/average per advanced metric across the
// catalog. A nil field means the metric had zero non-null observations and is
// serialized as JSON null, never as zero.
type AdvancedMetricsStats struct {
	MinStandardDeviation *decimal.Decimal `json:"min_standard_deviation"`
	MaxStandardDeviation *decimal.Decimal `json:"max_standard_deviation"`
	AvgStandardDeviation *decimal.Decimal `json:"avg_standard_deviation"`
	MinSharpeRatio       *decimal.Decimal `json:"min_sharpe_ratio"`
	MaxSharpeRatio       *decimal.Decimal `json:"max_sharpe_ratio"`
	AvgSharpeRatio       *decimal.Decimal `json:"avg_sharpe_ratio"`
	MinTreynorRatio      *decimal.Decimal `json:"min_treynor_ratio"`
	MaxTreynorRatio      *decimal.Decimal `json:"max_treynor_ratio"`
	AvgTreynorRatio      *decimal.Decimal `json:"avg_treynor_ratio"`
	MinBeta              *decimal.Decimal `json:"min_beta"`
	MaxBeta              *decimal.Decimal `json:"max_beta"`
	AvgBeta              *decimal.Decimal `json:"avg_beta"`
	MinAlpha             *decimal.Decimal `json:"min_alpha"`
	MaxAlpha             *decimal.Decimal `json:"max_alpha"`
	AvgAlpha             *decimal.Decimal `json:"avg_alpha"`
}
