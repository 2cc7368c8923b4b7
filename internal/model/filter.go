package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FundFilter is a typed filter specification for the fund query engine.
// Every field is optional; an absent field places no constraint. All active
// predicates are AND-combined, except the text search which OR-matches across
// the searchable text fields.
//
// FundIDs is an exclusive fast path: when the caller supplies an explicit list
// of scheme codes, the result is exactly those funds and every other predicate
// is ignored. This mirrors the long-standing behaviour of the original catalog
// endpoint and is deliberately kept as a documented precedence rule.
type FundFilter struct {
	FundIDs     []string
	Category    *FundCategory
	AMC         *string
	AUMCategory *AUMCategory
	SearchQuery *string

	// Minimum/maximum return thresholds keyed by period code. A minimum
	// threshold only matches funds that actually have a return row for that
	// period; funds without the period are excluded, not treated as zero.
	MinReturn map[string]decimal.Decimal
	MaxReturn map[string]decimal.Decimal

	MinExpenseRatio *decimal.Decimal
	MaxExpenseRatio *decimal.Decimal
	MinAUM          *decimal.Decimal
	MaxAUM          *decimal.Decimal
	MinRiskRating   *int
	MaxRiskRating   *int

	MinStandardDeviation *decimal.Decimal
	MaxStandardDeviation *decimal.Decimal
	MinSharpeRatio       *decimal.Decimal
	MaxSharpeRatio       *decimal.Decimal
	MinTreynorRatio      *decimal.Decimal
	MaxTreynorRatio      *decimal.Decimal
	MinBeta              *decimal.Decimal
	MaxBeta              *decimal.Decimal
	MinAlpha             *decimal.Decimal
	MaxAlpha             *decimal.Decimal
}

// Matches reports whether the fund satisfies the filter. The fund must carry
// its Returns mapping for period thresholds to be evaluated.
func (f *FundFilter) Matches(fund Fund) bool {
	if len(f.FundIDs) > 0 {
		for _, code := range f.FundIDs {
			if fund.SchemeCode == code {
				return true
			}
		}
		return false
	}

	if f.Category != nil && fund.Category != *f.Category {
		return false
	}
	if f.AMC != nil && fund.AMC != *f.AMC {
		return false
	}
	if f.AUMCategory != nil && fund.AUMCategory != *f.AUMCategory {
		return false
	}
	if f.SearchQuery != nil && !matchesSearch(fund, *f.SearchQuery) {
		return false
	}

	for period, threshold := range f.MinReturn {
		value, ok := fund.Returns[period]
		if !ok || value.LessThan(threshold) {
			return false
		}
	}
	for period, threshold := range f.MaxReturn {
		value, ok := fund.Returns[period]
		if !ok || value.GreaterThan(threshold) {
			return false
		}
	}

	if !within(fund.ExpenseRatio, f.MinExpenseRatio, f.MaxExpenseRatio) {
		return false
	}
	if !within(fund.AUM, f.MinAUM, f.MaxAUM) {
		return false
	}
	if f.MinRiskRating != nil && int(fund.RiskRating) < *f.MinRiskRating {
		return false
	}
	if f.MaxRiskRating != nil && int(fund.RiskRating) > *f.MaxRiskRating {
		return false
	}

	if !nullableWithin(fund.StandardDeviation, f.MinStandardDeviation, f.MaxStandardDeviation) {
		return false
	}
	if !nullableWithin(fund.SharpeRatio, f.MinSharpeRatio, f.MaxSharpeRatio) {
		return false
	}
	if !nullableWithin(fund.TreynorRatio, f.MinTreynorRatio, f.MaxTreynorRatio) {
		return false
	}
	if !nullableWithin(fund.Beta, f.MinBeta, f.MaxBeta) {
		return false
	}
	if !nullableWithin(fund.Alpha, f.MinAlpha, f.MaxAlpha) {
		return false
	}

	return true
}

// matchesSearch is a case-insensitive substring match over scheme name, AMC,
// category and sub-category.
func matchesSearch(fund Fund, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(fund.SchemeName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(fund.AMC), q) {
		return true
	}
	if strings.Contains(strings.ToLower(string(fund.Category)), q) {
		return true
	}
	if fund.SubCategory != nil && strings.Contains(strings.ToLower(*fund.SubCategory), q) {
		return true
	}
	return false
}

// within checks an inclusive bound pair; a nil bound is unbounded on that side.
func within(v decimal.Decimal, min, max *decimal.Decimal) bool {
	if min != nil && v.LessThan(*min) {
		return false
	}
	if max != nil && v.GreaterThan(*max) {
		return false
	}
	return true
}

// nullableWithin treats a null metric as failing any bound placed on it, but
// passing when the metric is unconstrained.
func nullableWithin(v decimal.NullDecimal, min, max *decimal.Decimal) bool {
	if min == nil && max == nil {
		return true
	}
	if !v.Valid {
		return false
	}
	return within(v.Decimal, min, max)
}
