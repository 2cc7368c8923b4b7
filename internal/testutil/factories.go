package testutil

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clearfolio/fund-catalog-backend/internal/model"
)

var fundSeq atomic.Int64

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	fund := testutil.NewFund().Build(t, db)
//
//	// Customized fund with return rows
//	fund := testutil.NewFund().
//	    WithSchemeName("Alpha Large Cap").
//	    WithCategory(model.CategoryEquity).
//	    WithReturn("1Y", "12.5").
//	    Build(t, db)
type FundBuilder struct {
	fund    model.Fund
	returns map[string]decimal.Decimal
}

// NewFund creates a FundBuilder with sensible defaults and a unique scheme code.
func NewFund() *FundBuilder {
	n := fundSeq.Add(1)
	return &FundBuilder{
		fund: model.Fund{
			ID:            uuid.NewString(),
			SchemeName:    fmt.Sprintf("Test Fund %d", n),
			AMC:           "Test AMC",
			SchemeCode:    fmt.Sprintf("TST%04d", n),
			NAV:           decimal.RequireFromString("100.0000"),
			Category:      model.CategoryEquity,
			ExpenseRatio:  decimal.RequireFromString("1.50"),
			AUM:           decimal.RequireFromString("500.00"),
			AUMCategory:   model.AUMSmall,
			RiskRating:    model.RiskModerate,
			InceptionDate: model.NewDate(time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		returns: map[string]decimal.Decimal{},
	}
}

// WithSchemeName sets a custom scheme name.
func (b *FundBuilder) WithSchemeName(name string) *FundBuilder {
	b.fund.SchemeName = name
	return b
}

// WithSchemeCode sets a custom scheme code.
func (b *FundBuilder) WithSchemeCode(code string) *FundBuilder {
	b.fund.SchemeCode = code
	return b
}

// WithAMC sets a custom AMC name.
func (b *FundBuilder) WithAMC(amc string) *FundBuilder {
	b.fund.AMC = amc
	return b
}

// WithCategory sets a custom category.
func (b *FundBuilder) WithCategory(category model.FundCategory) *FundBuilder {
	b.fund.Category = category
	return b
}

// WithSubCategory sets a custom sub-category.
func (b *FundBuilder) WithSubCategory(sub string) *FundBuilder {
	b.fund.SubCategory = &sub
	return b
}

// WithNAV sets a custom NAV from a decimal string.
func (b *FundBuilder) WithNAV(nav string) *FundBuilder {
	b.fund.NAV = decimal.RequireFromString(nav)
	return b
}

// WithExpenseRatio sets a custom expense ratio from a decimal string.
func (b *FundBuilder) WithExpenseRatio(ratio string) *FundBuilder {
	b.fund.ExpenseRatio = decimal.RequireFromString(ratio)
	return b
}

// WithAUM sets a custom AUM and derives its size bucket.
func (b *FundBuilder) WithAUM(aum string) *FundBuilder {
	b.fund.AUM = decimal.RequireFromString(aum)
	b.fund.AUMCategory = model.AUMCategoryFor(b.fund.AUM)
	return b
}

// WithRiskRating sets a custom risk rating.
func (b *FundBuilder) WithRiskRating(rating model.RiskRating) *FundBuilder {
	b.fund.RiskRating = rating
	return b
}

// WithStandardDeviation sets the standard deviation metric.
func (b *FundBuilder) WithStandardDeviation(v string) *FundBuilder {
	b.fund.StandardDeviation = nullDecimal(v)
	return b
}

// WithSharpeRatio sets the Sharpe ratio metric.
func (b *FundBuilder) WithSharpeRatio(v string) *FundBuilder {
	b.fund.SharpeRatio = nullDecimal(v)
	return b
}

// WithTreynorRatio sets the Treynor ratio metric.
func (b *FundBuilder) WithTreynorRatio(v string) *FundBuilder {
	b.fund.TreynorRatio = nullDecimal(v)
	return b
}

// WithBeta sets the beta metric.
func (b *FundBuilder) WithBeta(v string) *FundBuilder {
	b.fund.Beta = nullDecimal(v)
	return b
}

// WithAlpha sets the alpha metric.
func (b *FundBuilder) WithAlpha(v string) *FundBuilder {
	b.fund.Alpha = nullDecimal(v)
	return b
}

// WithReturn adds a (period, value) return row written at Build time.
func (b *FundBuilder) WithReturn(period, value string) *FundBuilder {
	b.returns[period] = decimal.RequireFromString(value)
	return b
}

// Build creates the fund and its return rows in the database and returns it
// with the Returns mapping populated.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.Fund {
	t.Helper()

	query := `
		INSERT INTO fund (
			id, scheme_name, amc, scheme_code, nav, category, sub_category,
			expense_ratio, aum, aum_category, risk_rating, inception_date,
			fund_manager, min_sip_amount, min_lumpsum, exit_load,
			standard_deviation, sharpe_ratio, treynor_ratio, beta, alpha,
			cagr, max_drawdown
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	f := b.fund
	_, err := db.Exec(query,
		f.ID, f.SchemeName, f.AMC, f.SchemeCode, f.NAV, f.Category, f.SubCategory,
		f.ExpenseRatio, f.AUM, f.AUMCategory, f.RiskRating, f.InceptionDate,
		f.FundManager, f.MinSIPAmount, f.MinLumpsum, f.ExitLoad,
		f.StandardDeviation, f.SharpeRatio, f.TreynorRatio, f.Beta, f.Alpha,
		f.CAGR, f.MaxDrawdown,
	)
	if err != nil {
		t.Fatalf("Failed to create test fund: %v", err)
	}

	f.Returns = map[string]decimal.Decimal{}
	asOf := model.NewDate(time.Now())
	for period, value := range b.returns {
		_, err := db.Exec(
			`INSERT INTO fund_return (id, fund_id, period, value, as_of_date) VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), f.ID, period, value, asOf,
		)
		if err != nil {
			t.Fatalf("Failed to create test return %s: %v", period, err)
		}
		f.Returns[period] = value
	}

	return f
}

func nullDecimal(v string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(v), Valid: true}
}

// ProviderBuilder provides a fluent interface for creating test data providers.
type ProviderBuilder struct {
	provider model.DataProvider
}

// NewProvider creates a ProviderBuilder with sensible defaults.
func NewProvider() *ProviderBuilder {
	return &ProviderBuilder{
		provider: model.DataProvider{
			ID:       uuid.NewString(),
			Name:     "Test Provider",
			APIKey:   "encrypted-test-token",
			BaseURL:  "https://provider.example.com/api",
			IsActive: true,
		},
	}
}

// WithName sets a custom name.
func (b *ProviderBuilder) WithName(name string) *ProviderBuilder {
	b.provider.Name = name
	return b
}

// WithAPIKey sets the stored (encrypted) API key token.
func (b *ProviderBuilder) WithAPIKey(token string) *ProviderBuilder {
	b.provider.APIKey = token
	return b
}

// WithBaseURL sets a custom base URL.
func (b *ProviderBuilder) WithBaseURL(url string) *ProviderBuilder {
	b.provider.BaseURL = url
	return b
}

// Inactive marks the provider as inactive.
func (b *ProviderBuilder) Inactive() *ProviderBuilder {
	b.provider.IsActive = false
	return b
}

// Build creates the provider in the database and returns it.
func (b *ProviderBuilder) Build(t *testing.T, db *sql.DB) model.DataProvider {
	t.Helper()

	p := b.provider
	_, err := db.Exec(
		`INSERT INTO data_provider (id, name, api_key, base_url, is_active) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.APIKey, p.BaseURL, p.IsActive,
	)
	if err != nil {
		t.Fatalf("Failed to create test provider: %v", err)
	}

	return p
}
