package request_test

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clearfolio/fund-catalog-backend/internal/api/request"
	"github.com/clearfolio/fund-catalog-backend/internal/model"
)

func TestParseFundFilter(t *testing.T) {
	t.Run("empty query yields an empty filter", func(t *testing.T) {
		filter, err := request.ParseFundFilter(url.Values{})
		if err != nil {
			t.Fatalf("ParseFundFilter failed: %v", err)
		}
		if filter.Category != nil || filter.AMC != nil || len(filter.FundIDs) != 0 ||
			filter.MinReturn != nil || filter.MinExpenseRatio != nil || filter.MinRiskRating != nil {
			t.Errorf("Expected empty filter, got %+v", filter)
		}
	})

	t.Run("parses all parameter families", func(t *testing.T) {
		q := url.Values{}
		q.Set("fundIds", "AAA, BBB, ,CCC")
		q.Set("category", "Hybrid")
		q.Set("amc", "Acme Mutual")
		q.Set("aumCategory", "Large")
		q.Set("searchQuery", "growth")
		q.Set("minReturn1Y", "10.5")
		q.Set("maxReturn3Y", "40")
		q.Set("minExpenseRatio", "0.5")
		q.Set("maxAUM", "50000")
		q.Set("minRiskRating", "2")
		q.Set("maxRiskRating", "4")
		q.Set("minSharpeRatio", "1.1")
		q.Set("maxBeta", "1.3")

		filter, err := request.ParseFundFilter(q)
		if err != nil {
			t.Fatalf("ParseFundFilter failed: %v", err)
		}

		if len(filter.FundIDs) != 3 || filter.FundIDs[0] != "AAA" || filter.FundIDs[2] != "CCC" {
			t.Errorf("Expected trimmed fund ids [AAA BBB CCC], got %v", filter.FundIDs)
		}
		if filter.Category == nil || *filter.Category != model.CategoryHybrid {
			t.Errorf("Expected Hybrid category, got %v", filter.Category)
		}
		if filter.AMC == nil || *filter.AMC != "Acme Mutual" {
			t.Errorf("Expected AMC filter, got %v", filter.AMC)
		}
		if filter.AUMCategory == nil || *filter.AUMCategory != model.AUMLarge {
			t.Errorf("Expected Large AUM bucket, got %v", filter.AUMCategory)
		}
		if filter.SearchQuery == nil || *filter.SearchQuery != "growth" {
			t.Errorf("Expected search query, got %v", filter.SearchQuery)
		}
		if !filter.MinReturn["1Y"].Equal(decimal.RequireFromString("10.5")) {
			t.Errorf("Expected minReturn1Y 10.5, got %v", filter.MinReturn)
		}
		if !filter.MaxReturn["3Y"].Equal(decimal.RequireFromString("40")) {
			t.Errorf("Expected maxReturn3Y 40, got %v", filter.MaxReturn)
		}
		if filter.MinExpenseRatio == nil || filter.MaxAUM == nil {
			t.Error("Expected expense ratio and AUM bounds")
		}
		if filter.MinRiskRating == nil || *filter.MinRiskRating != 2 {
			t.Errorf("Expected minRiskRating 2, got %v", filter.MinRiskRating)
		}
		if filter.MaxRiskRating == nil || *filter.MaxRiskRating != 4 {
			t.Errorf("Expected maxRiskRating 4, got %v", filter.MaxRiskRating)
		}
		if filter.MinSharpeRatio == nil || filter.MaxBeta == nil {
			t.Error("Expected advanced metric bounds")
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		cases := map[string]string{
			"category":      "Crypto",
			"aumCategory":   "Gigantic",
			"minReturn1Y":   "plenty",
			"maxAUM":        "1e++9",
			"minRiskRating": "low",
		}
		for param, value := range cases {
			q := url.Values{}
			q.Set(param, value)
			if _, err := request.ParseFundFilter(q); err == nil {
				t.Errorf("Expected error for %s=%s", param, value)
			}
		}
	})
}

func TestParseTopFundsQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		period, category, limit, err := request.ParseTopFundsQuery(url.Values{})
		if err != nil {
			t.Fatalf("ParseTopFundsQuery failed: %v", err)
		}
		if period != "1Y" {
			t.Errorf("Expected default period 1Y, got %s", period)
		}
		if category != nil {
			t.Errorf("Expected no category, got %v", category)
		}
		if limit != 10 {
			t.Errorf("Expected default limit 10, got %d", limit)
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		q := url.Values{}
		q.Set("period", "5Y")
		q.Set("category", "Debt")
		q.Set("limit", "3")

		period, category, limit, err := request.ParseTopFundsQuery(q)
		if err != nil {
			t.Fatalf("ParseTopFundsQuery failed: %v", err)
		}
		if period != "5Y" || limit != 3 {
			t.Errorf("Expected period 5Y limit 3, got %s %d", period, limit)
		}
		if category == nil || *category != model.CategoryDebt {
			t.Errorf("Expected Debt category, got %v", category)
		}
	})

	t.Run("invalid limit and category", func(t *testing.T) {
		for _, kv := range []struct{ k, v string }{
			{"limit", "0"},
			{"limit", "-5"},
			{"limit", "ten"},
			{"category", "Crypto"},
		} {
			q := url.Values{}
			q.Set(kv.k, kv.v)
			if _, _, _, err := request.ParseTopFundsQuery(q); err == nil {
				t.Errorf("Expected error for %s=%s", kv.k, kv.v)
			}
		}
	})
}
