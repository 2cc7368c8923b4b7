package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearfolio/fund-catalog-backend/internal/model"
)

func TestAUMCategoryFor(t *testing.T) {
	tests := []struct {
		aum      string
		expected model.AUMCategory
	}{
		{"0", model.AUMSmall},
		{"999.99", model.AUMSmall},
		{"1000", model.AUMMid},
		{"9999.99", model.AUMMid},
		{"10000", model.AUMLarge},
		{"250000", model.AUMLarge},
	}

	for _, tt := range tests {
		got := model.AUMCategoryFor(decimal.RequireFromString(tt.aum))
		if got != tt.expected {
			t.Errorf("AUMCategoryFor(%s) = %s, expected %s", tt.aum, got, tt.expected)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	d := model.NewDate(time.Date(2013, 1, 15, 17, 30, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Failed to marshal date: %v", err)
	}
	if string(data) != `"2013-01-15"` {
		t.Errorf("Expected \"2013-01-15\", got %s", data)
	}

	var parsed model.Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal date: %v", err)
	}
	if parsed.String() != "2013-01-15" {
		t.Errorf("Expected 2013-01-15 after round trip, got %s", parsed.String())
	}

	if err := json.Unmarshal([]byte(`"15/01/2013"`), &parsed); err == nil {
		t.Error("Expected error for non-ISO date format")
	}
}

func TestFundUpdate_Fund(t *testing.T) {
	t.Run("derives aum category and keeps fields", func(t *testing.T) {
		u := model.FundUpdate{
			SchemeName: "Acme Liquid Fund",
			AMC:        "Acme Mutual",
			SchemeCode: "ACM009",
			NAV:        decimal.NullDecimal{Decimal: dec("1045.2210"), Valid: true},
			Category:   model.CategoryDebt,
			AUM:        dec("15000"),
			RiskRating: model.RiskLow,
		}

		f := u.Fund("some-id")
		if f.ID != "some-id" {
			t.Errorf("Expected ID some-id, got %s", f.ID)
		}
		if f.AUMCategory != model.AUMLarge {
			t.Errorf("Expected Large bucket for AUM 15000, got %s", f.AUMCategory)
		}
		if f.RiskRating != model.RiskLow {
			t.Errorf("Expected risk rating 1, got %d", f.RiskRating)
		}
		if !f.NAV.Equal(dec("1045.2210")) {
			t.Errorf("Expected NAV 1045.2210, got %s", f.NAV)
		}
	})

	t.Run("missing risk rating defaults to moderate", func(t *testing.T) {
		u := model.FundUpdate{SchemeCode: "ACM010", AUM: dec("100")}
		f := u.Fund("id")
		if f.RiskRating != model.RiskModerate {
			t.Errorf("Expected default risk Moderate, got %d", f.RiskRating)
		}
	})
}

func TestFund_JSONHidesNothingButShapesNulls(t *testing.T) {
	f := model.Fund{
		ID:          "f1",
		SchemeName:  "Fund",
		AMC:         "AMC",
		SchemeCode:  "C1",
		NAV:         dec("10.5"),
		Category:    model.CategoryEquity,
		AUMCategory: model.AUMSmall,
		Returns:     map[string]decimal.Decimal{},
	}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Failed to marshal fund: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to unmarshal fund JSON: %v", err)
	}

	if string(raw["returns"]) != "{}" {
		t.Errorf("Expected empty returns object, got %s", raw["returns"])
	}
	if string(raw["sub_category"]) != "null" {
		t.Errorf("Expected null sub_category, got %s", raw["sub_category"])
	}
	if string(raw["sharpe_ratio"]) != "null" {
		t.Errorf("Expected null sharpe_ratio, got %s", raw["sharpe_ratio"])
	}
	if string(raw["nav"]) != `"10.5"` {
		t.Errorf("Expected quoted decimal nav, got %s", raw["nav"])
	}
}
