package handlers_test

import (
	"github.com/shopspring/decimal"

	"github.com/clearfolio/fund-catalog-backend/internal/api/request"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProviderRequest() request.CreateProviderRequest {
	return request.CreateProviderRequest{
		Name:    "Test Feed",
		APIKey:  "test-key",
		BaseURL: "https://feed.example.com/api",
	}
}
