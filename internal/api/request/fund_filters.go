package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/clearfolio/fund-catalog-backend/internal/model"
)

// returnParams maps the return-threshold query parameters to their period
// codes. Adding a new horizon is one entry here; the Period type itself stays
// an open string.
var minReturnParams = map[string]string{
	"minReturn1Y": "1Y",
	"minReturn3Y": "3Y",
	"minReturn5Y": "5Y",
}

var maxReturnParams = map[string]string{
	"maxReturn1Y": "1Y",
	"maxReturn3Y": "3Y",
	"maxReturn5Y": "5Y",
}

// ParseFundFilter extracts and validates fund filters from query parameters.
// All parameters are optional; an absent parameter places no constraint. A
// present but unparseable value is a client error, never silently ignored.
//
//nolint:gocyclo // One branch per filter parameter; splitting would obscure the mapping
func ParseFundFilter(q url.Values) (*model.FundFilter, error) {
	filter := &model.FundFilter{}

	if v := q.Get("fundIds"); v != "" {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				filter.FundIDs = append(filter.FundIDs, id)
			}
		}
	}

	if v := q.Get("category"); v != "" {
		category := model.FundCategory(v)
		if !model.ValidFundCategory[category] {
			return nil, fmt.Errorf("invalid category: %s", v)
		}
		filter.Category = &category
	}

	if v := q.Get("amc"); v != "" {
		filter.AMC = &v
	}

	if v := q.Get("searchQuery"); v != "" {
		filter.SearchQuery = &v
	}

	if v := q.Get("aumCategory"); v != "" {
		aumCategory := model.AUMCategory(v)
		if !model.ValidAUMCategory[aumCategory] {
			return nil, fmt.Errorf("invalid aumCategory: %s", v)
		}
		filter.AUMCategory = &aumCategory
	}

	for param, period := range minReturnParams {
		value, err := decimalParam(q, param)
		if err != nil {
			return nil, err
		}
		if value != nil {
			if filter.MinReturn == nil {
				filter.MinReturn = make(map[string]decimal.Decimal)
			}
			filter.MinReturn[period] = *value
		}
	}
	for param, period := range maxReturnParams {
		value, err := decimalParam(q, param)
		if err != nil {
			return nil, err
		}
		if value != nil {
			if filter.MaxReturn == nil {
				filter.MaxReturn = make(map[string]decimal.Decimal)
			}
			filter.MaxReturn[period] = *value
		}
	}

	var err error
	if filter.MinExpenseRatio, err = decimalParam(q, "minExpenseRatio"); err != nil {
		return nil, err
	}
	if filter.MaxExpenseRatio, err = decimalParam(q, "maxExpenseRatio"); err != nil {
		return nil, err
	}
	if filter.MinAUM, err = decimalParam(q, "minAUM"); err != nil {
		return nil, err
	}
	if filter.MaxAUM, err = decimalParam(q, "maxAUM"); err != nil {
		return nil, err
	}
	if filter.MinRiskRating, err = intParam(q, "minRiskRating"); err != nil {
		return nil, err
	}
	if filter.MaxRiskRating, err = intParam(q, "maxRiskRating"); err != nil {
		return nil, err
	}
	if filter.MinStandardDeviation, err = decimalParam(q, "minStandardDeviation"); err != nil {
		return nil, err
	}
	if filter.MaxStandardDeviation, err = decimalParam(q, "maxStandardDeviation"); err != nil {
		return nil, err
	}
	if filter.MinSharpeRatio, err = decimalParam(q, "minSharpeRatio"); err != nil {
		return nil, err
	}
	if filter.MaxSharpeRatio, err = decimalParam(q, "maxSharpeRatio"); err != nil {
		return nil, err
	}
	if filter.MinTreynorRatio, err = decimalParam(q, "minTreynorRatio"); err != nil {
		return nil, err
	}
	if filter.MaxTreynorRatio, err = decimalParam(q, "maxTreynorRatio"); err != nil {
		return nil, err
	}
	if filter.MinBeta, err = decimalParam(q, "minBeta"); err != nil {
		return nil, err
	}
	if filter.MaxBeta, err = decimalParam(q, "maxBeta"); err != nil {
		return nil, err
	}
	if filter.MinAlpha, err = decimalParam(q, "minAlpha"); err != nil {
		return nil, err
	}
	if filter.MaxAlpha, err = decimalParam(q, "maxAlpha"); err != nil {
		return nil, err
	}

	return filter, nil
}

// ParseTopFundsQuery extracts the ranking parameters: period (default "1Y"),
// optional category, and limit (default 10, must be a positive integer).
func ParseTopFundsQuery(q url.Values) (period string, category *model.FundCategory, limit int, err error) {
	period = q.Get("period")
	if period == "" {
		period = "1Y"
	}

	if v := q.Get("category"); v != "" {
		c := model.FundCategory(v)
		if !model.ValidFundCategory[c] {
			return "", nil, 0, fmt.Errorf("invalid category: %s", v)
		}
		category = &c
	}

	limit = 10
	if v := q.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			return "", nil, 0, fmt.Errorf("invalid limit: must be a number")
		}
		if limit < 1 {
			return "", nil, 0, fmt.Errorf("invalid limit: must be a positive integer")
		}
	}

	return period, category, limit, nil
}

func decimalParam(q url.Values, name string) (*decimal.Decimal, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: must be a number", name)
	}
	return &d, nil
}

func intParam(q url.Values, name string) (*int, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: must be an integer", name)
	}
	return &n, nil
}
