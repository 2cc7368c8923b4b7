package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/clearfolio/fund-catalog-backend/internal/model"
	"github.com/clearfolio/fund-catalog-backend/internal/repository"
)

// FundService is the read side of the catalog: the query engine, the ranking
// service, the AMC listing and the aggregate metric statistics. Funds and
// returns are read-only here; only the synchronizer writes them.
type FundService struct {
	fundRepo   *repository.FundRepository
	returnRepo *repository.ReturnRepository
}

// NewFundService creates a new FundService with the provided repository dependencies.
func NewFundService(fundRepo *repository.FundRepository, returnRepo *repository.ReturnRepository) *FundService {
	return &FundService{
		fundRepo:   fundRepo,
		returnRepo: returnRepo,
	}
}

// loadAnnotatedFunds loads every fund with its full period -> value return
// mapping attached. A fund without return rows carries an empty, non-nil map
// so it serializes as {} rather than null.
func (s *FundService) loadAnnotatedFunds() ([]model.Fund, error) {
	funds, err := s.fundRepo.GetAllFunds()
	if err != nil {
		return nil, err
	}

	returnsByFund, err := s.returnRepo.GetReturnsByFund()
	if err != nil {
		return nil, err
	}

	for i := range funds {
		if r := returnsByFund[funds[i].ID]; r != nil {
			funds[i].Returns = r
		} else {
			funds[i].Returns = map[string]decimal.Decimal{}
		}
	}

	return funds, nil
}

// QueryFunds evaluates the filter specification against the catalog and
// returns the matching funds, each annotated with its return mapping.
//
// The filter is interpreted as a pure predicate conjunction (see
// model.FundFilter); an empty filter returns all funds. Results are
// deduplicated by fund identity and keep the store's stable ordering by
// scheme name.
func (s *FundService) QueryFunds(filter model.FundFilter) ([]model.Fund, error) {
	funds, err := s.loadAnnotatedFunds()
	if err != nil {
		return nil, err
	}

	matched := []model.Fund{}
	seen := make(map[string]struct{}, len(funds))
	for _, f := range funds {
		if _, dup := seen[f.ID]; dup {
			continue
		}
		if filter.Matches(f) {
			seen[f.ID] = struct{}{}
			matched = append(matched, f)
		}
	}

	return matched, nil
}

// TopFunds returns the top funds by return value for the given period,
// descending, optionally restricted to a category and truncated to limit.
// Funds without a return row for the period are excluded, not treated as
// zero. Ties break by scheme code ascending so rankings are reproducible.
func (s *FundService) TopFunds(period string, category *model.FundCategory, limit int) ([]model.Fund, error) {
	if period == "" {
		period = "1Y"
	}
	if limit < 1 {
		limit = 10
	}

	funds, err := s.loadAnnotatedFunds()
	if err != nil {
		return nil, err
	}

	ranked := []model.Fund{}
	for _, f := range funds {
		if category != nil && f.Category != *category {
			continue
		}
		if _, ok := f.Returns[period]; !ok {
			continue
		}
		ranked = append(ranked, f)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := ranked[i].Returns[period], ranked[j].Returns[period]
		if !vi.Equal(vj) {
			return vi.GreaterThan(vj)
		}
		return ranked[i].SchemeCode < ranked[j].SchemeCode
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// AMCs returns the sorted list of distinct AMC names.
func (s *FundService) AMCs() ([]string, error) {
	return s.fundRepo.DistinctAMCs()
}

// AdvancedMetricsStats computes min/max/average per advanced metric across
// the full fund set, ignoring nulls. A metric with zero non-null observations
// reports nil for all three statistics.
func (s *FundService) AdvancedMetricsStats() (model.AdvancedMetricsStats, error) {
	funds, err := s.fundRepo.GetAllFunds()
	if err != nil {
		return model.AdvancedMetricsStats{}, err
	}

	var stdDev, sharpe, treynor, beta, alpha []decimal.Decimal
	for _, f := range funds {
		stdDev = appendValid(stdDev, f.StandardDeviation)
		sharpe = appendValid(sharpe, f.SharpeRatio)
		treynor = appendValid(treynor, f.TreynorRatio)
		beta = appendValid(beta, f.Beta)
		alpha = appendValid(alpha, f.Alpha)
	}

	var stats model.AdvancedMetricsStats
	stats.MinStandardDeviation, stats.MaxStandardDeviation, stats.AvgStandardDeviation = summarize(stdDev)
	stats.MinSharpeRatio, stats.MaxSharpeRatio, stats.AvgSharpeRatio = summarize(sharpe)
	stats.MinTreynorRatio, stats.MaxTreynorRatio, stats.AvgTreynorRatio = summarize(treynor)
	stats.MinBeta, stats.MaxBeta, stats.AvgBeta = summarize(beta)
	stats.MinAlpha, stats.MaxAlpha, stats.AvgAlpha = summarize(alpha)

	return stats, nil
}

func appendValid(values []decimal.Decimal, v decimal.NullDecimal) []decimal.Decimal {
	if v.Valid {
		values = append(values, v.Decimal)
	}
	return values
}

func summarize(values []decimal.Decimal) (min, max, avg *decimal.Decimal) {
	if len(values) == 0 {
		return nil, nil, nil
	}

	lo, hi, sum := values[0], values[0], decimal.Zero
	for _, v := range values {
		if v.LessThan(lo) {
			lo = v
		}
		if v.GreaterThan(hi) {
			hi = v
		}
		sum = sum.Add(v)
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(values)))).Round(2)

	return &lo, &hi, &mean
}
