package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FundCategory is the closed set of top-level fund categories.
type FundCategory string

const (
	CategoryEquity           FundCategory = "Equity"
	CategoryDebt             FundCategory = "Debt"
	CategoryHybrid           FundCategory = "Hybrid"
	CategorySolutionOriented FundCategory = "Solution Oriented"
	CategoryOther            FundCategory = "Other"
)

var ValidFundCategory = map[FundCategory]bool{
	CategoryEquity:           true,
	CategoryDebt:             true,
	CategoryHybrid:           true,
	CategorySolutionOriented: true,
	CategoryOther:            true,
}

// AUMCategory is the size bucket derived from a fund's assets under management.
type AUMCategory string

const (
	AUMSmall AUMCategory = "Small"
	AUMMid   AUMCategory = "Mid"
	AUMLarge AUMCategory = "Large"
)

var ValidAUMCategory = map[AUMCategory]bool{
	AUMSmall: true,
	AUMMid:   true,
	AUMLarge: true,
}

var (
	aumMidThreshold   = decimal.NewFromInt(1000)
	aumLargeThreshold = decimal.NewFromInt(10000)
)

// AUMCategoryFor buckets an AUM value: Small below 1000, Mid below 10000,
// Large otherwise. Same currency unit as the stored AUM (crores).
func AUMCategoryFor(aum decimal.Decimal) AUMCategory {
	switch {
	case aum.LessThan(aumMidThreshold):
		return AUMSmall
	case aum.LessThan(aumLargeThreshold):
		return AUMMid
	default:
		return AUMLarge
	}
}

// RiskRating is an ordered 1-5 scale, low to high.
type RiskRating int

const (
	RiskLow          RiskRating = 1
	RiskModerateLow  RiskRating = 2
	RiskModerate     RiskRating = 3
	RiskModerateHigh RiskRating = 4
	RiskHigh         RiskRating = 5
)

// Valid reports whether the rating is within the 1-5 scale.
func (r RiskRating) Valid() bool {
	return r >= RiskLow && r <= RiskHigh
}

const dateLayout = "2006-01-02"

// Date is a calendar date stored and serialized as YYYY-MM-DD.
type Date time.Time

// NewDate truncates t to a UTC calendar date.
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Time returns the underlying time value.
func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", data, err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = Date(t)
	return nil
}

// Value implements driver.Valuer so dates round-trip through SQLite as text.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("failed to scan date %q: %w", v, err)
		}
		*d = Date(t)
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Fund is a mutual fund catalog entry. Returns holds the fund's trailing
// return percentages keyed by period code ("1Y", "3Y", "5Y", ...); the period
// set stays open so new horizons can be ingested without a schema change.
type Fund struct {
	ID                string                     `json:"id"`
	SchemeName        string                     `json:"scheme_name"`
	AMC               string                     `json:"amc"`
	SchemeCode        string                     `json:"scheme_code"`
	NAV               decimal.Decimal            `json:"nav"`
	Category          FundCategory               `json:"category"`
	SubCategory       *string                    `json:"sub_category"`
	ExpenseRatio      decimal.Decimal            `json:"expense_ratio"`
	AUM               decimal.Decimal            `json:"aum"`
	AUMCategory       AUMCategory                `json:"aum_category"`
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

// FundReturn is one (fund, period) return value. At most one row exists per
// pair; a rewrite replaces the value and as-of date.
type FundReturn struct {
	ID       string          `json:"-"`
	FundID   string          `json:"-"`
	Period   string          `json:"period"`
	Value    decimal.Decimal `json:"value"`
	AsOfDate Date            `json:"as_of_date"`
}
