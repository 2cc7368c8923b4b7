package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/model"
)

// ReturnRepository provides data access for the fund_return table: one row
// per (fund, period), enforced by a unique constraint.
type ReturnRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewReturnRepository creates a new ReturnRepository with the provided database connection.
func NewReturnRepository(db *sql.DB) *ReturnRepository {
	return &ReturnRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ReturnRepository) WithTx(tx *sql.Tx) *ReturnRepository {
	return &ReturnRepository{db: r.db, tx: tx}
}

func (r *ReturnRepository) q() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetReturnsByFund retrieves every return row grouped by fund, as a
// fundID -> period -> value mapping ready to annotate query results.
func (r *ReturnRepository) GetReturnsByFund() (map[string]map[string]decimal.Decimal, error) {
	rows, err := r.q().Query(`SELECT fund_id, period, value FROM fund_return`)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "query fund_return table", Err: err}
	}
	defer rows.Close()

	byFund := make(map[string]map[string]decimal.Decimal)
	for rows.Next() {
		var fundID, period string
		var value decimal.Decimal
		if err := rows.Scan(&fundID, &period, &value); err != nil {
			return nil, fmt.Errorf("failed to scan fund_return row: %w", err)
		}
		if byFund[fundID] == nil {
			byFund[fundID] = make(map[string]decimal.Decimal)
		}
		byFund[fundID][period] = value
	}
	if err = rows.Err(); err != nil {
		return nil, &apperrors.PersistenceError{Op: "iterate fund_return table", Err: err}
	}

	return byFund, nil
}

// GetReturns retrieves the full return rows for one fund, ordered by period.
func (r *ReturnRepository) GetReturns(fundID string) ([]model.FundReturn, error) {
	query := `
		SELECT id, fund_id, period, value, as_of_date
		FROM fund_return
		WHERE fund_id = ?
		ORDER BY period ASC
	`

	rows, err := r.q().Query(query, fundID)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "query returns for fund", Err: err}
	}
	defer rows.Close()

	returns := []model.FundReturn{}
	for rows.Next() {
		var fr model.FundReturn
		if err := rows.Scan(&fr.ID, &fr.FundID, &fr.Period, &fr.Value, &fr.AsOfDate); err != nil {
			return nil, fmt.Errorf("failed to scan fund_return row: %w", err)
		}
		returns = append(returns, fr)
	}
	if err = rows.Err(); err != nil {
		return nil, &apperrors.PersistenceError{Op: "iterate returns for fund", Err: err}
	}

	return returns, nil
}

// UpsertReturn writes the value for one (fund, period) pair. A second write
// for the same pair overwrites the value and as-of date, never duplicates.
func (r *ReturnRepository) UpsertReturn(ctx context.Context, fundID, period string, value decimal.Decimal, asOf model.Date) error {
	query := `
		INSERT INTO fund_return (id, fund_id, period, value, as_of_date)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(fund_id, period) DO UPDATE SET
			value = excluded.value,
			as_of_date = excluded.as_of_date
	`

	_, err := r.q().ExecContext(ctx, query, uuid.NewString(), fundID, period, value, asOf)
	if err != nil {
		return &apperrors.PersistenceError{Op: fmt.Sprintf("upsert return %s for fund %s", period, fundID), Err: err}
	}
	return nil
}
