package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/model"
)

// FundRepository provides data access for the fund table. It carries no
// business logic; filtering and ranking happen in the service layer.
type FundRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewFundRepository creates a new FundRepository with the provided database connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *FundRepository) WithTx(tx *sql.Tx) *FundRepository {
	return &FundRepository{db: r.db, tx: tx}
}

func (r *FundRepository) q() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const fundColumns = `id, scheme_name, amc, scheme_code, nav, category, sub_category,
	expense_ratio, aum, aum_category, risk_rating, inception_date, fund_manager,
	min_sip_amount, min_lumpsum, exit_load, standard_deviation, sharpe_ratio,
	treynor_ratio, beta, alpha, cagr, max_drawdown`

func scanFund(rows *sql.Rows) (model.Fund, error) {
	var f model.Fund
	err := rows.Scan(
		&f.ID,
		&f.SchemeName,
		&f.AMC,
		&f.SchemeCode,
		&f.NAV,
		&f.Category,
		&f.SubCategory,
		&f.ExpenseRatio,
		&f.AUM,
		&f.AUMCategory,
		&f.RiskRating,
		&f.InceptionDate,
		&f.FundManager,
		&f.MinSIPAmount,
		&f.MinLumpsum,
		&f.ExitLoad,
		&f.StandardDeviation,
		&f.SharpeRatio,
		&f.TreynorRatio,
		&f.Beta,
		&f.Alpha,
		&f.CAGR,
		&f.MaxDrawdown,
	)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to scan fund row: %w", err)
	}
	return f, nil
}

// GetAllFunds retrieves every fund ordered by scheme name, scheme code as the
// tiebreaker so result ordering is stable.
func (r *FundRepository) GetAllFunds() ([]model.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM fund ORDER BY scheme_name ASC, scheme_code ASC`

	rows, err := r.q().Query(query)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "query fund table", Err: err}
	}
	defer rows.Close()

	funds := []model.Fund{}
	for rows.Next() {
		f, err := scanFund(rows)
		if err != nil {
			return nil, err
		}
		funds = append(funds, f)
	}
	if err = rows.Err(); err != nil {
		return nil, &apperrors.PersistenceError{Op: "iterate fund table", Err: err}
	}

	return funds, nil
}

// GetFundBySchemeCode retrieves one fund by its scheme code.
// Returns nil, nil when no fund with that code exists.
func (r *FundRepository) GetFundBySchemeCode(schemeCode string) (*model.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM fund WHERE scheme_code = ?`

	rows, err := r.q().Query(query, schemeCode)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "query fund by scheme code", Err: err}
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, &apperrors.PersistenceError{Op: "query fund by scheme code", Err: err}
		}
		return nil, nil
	}

	f, err := scanFund(rows)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// InsertFund persists a new fund row.
func (r *FundRepository) InsertFund(ctx context.Context, f model.Fund) error {
	query := `
		INSERT INTO fund (` + fundColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.q().ExecContext(ctx, query,
		f.ID, f.SchemeName, f.AMC, f.SchemeCode, f.NAV, f.Category, f.SubCategory,
		f.ExpenseRatio, f.AUM, f.AUMCategory, f.RiskRating, f.InceptionDate, f.FundManager,
		f.MinSIPAmount, f.MinLumpsum, f.ExitLoad, f.StandardDeviation, f.SharpeRatio,
		f.TreynorRatio, f.Beta, f.Alpha, f.CAGR, f.MaxDrawdown,
	)
	if err != nil {
		return &apperrors.PersistenceError{Op: fmt.Sprintf("insert fund %s", f.SchemeCode), Err: err}
	}
	return nil
}

// UpdateFund replaces every mutable field of the fund identified by its
// scheme code. Full replace, not merge: the incoming record is current truth.
func (r *FundRepository) UpdateFund(ctx context.Context, f model.Fund) error {
	query := `
		UPDATE fund SET
			scheme_name = ?, amc = ?, nav = ?, category = ?, sub_category = ?,
			expense_ratio = ?, aum = ?, aum_category = ?, risk_rating = ?,
			inception_date = ?, fund_manager = ?, min_sip_amount = ?,
			min_lumpsum = ?, exit_load = ?, standard_deviation = ?,
			sharpe_ratio = ?, treynor_ratio = ?, beta = ?, alpha = ?,
			cagr = ?, max_drawdown = ?
		WHERE scheme_code = ?
	`

	result, err := r.q().ExecContext(ctx, query,
		f.SchemeName, f.AMC, f.NAV, f.Category, f.SubCategory,
		f.ExpenseRatio, f.AUM, f.AUMCategory, f.RiskRating,
		f.InceptionDate, f.FundManager, f.MinSIPAmount,
		f.MinLumpsum, f.ExitLoad, f.StandardDeviation,
		f.SharpeRatio, f.TreynorRatio, f.Beta, f.Alpha,
		f.CAGR, f.MaxDrawdown,
		f.SchemeCode,
	)
	if err != nil {
		return &apperrors.PersistenceError{Op: fmt.Sprintf("update fund %s", f.SchemeCode), Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &apperrors.PersistenceError{Op: fmt.Sprintf("update fund %s", f.SchemeCode), Err: err}
	}
	if affected == 0 {
		return apperrors.ErrFundNotFound
	}
	return nil
}

// DistinctAMCs retrieves the sorted list of distinct AMC names.
func (r *FundRepository) DistinctAMCs() ([]string, error) {
	rows, err := r.q().Query(`SELECT DISTINCT amc FROM fund ORDER BY amc ASC`)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "query distinct AMCs", Err: err}
	}
	defer rows.Close()

	amcs := []string{}
	for rows.Next() {
		var amc string
		if err := rows.Scan(&amc); err != nil {
			return nil, fmt.Errorf("failed to scan AMC name: %w", err)
		}
		amcs = append(amcs, amc)
	}
	if err = rows.Err(); err != nil {
		return nil, &apperrors.PersistenceError{Op: "iterate distinct AMCs", Err: err}
	}

	return amcs, nil
}
