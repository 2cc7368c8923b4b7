package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/model"
)

// ProviderRepository provides data access for the data_provider table.
// The api_key column always holds the encrypted token, never plaintext.
type ProviderRepository struct {
	db *sql.DB
}

// NewProviderRepository creates a new ProviderRepository with the provided database connection.
func NewProviderRepository(db *sql.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

const providerColumns = `id, name, api_key, base_url, is_active`

func scanProvider(row interface{ Scan(dest ...any) error }) (model.DataProvider, error) {
	var p model.DataProvider
	err := row.Scan(&p.ID, &p.Name, &p.APIKey, &p.BaseURL, &p.IsActive)
	if err != nil {
		return model.DataProvider{}, err
	}
	return p, nil
}

// GetAllProviders retrieves every data provider ordered by name.
func (r *ProviderRepository) GetAllProviders() ([]model.DataProvider, error) {
	rows, err := r.db.Query(`SELECT ` + providerColumns + ` FROM data_provider ORDER BY name ASC`)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "query data_provider table", Err: err}
	}
	defer rows.Close()

	providers := []model.DataProvider{}
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan data_provider row: %w", err)
		}
		providers = append(providers, p)
	}
	if err = rows.Err(); err != nil {
		return nil, &apperrors.PersistenceError{Op: "iterate data_provider table", Err: err}
	}

	return providers, nil
}

// GetProvider retrieves one provider by ID.
// Returns nil, nil when no provider with that ID exists.
func (r *ProviderRepository) GetProvider(id string) (*model.DataProvider, error) {
	row := r.db.QueryRow(`SELECT `+providerColumns+` FROM data_provider WHERE id = ?`, id)

	p, err := scanProvider(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "query data_provider by id", Err: err}
	}
	return &p, nil
}

// GetActiveProvider retrieves the first active provider by name order.
// Returns nil, nil when no provider is flagged active.
func (r *ProviderRepository) GetActiveProvider() (*model.DataProvider, error) {
	row := r.db.QueryRow(`
		SELECT ` + providerColumns + `
		FROM data_provider
		WHERE is_active = TRUE
		ORDER BY name ASC
		LIMIT 1
	`)

	p, err := scanProvider(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "query active data_provider", Err: err}
	}
	return &p, nil
}

// InsertProvider persists a new provider row.
func (r *ProviderRepository) InsertProvider(ctx context.Context, p model.DataProvider) error {
	query := `
		INSERT INTO data_provider (` + providerColumns + `)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.APIKey, p.BaseURL, p.IsActive)
	if err != nil {
		return &apperrors.PersistenceError{Op: fmt.Sprintf("insert data_provider %s", p.Name), Err: err}
	}
	return nil
}

// UpdateProvider replaces the mutable fields of a provider row.
func (r *ProviderRepository) UpdateProvider(ctx context.Context, p model.DataProvider) error {
	query := `
		UPDATE data_provider
		SET name = ?, api_key = ?, base_url = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.APIKey, p.BaseURL, p.IsActive, p.ID)
	if err != nil {
		return &apperrors.PersistenceError{Op: fmt.Sprintf("update data_provider %s", p.ID), Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &apperrors.PersistenceError{Op: fmt.Sprintf("update data_provider %s", p.ID), Err: err}
	}
	if affected == 0 {
		return apperrors.ErrProviderNotFound
	}
	return nil
}

// DeleteProvider removes a provider row.
func (r *ProviderRepository) DeleteProvider(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM data_provider WHERE id = ?`, id)
	if err != nil {
		return &apperrors.PersistenceError{Op: fmt.Sprintf("delete data_provider %s", id), Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &apperrors.PersistenceError{Op: fmt.Sprintf("delete data_provider %s", id), Err: err}
	}
	if affected == 0 {
		return apperrors.ErrProviderNotFound
	}
	return nil
}
