package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/clearfolio/fund-catalog-backend/internal/model"
	"github.com/clearfolio/fund-catalog-backend/internal/repository"
	"github.com/clearfolio/fund-catalog-backend/internal/validation"
)

// Fetcher yields fund update records from an external data source. The
// synchronizer is source-agnostic; provider.Client is the production
// implementation.
type Fetcher interface {
	FetchFunds(ctx context.Context, baseURL, apiKey string) ([]model.FundUpdate, error)
}

// syncWorkers bounds how many fund records are reconciled concurrently.
// Each fund is still its own transaction; the bound only limits writer
// contention on the store.
const syncWorkers = 4

// SyncService reconciles externally-fetched fund records against the store.
// Each fund's update is atomic (fields and returns commit together); the
// batch as a whole is not, and per-record failures are counted, not fatal.
type SyncService struct {
	db         *sql.DB
	fundRepo   *repository.FundRepository
	returnRepo *repository.ReturnRepository
	providers  *ProviderService
	fetcher    Fetcher
	logger     zerolog.Logger
}

// NewSyncService creates a new SyncService with the provided dependencies.
func NewSyncService(
	db *sql.DB,
	fundRepo *repository.FundRepository,
	returnRepo *repository.ReturnRepository,
	providers *ProviderService,
	fetcher Fetcher,
	logger zerolog.Logger,
) *SyncService {
	return &SyncService{
		db:         db,
		fundRepo:   fundRepo,
		returnRepo: returnRepo,
		providers:  providers,
		fetcher:    fetcher,
		logger:     logger,
	}
}

// RefreshFromProvider runs a full synchronization against the active data
// provider: resolve the provider, decrypt its credential, fetch the fund
// listing, and reconcile it. Returns apperrors.ErrNoActiveProvider when no
// provider is active and an ExternalFetchError when the fetch fails; in both
// cases nothing has been written.
func (s *SyncService) RefreshFromProvider(ctx context.Context) (model.SyncResult, error) {
	p, err := s.providers.ActiveProvider()
	if err != nil {
		return model.SyncResult{}, err
	}

	apiKey, err := s.providers.DecryptAPIKey(p)
	if err != nil {
		return model.SyncResult{}, fmt.Errorf("failed to decrypt API key for provider %s: %w", p.Name, err)
	}

	records, err := s.fetcher.FetchFunds(ctx, p.BaseURL, apiKey)
	if err != nil {
		return model.SyncResult{}, err
	}

	s.logger.Info().
		Str("provider", p.Name).
		Int("records", len(records)).
		Msg("fetched fund records")

	return s.Synchronize(ctx, records)
}

// Synchronize reconciles a batch of fund update records. Records are
// validated and applied with bounded concurrency; a malformed or failing
// record is logged, counted and skipped so it cannot block the remainder of
// the batch. Counts in the result are exact even under partial completion.
func (s *SyncService) Synchronize(ctx context.Context, records []model.FundUpdate) (model.SyncResult, error) {
	var mu sync.Mutex
	var result model.SyncResult

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(syncWorkers)

	for _, rec := range records {
		rec := rec
		g.Go(func() error {
			if verr := validation.ValidateFundUpdate(rec); verr != nil {
				s.logger.Warn().
					Str("scheme_code", rec.SchemeCode).
					Str("field", verr.Field).
					Msg("skipping malformed fund record")
				mu.Lock()
				result.RecordsSkipped++
				result.Errors = append(result.Errors, verr.Error())
				mu.Unlock()
				return nil
			}

			created, returnsWritten, err := s.applyRecord(ctx, rec)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Error().
					Err(err).
					Str("scheme_code", rec.SchemeCode).
					Msg("failed to apply fund record")
				result.RecordsSkipped++
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", rec.SchemeCode, err))
				return nil
			}
			if created {
				result.FundsCreated++
			} else {
				result.FundsUpdated++
			}
			result.ReturnsProcessed += returnsWritten
			return nil
		})
	}

	// Workers never return errors; failures are reported through the result.
	_ = g.Wait()

	s.logger.Info().
		Int("created", result.FundsCreated).
		Int("updated", result.FundsUpdated).
		Int("returns", result.ReturnsProcessed).
		Int("skipped", result.RecordsSkipped).
		Msg("synchronization batch finished")

	return result, nil
}

// applyRecord upserts one fund and its return values inside a single
// transaction. The scheme code is the natural key: an existing fund gets a
// full field replace, a missing one is created, and each (period, value)
// pair overwrites any stored return for that period.
func (s *SyncService) applyRecord(ctx context.Context, rec model.FundUpdate) (created bool, returnsWritten int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	fundRepo := s.fundRepo.WithTx(tx)
	returnRepo := s.returnRepo.WithTx(tx)

	existing, err := fundRepo.GetFundBySchemeCode(rec.SchemeCode)
	if err != nil {
		return false, 0, err
	}

	var fund model.Fund
	if existing == nil {
		created = true
		fund = rec.Fund(uuid.NewString())
		err = fundRepo.InsertFund(ctx, fund)
	} else {
		fund = rec.Fund(existing.ID)
		err = fundRepo.UpdateFund(ctx, fund)
	}
	if err != nil {
		return false, 0, err
	}

	asOf := model.NewDate(time.Now())
	for period, value := range rec.Returns {
		if err = returnRepo.UpsertReturn(ctx, fund.ID, period, value, asOf); err != nil {
			return false, 0, err
		}
		returnsWritten++
	}

	if err = tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("failed to commit fund %s: %w", rec.SchemeCode, err)
	}
	return created, returnsWritten, nil
}
