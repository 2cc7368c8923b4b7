package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clearfolio/fund-catalog-backend/internal/repository"
	"github.com/clearfolio/fund-catalog-backend/internal/secret"
	"github.com/clearfolio/fund-catalog-backend/internal/service"
)

func NewTestFundService(t *testing.T, db *sql.DB) *service.FundService {
	t.Helper()

	fundRepo := repository.NewFundRepository(db)
	returnRepo := repository.NewReturnRepository(db)

	return service.NewFundService(fundRepo, returnRepo)
}

// NewTestCodec returns a Codec backed by a freshly generated key. Tokens are
// only valid within the test that created the codec.
func NewTestCodec(t *testing.T) *secret.Codec {
	t.Helper()

	key, err := secret.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate test key: %v", err)
	}
	codec, err := secret.NewCodec(key)
	if err != nil {
		t.Fatalf("Failed to create test codec: %v", err)
	}
	return codec
}

func NewTestProviderService(t *testing.T, db *sql.DB) *service.ProviderService {
	t.Helper()

	providerRepo := repository.NewProviderRepository(db)

	return service.NewProviderService(providerRepo, NewTestCodec(t))
}

// NewTestSyncService wires a SyncService against the given fetcher, sharing
// the provider service so tests can seed providers with encrypted keys.
func NewTestSyncService(t *testing.T, db *sql.DB, providers *service.ProviderService, fetcher service.Fetcher) *service.SyncService {
	t.Helper()

	fundRepo := repository.NewFundRepository(db)
	returnRepo := repository.NewReturnRepository(db)

	return service.NewSyncService(db, fundRepo, returnRepo, providers, fetcher, zerolog.Nop())
}

// MakeID generates a UUID string for use in tests.
func MakeID() string {
	return uuid.NewString()
}
