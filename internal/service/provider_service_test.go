package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/clearfolio/fund-catalog-backend/internal/api/request"
	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/testutil"
	"github.com/clearfolio/fund-catalog-backend/internal/validation"
)

func TestProviderService_CreateProvider(t *testing.T) {
	t.Run("creates an active provider with an encrypted key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestProviderService(t, db)

		p, err := ps.CreateProvider(context.Background(), request.CreateProviderRequest{
			Name:    "AMFI Feed",
			APIKey:  "super-secret",
			BaseURL: "https://feed.example.com/api",
		})
		if err != nil {
			t.Fatalf("CreateProvider failed: %v", err)
		}

		if !p.IsActive {
			t.Error("Expected new provider to default to active")
		}
		if p.APIKey == "super-secret" {
			t.Error("Expected the stored key to be encrypted")
		}

		plain, err := ps.DecryptAPIKey(p)
		if err != nil {
			t.Fatalf("DecryptAPIKey failed: %v", err)
		}
		if plain != "super-secret" {
			t.Errorf("Expected decrypted key super-secret, got %q", plain)
		}
	})

	t.Run("rejects missing fields with per-field messages", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestProviderService(t, db)

		_, err := ps.CreateProvider(context.Background(), request.CreateProviderRequest{
			BaseURL: "not-a-url",
		})

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		for _, field := range []string{"name", "api_key", "base_url"} {
			if verr.Fields[field] == "" {
				t.Errorf("Expected a message for field %s", field)
			}
		}
	})
}

func TestProviderService_UpdateProvider(t *testing.T) {
	t.Run("applies partial updates and keeps the stored key when omitted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestProviderService(t, db)

		created, err := ps.CreateProvider(context.Background(), request.CreateProviderRequest{
			Name:    "Feed",
			APIKey:  "original-key",
			BaseURL: "https://feed.example.com",
		})
		if err != nil {
			t.Fatalf("CreateProvider failed: %v", err)
		}

		name := "Renamed Feed"
		inactive := false
		updated, err := ps.UpdateProvider(context.Background(), created.ID, request.UpdateProviderRequest{
			Name:     &name,
			IsActive: &inactive,
		})
		if err != nil {
			t.Fatalf("UpdateProvider failed: %v", err)
		}

		if updated.Name != "Renamed Feed" {
			t.Errorf("Expected renamed provider, got %s", updated.Name)
		}
		if updated.IsActive {
			t.Error("Expected provider to be inactive")
		}

		plain, err := ps.DecryptAPIKey(updated)
		if err != nil {
			t.Fatalf("DecryptAPIKey failed: %v", err)
		}
		if plain != "original-key" {
			t.Errorf("Expected original key preserved, got %q", plain)
		}
	})

	t.Run("re-encrypts a supplied key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestProviderService(t, db)

		created, err := ps.CreateProvider(context.Background(), request.CreateProviderRequest{
			Name:    "Feed",
			APIKey:  "old-key",
			BaseURL: "https://feed.example.com",
		})
		if err != nil {
			t.Fatalf("CreateProvider failed: %v", err)
		}

		newKey := "new-key"
		updated, err := ps.UpdateProvider(context.Background(), created.ID, request.UpdateProviderRequest{
			APIKey: &newKey,
		})
		if err != nil {
			t.Fatalf("UpdateProvider failed: %v", err)
		}

		plain, err := ps.DecryptAPIKey(updated)
		if err != nil {
			t.Fatalf("DecryptAPIKey failed: %v", err)
		}
		if plain != "new-key" {
			t.Errorf("Expected re-encrypted key, got %q", plain)
		}
	})

	t.Run("unknown provider yields not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestProviderService(t, db)

		name := "Whatever"
		_, err := ps.UpdateProvider(context.Background(), testutil.MakeID(), request.UpdateProviderRequest{Name: &name})
		if !errors.Is(err, apperrors.ErrProviderNotFound) {
			t.Errorf("Expected ErrProviderNotFound, got %v", err)
		}
	})
}

func TestProviderService_ActiveProvider(t *testing.T) {
	t.Run("returns ErrNoActiveProvider when none is active", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestProviderService(t, db)

		testutil.NewProvider().WithName("Dormant").Inactive().Build(t, db)

		_, err := ps.ActiveProvider()
		if !errors.Is(err, apperrors.ErrNoActiveProvider) {
			t.Errorf("Expected ErrNoActiveProvider, got %v", err)
		}
	})

	t.Run("prefers the first active provider by name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestProviderService(t, db)

		testutil.NewProvider().WithName("Zeta Feed").Build(t, db)
		testutil.NewProvider().WithName("Alpha Feed").Build(t, db)
		testutil.NewProvider().WithName("Aardvark Feed").Inactive().Build(t, db)

		p, err := ps.ActiveProvider()
		if err != nil {
			t.Fatalf("ActiveProvider failed: %v", err)
		}
		if p.Name != "Alpha Feed" {
			t.Errorf("Expected Alpha Feed, got %s", p.Name)
		}
	})
}

func TestProviderService_DeleteProvider(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ps := testutil.NewTestProviderService(t, db)

	p := testutil.NewProvider().Build(t, db)

	if err := ps.DeleteProvider(context.Background(), p.ID); err != nil {
		t.Fatalf("DeleteProvider failed: %v", err)
	}

	_, err := ps.GetProvider(p.ID)
	if !errors.Is(err, apperrors.ErrProviderNotFound) {
		t.Errorf("Expected ErrProviderNotFound after delete, got %v", err)
	}

	if err := ps.DeleteProvider(context.Background(), p.ID); !errors.Is(err, apperrors.ErrProviderNotFound) {
		t.Errorf("Expected ErrProviderNotFound on repeat delete, got %v", err)
	}
}
