package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/model"
	"github.com/clearfolio/fund-catalog-backend/internal/repository"
	"github.com/clearfolio/fund-catalog-backend/internal/testutil"
)

func TestProviderRepository_InsertAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProviderRepository(db)

	p := model.DataProvider{
		ID:       testutil.MakeID(),
		Name:     "Feed",
		APIKey:   "encrypted-token",
		BaseURL:  "https://feed.example.com",
		IsActive: true,
	}
	if err := repo.InsertProvider(context.Background(), p); err != nil {
		t.Fatalf("InsertProvider failed: %v", err)
	}

	got, err := repo.GetProvider(p.ID)
	if err != nil {
		t.Fatalf("GetProvider failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a provider, got nil")
	}
	if got.APIKey != "encrypted-token" {
		t.Errorf("Expected stored token, got %q", got.APIKey)
	}

	missing, err := repo.GetProvider(testutil.MakeID())
	if err != nil {
		t.Fatalf("GetProvider failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for a missing provider, got %+v", missing)
	}
}

func TestProviderRepository_GetActiveProvider(t *testing.T) {
	t.Run("no active provider yields nil", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewProviderRepository(db)

		testutil.NewProvider().Inactive().Build(t, db)

		p, err := repo.GetActiveProvider()
		if err != nil {
			t.Fatalf("GetActiveProvider failed: %v", err)
		}
		if p != nil {
			t.Errorf("Expected nil, got %+v", p)
		}
	})

	t.Run("first active by name wins", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewProviderRepository(db)

		testutil.NewProvider().WithName("Charlie").Build(t, db)
		testutil.NewProvider().WithName("Bravo").Build(t, db)
		testutil.NewProvider().WithName("Alpha").Inactive().Build(t, db)

		p, err := repo.GetActiveProvider()
		if err != nil {
			t.Fatalf("GetActiveProvider failed: %v", err)
		}
		if p == nil || p.Name != "Bravo" {
			t.Errorf("Expected Bravo, got %+v", p)
		}
	})
}

func TestProviderRepository_UpdateProvider(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProviderRepository(db)

	p := testutil.NewProvider().WithName("Before").Build(t, db)
	p.Name = "After"
	p.IsActive = false

	if err := repo.UpdateProvider(context.Background(), p); err != nil {
		t.Fatalf("UpdateProvider failed: %v", err)
	}

	got, err := repo.GetProvider(p.ID)
	if err != nil {
		t.Fatalf("GetProvider failed: %v", err)
	}
	if got.Name != "After" || got.IsActive {
		t.Errorf("Expected updated row, got %+v", got)
	}

	ghost := p
	ghost.ID = testutil.MakeID()
	if err := repo.UpdateProvider(context.Background(), ghost); !errors.Is(err, apperrors.ErrProviderNotFound) {
		t.Errorf("Expected ErrProviderNotFound, got %v", err)
	}
}

func TestProviderRepository_DeleteProvider(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProviderRepository(db)

	p := testutil.NewProvider().Build(t, db)

	if err := repo.DeleteProvider(context.Background(), p.ID); err != nil {
		t.Fatalf("DeleteProvider failed: %v", err)
	}
	if err := repo.DeleteProvider(context.Background(), p.ID); !errors.Is(err, apperrors.ErrProviderNotFound) {
		t.Errorf("Expected ErrProviderNotFound, got %v", err)
	}
}
