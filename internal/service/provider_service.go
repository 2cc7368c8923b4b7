package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/clearfolio/fund-catalog-backend/internal/api/request"
	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/model"
	"github.com/clearfolio/fund-catalog-backend/internal/repository"
	"github.com/clearfolio/fund-catalog-backend/internal/secret"
	"github.com/clearfolio/fund-catalog-backend/internal/validation"
)

// ProviderService manages data provider records. API keys are encrypted
// before they reach the store and decrypted only for the synchronizer; no
// read path ever returns plaintext credential material.
type ProviderService struct {
	providerRepo *repository.ProviderRepository
	codec        *secret.Codec
}

// NewProviderService creates a new ProviderService with the provided repository and codec.
func NewProviderService(providerRepo *repository.ProviderRepository, codec *secret.Codec) *ProviderService {
	return &ProviderService{
		providerRepo: providerRepo,
		codec:        codec,
	}
}

// ListProviders retrieves all data providers.
func (s *ProviderService) ListProviders() ([]model.DataProvider, error) {
	return s.providerRepo.GetAllProviders()
}

// GetProvider retrieves one provider by ID.
func (s *ProviderService) GetProvider(id string) (model.DataProvider, error) {
	p, err := s.providerRepo.GetProvider(id)
	if err != nil {
		return model.DataProvider{}, err
	}
	if p == nil {
		return model.DataProvider{}, apperrors.ErrProviderNotFound
	}
	return *p, nil
}

// CreateProvider validates the request, encrypts the API key and persists a
// new provider. New providers default to active.
func (s *ProviderService) CreateProvider(ctx context.Context, req request.CreateProviderRequest) (model.DataProvider, error) {
	if err := validation.ValidateCreateProvider(req); err != nil {
		return model.DataProvider{}, err
	}

	encrypted, err := s.codec.Encrypt(req.APIKey)
	if err != nil {
		return model.DataProvider{}, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	p := model.DataProvider{
		ID:       uuid.NewString(),
		Name:     req.Name,
		APIKey:   encrypted,
		BaseURL:  req.BaseURL,
		IsActive: active,
	}

	if err := s.providerRepo.InsertProvider(ctx, p); err != nil {
		return model.DataProvider{}, err
	}
	return p, nil
}

// UpdateProvider applies the non-nil fields of the request to an existing
// provider. A supplied API key is re-encrypted; an omitted one keeps the
// stored token.
func (s *ProviderService) UpdateProvider(ctx context.Context, id string, req request.UpdateProviderRequest) (model.DataProvider, error) {
	if err := validation.ValidateUpdateProvider(req); err != nil {
		return model.DataProvider{}, err
	}

	p, err := s.GetProvider(id)
	if err != nil {
		return model.DataProvider{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.BaseURL != nil {
		p.BaseURL = *req.BaseURL
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.APIKey != nil {
		encrypted, err := s.codec.Encrypt(*req.APIKey)
		if err != nil {
			return model.DataProvider{}, err
		}
		p.APIKey = encrypted
	}

	if err := s.providerRepo.UpdateProvider(ctx, p); err != nil {
		return model.DataProvider{}, err
	}
	return p, nil
}

// DeleteProvider removes a provider.
func (s *ProviderService) DeleteProvider(ctx context.Context, id string) error {
	return s.providerRepo.DeleteProvider(ctx, id)
}

// ActiveProvider returns the first active provider, or ErrNoActiveProvider
// when none is flagged active.
func (s *ProviderService) ActiveProvider() (model.DataProvider, error) {
	p, err := s.providerRepo.GetActiveProvider()
	if err != nil {
		return model.DataProvider{}, err
	}
	if p == nil {
		return model.DataProvider{}, apperrors.ErrNoActiveProvider
	}
	return *p, nil
}

// DecryptAPIKey recovers the plaintext API key of a provider for the
// synchronizer. Callers must not persist or serialize the result.
func (s *ProviderService) DecryptAPIKey(p model.DataProvider) (string, error) {
	return s.codec.Decrypt(p.APIKey)
}
