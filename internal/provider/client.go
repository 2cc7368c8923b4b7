// Package provider implements the HTTP client for external fund data
// sources. The synchronizer consumes it behind an interface; any source that
// yields validated fund update records can replace it.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clearfolio/fund-catalog-backend/internal/apperrors"
	"github.com/clearfolio/fund-catalog-backend/internal/model"
)

// Client fetches fund update records from a provider's REST endpoint.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a provider client with a bounded request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchFunds retrieves the provider's full fund listing from
// GET {baseURL}/funds, authenticated with the decrypted API key. Any
// transport, status, or decode failure is reported as an ExternalFetchError
// and aborts the synchronization run before a single write happens.
func (c *Client) FetchFunds(ctx context.Context, baseURL, apiKey string) ([]model.FundUpdate, error) {
	url := strings.TrimSuffix(baseURL, "/") + "/funds"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &apperrors.ExternalFetchError{Provider: baseURL, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.ExternalFetchError{Provider: baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for error context; providers tend to
		// return a short JSON error object.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &apperrors.ExternalFetchError{
			Provider: baseURL,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var records []model.FundUpdate
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &apperrors.ExternalFetchError{Provider: baseURL, Err: fmt.Errorf("invalid payload: %w", err)}
	}

	return records, nil
}
