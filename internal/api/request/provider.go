package request

// CreateProviderRequest is the body for POST /api/data-providers. The API key
// is accepted on input only; it never appears in responses.
type CreateProviderRequest struct {
	Name     string `json:"name"`
	APIKey   string `json:"api_key"`
	BaseURL  string `json:"base_url"`
	IsActive *bool  `json:"is_active"`
}

// UpdateProviderRequest is the body for PUT /api/data-providers/{id}.
// Nil fields are left unchanged; a supplied api_key is re-encrypted.
type UpdateProviderRequest struct {
	Name     *string `json:"name"`
	APIKey   *string `json:"api_key"`
	BaseURL  *string `json:"base_url"`
	IsActive *bool   `json:"is_active"`
}
