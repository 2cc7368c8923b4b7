package model

// DataProvider is an external fund data source. APIKey holds the fernet
// token of the encrypted credential; the json:"-" tag keeps it out of every
// serialized response.
type DataProvider struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	APIKey   string `json:"-"`
	BaseURL  string `json:"base_url"`
	IsActive bool   `json:"is_active"`
}
