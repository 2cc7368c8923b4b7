package validation

import (
	"net/url"
	"strings"

	"github.com/clearfolio/fund-catalog-backend/internal/api/request"
)

func ValidateCreateProvider(req request.CreateProviderRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(req.APIKey) == "" {
		errors["api_key"] = "api_key is required"
	}

	if msg := validateBaseURL(req.BaseURL); msg != "" {
		errors["base_url"] = msg
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateProvider(req request.UpdateProviderRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name is required"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}
	if req.APIKey != nil && strings.TrimSpace(*req.APIKey) == "" {
		errors["api_key"] = "api_key cannot be empty"
	}
	if req.BaseURL != nil {
		if msg := validateBaseURL(*req.BaseURL); msg != "" {
			errors["base_url"] = msg
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateBaseURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "base_url is required"
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "base_url must be a valid http(s) URL"
	}
	return ""
}
