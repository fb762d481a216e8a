package hrms

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// settingsService implements the SettingsService interface
type settingsService struct {
	client *Client
}

// Get retrieves current settings
func (s *settingsService) Get(ctx context.Context) (*Settings, error) {
	path, err := endpoint.Resolve(endpoint.SettingsGet)
	if err != nil {
		return nil, err
	}

	var result struct {
		Settings *Settings `json:"settings"`
	}

	if err := s.client.do(ctx, string(endpoint.SettingsGet), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get settings")
	}

	return result.Settings, nil
}

// Update replaces settings
func (s *settingsService) Update(ctx context.Context, settings *Settings) (*Settings, error) {
	if settings == nil {
		return nil, errors.New("settings are required")
	}

	path, err := endpoint.Resolve(endpoint.SettingsUpdate)
	if err != nil {
		return nil, err
	}

	var result struct {
		Settings *Settings `json:"settings"`
	}

	if err := s.client.do(ctx, string(endpoint.SettingsUpdate), http.MethodPut, path, settings, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	return result.Settings, nil
}
