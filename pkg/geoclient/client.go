package geoclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/mapmotion/geocore-go/internal/client"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// New creates a new Geocore client.
func New(config *geocore.Config) (geocore.Client, error) {
	if config == nil {
		return nil, geocore.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, geocore.ErrBaseURLRequired
	}

	normalized := *config
	normalized.BaseURL = NormalizeBaseURL(config.BaseURL)

	cli, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithToken creates a client that reuses an access token obtained
// earlier.
func NewWithToken(baseURL, projectID, accessToken string) (geocore.Client, error) {
	return New(&geocore.Config{
		BaseURL:     baseURL,
		ProjectID:   projectID,
		AccessToken: accessToken,
	})
}

// NewWithPassword creates a client and logs in with id and password.
func NewWithPassword(ctx context.Context, baseURL, projectID, id, password string) (geocore.Client, error) {
	cli, err := New(&geocore.Config{
		BaseURL:   baseURL,
		ProjectID: projectID,
	})
	if err != nil {
		return nil, err
	}

	_, err = cli.Login(ctx, id, password)
	if err != nil {
		return nil, fmt.Errorf("logging in as %s: %w", id, err)
	}

	return cli, nil
}

// NormalizeBaseURL trims a trailing slash and adds "https://" when no scheme
// is present.
func NormalizeBaseURL(baseURL string) string {
	normalized := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}
