package contentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

// Config defines the HTTP client settings for the content metadata API.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client fetches view counts and post metadata for short-video URLs from
// the platform metadata service. Submissions that already carry views and
// a posting date never hit this client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type metadataResponse struct {
	Views    *int64     `json:"views"`
	PostedAt *time.Time `json:"posted_at"`
	Username string     `json:"username"`
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("contentapi: base url required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) Lookup(ctx context.Context, videoURL string) (ports.ContentMetadata, error) {
	if c == nil {
		return ports.ContentMetadata{}, domainerrors.ErrContentLookupUnavailable
	}
	endpoint := fmt.Sprintf("%s/v1/metadata?url=%s", c.baseURL, url.QueryEscape(strings.TrimSpace(videoURL)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.ContentMetadata{}, fmt.Errorf("contentapi: request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.ContentMetadata{}, fmt.Errorf("%w: %v", domainerrors.ErrContentLookupUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ports.ContentMetadata{}, fmt.Errorf("%w: status %d", domainerrors.ErrContentLookupUnavailable, resp.StatusCode)
	}

	var payload metadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.ContentMetadata{}, fmt.Errorf("%w: decode: %v", domainerrors.ErrContentLookupUnavailable, err)
	}

	metadata := ports.ContentMetadata{
		Views:    payload.Views,
		Username: strings.TrimSpace(payload.Username),
	}
	if payload.PostedAt != nil {
		postedAt := payload.PostedAt.UTC()
		metadata.DatePosted = &postedAt
	}
	return metadata, nil
}
