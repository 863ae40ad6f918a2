package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type HTTPContentRepository struct {
	baseURL *url.URL
	client  *http.Client
}

func NewHTTPContentRepository(baseURL string, client *http.Client) (*HTTPContentRepository, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse content url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("content url %q: unsupported scheme", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPContentRepository{
		baseURL: u,
		client:  client,
	}, nil
}

func (r *HTTPContentRepository) Load(ctx context.Context, resource string) ([]byte, error) {
	u := r.baseURL.JoinPath(strings.TrimPrefix(resource, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", resource, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
