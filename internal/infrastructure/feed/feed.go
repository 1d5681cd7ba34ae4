// Package feed retrieves the agenda feed document over HTTP.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/crettaz/cartable/internal/domain/agenda"
)

const defaultTimeout = 10 * time.Second

// FetchFunc is exposed for testing.
// It allows mocking the document retrieval.
var FetchFunc = defaultFetch

// Client fetches agenda documents. The zero value is ready to use.
type Client struct {
	Timeout time.Duration
}

// Fetch retrieves and decodes the agenda feed at the given URL.
func (c Client) Fetch(ctx context.Context, url string) (*agenda.Feed, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return FetchFunc(ctx, url)
}

func defaultFetch(ctx context.Context, url string) (*agenda.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	// The published document changes during the school day; never serve it
	// from an intermediary cache.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	var feed agenda.Feed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode agenda document: %w", err)
	}
	return &feed, nil
}
