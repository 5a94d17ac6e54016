// Package pages implements the PageFetcher port over HTTP.
package pages

import (
	"context"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/tldr/internal/core/domain"
)

// drainLimit caps how much of an error response body is read before the connection is closed.
const drainLimit = 64 << 10

// Fetcher implements ports.PageFetcher using net/http.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a Fetcher using a dedicated HTTP client.
// Per-attempt timeouts come from domain.Source, so the client itself has none.
func NewFetcher() *Fetcher {
	return newFetcherWithClient(&http.Client{})
}

// newFetcherWithClient creates a Fetcher with a custom http client (used for testing).
func newFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{httpClient: client}
}

// Fetch performs a single GET for page below src.BaseURL.
func (f *Fetcher) Fetch(ctx context.Context, src domain.Source, page domain.PageRef) (io.ReadCloser, error) {
	cancel := context.CancelFunc(func() {})
	if src.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, src.Timeout)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL(src.BaseURL, page), http.NoBody)
	if err != nil {
		cancel()
		return nil, &domain.RequestError{Command: page.Name, Platform: page.Platform, Err: err}
	}
	req.Close = true
	req.Header.Set("Connection", "close")
	req.Header.Set("Accept", "text/plain")
	if src.UserAgent != "" {
		req.Header.Set("User-Agent", src.UserAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, &domain.RequestError{Command: page.Name, Platform: page.Platform, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
		_ = resp.Body.Close()
		cancel()
		return nil, &domain.ResponseError{Command: page.Name, Platform: page.Platform, StatusCode: resp.StatusCode}
	}

	return &body{ReadCloser: resp.Body, cancel: cancel}, nil
}

func pageURL(baseURL string, page domain.PageRef) string {
	return strings.TrimRight(baseURL, "/") + "/" + page.Path()
}

// body releases the attempt's context once the caller is done with the response.
type body struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *body) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
