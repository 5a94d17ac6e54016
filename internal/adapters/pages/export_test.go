package pages

import "net/http"

// NewFetcherWithClient exports newFetcherWithClient for testing.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return newFetcherWithClient(client)
}
