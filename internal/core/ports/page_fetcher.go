// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/tldr/internal/core/domain"
)

// PageFetcher defines the interface for retrieving a single page from a page host.
//
//go:generate mockgen -source=page_fetcher.go -destination=mocks/mock_page_fetcher.go -package=mocks
type PageFetcher interface {
	// Fetch performs exactly one attempt to retrieve page from src.
	//
	// On success the caller owns the returned body and must close it.
	// Failures are reported as *domain.RequestError or *domain.ResponseError.
	Fetch(ctx context.Context, src domain.Source, page domain.PageRef) (io.ReadCloser, error)
}
