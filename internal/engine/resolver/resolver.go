// Package resolver locates a page on the page host, falling back from the common pages
// to the platform-specific ones.
package resolver

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
)

// SpanFetchPage is the name of the span recorded around each fetch attempt.
const SpanFetchPage = "fetch.page"

// Span attribute keys.
const (
	AttrPage       = "tldr.page"
	AttrPlatform   = "tldr.platform"
	AttrStatusCode = "http.status_code"
)

// Resolver fetches a page with at most two sequential attempts.
type Resolver struct {
	fetcher  ports.PageFetcher
	tracer   ports.Tracer
	fallback domain.Platform
}

// New creates a Resolver that falls back to the given platform when the common page is unavailable.
func New(fetcher ports.PageFetcher, tracer ports.Tracer, fallback domain.Platform) *Resolver {
	return &Resolver{
		fetcher:  fetcher,
		tracer:   tracer,
		fallback: fallback,
	}
}

// Resolve fetches name from the common pages and, if that attempt fails for any reason,
// once more from the fallback platform. Only the error of the second attempt is returned.
// On success the caller must close the returned body.
func (r *Resolver) Resolve(ctx context.Context, src domain.Source, name string) (io.ReadCloser, error) {
	body, err := r.attempt(ctx, src, domain.PageRef{Name: name, Platform: domain.PlatformCommon})
	if err == nil {
		return body, nil
	}

	return r.attempt(ctx, src, domain.PageRef{Name: name, Platform: r.fallback})
}

func (r *Resolver) attempt(ctx context.Context, src domain.Source, page domain.PageRef) (io.ReadCloser, error) {
	ctx, span := r.tracer.Start(ctx, SpanFetchPage)
	defer span.End()

	span.SetAttribute(AttrPage, page.Name)
	span.SetAttribute(AttrPlatform, page.Platform.String())

	body, err := r.fetcher.Fetch(ctx, src, page)
	if err != nil {
		var respErr *domain.ResponseError
		if errors.As(err, &respErr) {
			span.SetAttribute(AttrStatusCode, respErr.StatusCode)
		}
		span.RecordError(err)
		return nil, err
	}

	return body, nil
}
