package pages

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tldr/internal/core/ports"
)

// NodeID is the unique identifier for the page fetcher Graft node.
const NodeID graft.ID = "adapter.pages"

func init() {
	graft.Register(graft.Node[ports.PageFetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PageFetcher, error) {
			return NewFetcher(), nil
		},
	})
}
