package viewcache

import (
	"context"

	"invoice-dashboard/internal/usecase/shared"
)

// Entry is one stored render of a view.
type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Generation counts the invalidations of a view path.
type Generation uint64

// Store keeps renders per view path. A path holds one entry per variant
// (the request query string) and Invalidate drops all of them.
//
// A render is stored only if the path's generation is still the one read
// before rendering; Set reports false when an invalidation happened in between.
type Store interface {
	shared.ViewInvalidator
	Get(ctx context.Context, path, variant string) (Entry, bool)
	Generation(ctx context.Context, path string) (Generation, bool)
	Set(ctx context.Context, path, variant string, gen Generation, e Entry) bool
}
