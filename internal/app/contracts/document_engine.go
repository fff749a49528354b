package contracts

import (
	"context"

	"github.com/google/uuid"
)

// DocumentEngine is the opaque store behind the resource API. It owns id
// assignment, durability and concurrency control; this layer only depends on
// the four-operation contract. Search and Count consume the canonical filter
// document produced by the queries package and must be given identical
// filters within one request.
type DocumentEngine interface {
	Put(ctx context.Context, kind string, document []byte) (uuid.UUID, error)
	// Get returns (nil, nil) when the document is absent.
	Get(ctx context.Context, kind string, id uuid.UUID) ([]byte, error)
	Search(ctx context.Context, kind string, filter []byte) ([]uuid.UUID, error)
	Count(ctx context.Context, kind string, filter []byte) (int, error)
}
