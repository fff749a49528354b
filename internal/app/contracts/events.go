package contracts

import (
	"context"

	"github.com/google/uuid"
)

// ResourceEventPublisher emits lifecycle events for stored resources.
// Publishing is best-effort: failures are logged by the caller and never fail
// the originating request.
type ResourceEventPublisher interface {
	PublishResourceCreated(ctx context.Context, kind string, id uuid.UUID, document []byte) error
}
