package contracts

import (
	"context"

	"github.com/google/uuid"
)

// PayloadArchiveService stores the stored form of created resources in an
// object bucket for out-of-band inspection. Best-effort, like event publishing.
type PayloadArchiveService interface {
	ArchiveResource(ctx context.Context, kind string, id uuid.UUID, document []byte) error
}
