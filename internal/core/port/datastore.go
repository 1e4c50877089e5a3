package port

import (
	"context"

	"github.com/coopware/grocery/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// DataStorePort persists and restores a full facade snapshot as an opaque
// blob. Load returns a not-found service error when no snapshot exists yet.
type DataStorePort interface {
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	Load(ctx context.Context) (*domain.Snapshot, error)
}
