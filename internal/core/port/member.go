package port

import (
	"context"

	"github.com/coopware/grocery/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// MemberPort is the member collection. Insert assigns the generated member id;
// the repository owns the id sequence and exposes it for persistence.
type MemberPort interface {
	Insert(ctx context.Context, member *domain.Member) error
	Search(ctx context.Context, memberID string) (*domain.Member, error)
	Remove(ctx context.Context, memberID string) (*domain.Member, error)
	ByNamePrefix(ctx context.Context, prefix string) ([]*domain.Member, error)
	All(ctx context.Context) ([]*domain.Member, error)
	Sequence(ctx context.Context) (int, error)
	Restore(ctx context.Context, members []*domain.Member, seq int) error
}
