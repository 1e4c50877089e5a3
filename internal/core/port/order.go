package port

import (
	"context"

	"github.com/coopware/grocery/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// OrderPort holds outstanding restock orders only; there is no archive of
// processed orders. Insert assigns the generated order id.
type OrderPort interface {
	Insert(ctx context.Context, order *domain.Order) error
	Search(ctx context.Context, orderID string) (*domain.Order, error)
	Remove(ctx context.Context, orderID string) (*domain.Order, error)
	Outstanding(ctx context.Context) ([]*domain.Order, error)
	Sequence(ctx context.Context) (int, error)
	Restore(ctx context.Context, orders []*domain.Order, seq int) error
}
