package port

import (
	"context"

	"github.com/coopware/grocery/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// StockPort is the product collection. Insertion order is preserved by All
// and ByNamePrefix; product id matching is case-insensitive.
type StockPort interface {
	Insert(ctx context.Context, product *domain.Product) error
	Search(ctx context.Context, productID string) (*domain.Product, error)
	ByNamePrefix(ctx context.Context, prefix string) ([]*domain.Product, error)
	All(ctx context.Context) ([]*domain.Product, error)
	Restore(ctx context.Context, products []*domain.Product) error
}
