package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/port"
	"github.com/coopware/grocery/internal/core/serviceerrors"
)

// StockRepository keeps products in insertion order. It is not safe for
// concurrent use; the facade serializes access.
type StockRepository struct {
	products []*domain.Product
}

func NewStockRepository() port.StockPort {
	return &StockRepository{}
}

func (r *StockRepository) Insert(_ context.Context, product *domain.Product) error {
	for _, existing := range r.products {
		if strings.EqualFold(existing.ID, product.ID) {
			return serviceerrors.NewConflictError(fmt.Sprintf("product id %s already in stock", product.ID))
		}
	}
	r.products = append(r.products, product)
	return nil
}

func (r *StockRepository) Search(_ context.Context, productID string) (*domain.Product, error) {
	for _, product := range r.products {
		if strings.EqualFold(product.ID, productID) {
			return product, nil
		}
	}
	return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", productID))
}

func (r *StockRepository) ByNamePrefix(_ context.Context, prefix string) ([]*domain.Product, error) {
	lowered := strings.ToLower(prefix)
	var matched []*domain.Product
	for _, product := range r.products {
		if strings.HasPrefix(strings.ToLower(product.Name), lowered) {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

func (r *StockRepository) All(_ context.Context) ([]*domain.Product, error) {
	snapshot := make([]*domain.Product, len(r.products))
	copy(snapshot, r.products)
	return snapshot, nil
}

func (r *StockRepository) Restore(_ context.Context, products []*domain.Product) error {
	r.products = products
	return nil
}
