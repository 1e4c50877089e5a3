package memory

import (
	"context"
	"fmt"

	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/port"
	"github.com/coopware/grocery/internal/core/serviceerrors"
)

// orderIDPrefix is "R" for restock rather than "O", which reads like a zero.
const orderIDPrefix = "R"

// OrderRepository keeps outstanding restock orders in placement order and owns
// the order id sequence. Processed orders are removed for good.
type OrderRepository struct {
	orders []*domain.Order
	seq    int
}

func NewOrderRepository() port.OrderPort {
	return &OrderRepository{}
}

func (r *OrderRepository) Insert(_ context.Context, order *domain.Order) error {
	r.seq++
	order.ID = fmt.Sprintf("%s%d", orderIDPrefix, r.seq)
	r.orders = append(r.orders, order)
	return nil
}

func (r *OrderRepository) Search(_ context.Context, orderID string) (*domain.Order, error) {
	for _, order := range r.orders {
		if order.ID == orderID {
			return order, nil
		}
	}
	return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
}

func (r *OrderRepository) Remove(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := r.Search(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for i, o := range r.orders {
		if o == order {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}
	return order, nil
}

func (r *OrderRepository) Outstanding(_ context.Context) ([]*domain.Order, error) {
	snapshot := make([]*domain.Order, len(r.orders))
	copy(snapshot, r.orders)
	return snapshot, nil
}

func (r *OrderRepository) Sequence(_ context.Context) (int, error) {
	return r.seq, nil
}

func (r *OrderRepository) Restore(_ context.Context, orders []*domain.Order, seq int) error {
	r.orders = orders
	r.seq = seq
	return nil
}
