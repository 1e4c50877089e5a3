package port

import (
	"context"

	"github.com/coopware/grocery/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// TransactionPort is the transaction collection. Transactions are never
// removed, even when the member that owns them is. Insert assigns the
// generated transaction id.
type TransactionPort interface {
	Insert(ctx context.Context, transaction *domain.Transaction) error
	FindByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	All(ctx context.Context) ([]*domain.Transaction, error)
	Sequence(ctx context.Context) (int, error)
	Restore(ctx context.Context, transactions []*domain.Transaction, seq int) error
}
