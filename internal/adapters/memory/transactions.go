package memory

import (
	"context"
	"fmt"

	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/port"
	"github.com/coopware/grocery/internal/core/serviceerrors"
)

const transactionIDPrefix = "T"

// TransactionRepository keeps every transaction ever begun, in creation order,
// and owns the transaction id sequence.
type TransactionRepository struct {
	transactions []*domain.Transaction
	seq          int
}

func NewTransactionRepository() port.TransactionPort {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Insert(_ context.Context, transaction *domain.Transaction) error {
	r.seq++
	transaction.ID = fmt.Sprintf("%s%d", transactionIDPrefix, r.seq)
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *TransactionRepository) FindByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.ID == transactionID {
			return transaction, nil
		}
	}
	return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
}

func (r *TransactionRepository) All(_ context.Context) ([]*domain.Transaction, error) {
	snapshot := make([]*domain.Transaction, len(r.transactions))
	copy(snapshot, r.transactions)
	return snapshot, nil
}

func (r *TransactionRepository) Sequence(_ context.Context) (int, error) {
	return r.seq, nil
}

func (r *TransactionRepository) Restore(_ context.Context, transactions []*domain.Transaction, seq int) error {
	r.transactions = transactions
	r.seq = seq
	return nil
}
