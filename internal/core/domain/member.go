package domain

import "time"

// Member is a coop member together with their completed transactions. The
// transaction history is append-only; removing a member does not destroy the
// transactions it references, they remain in the transaction list.
type Member struct {
	ID           string
	Name         string
	Address      string
	Phone        string
	JoinedAt     time.Time
	FeePaid      Amount
	Transactions []*Transaction
}

func NewMember(name, address, phone string, joinedAt time.Time, feePaid Amount) *Member {
	return &Member{
		Name:     name,
		Address:  address,
		Phone:    phone,
		JoinedAt: joinedAt,
		FeePaid:  feePaid,
	}
}

func (m *Member) AddTransaction(t *Transaction) {
	m.Transactions = append(m.Transactions, t)
}

// TransactionsBetween returns the member's transactions whose date falls within
// [start, end], both ends inclusive, preserving history order.
func (m *Member) TransactionsBetween(start, end time.Time) []*Transaction {
	var selected []*Transaction
	for _, t := range m.Transactions {
		if t.WithinRange(start, end) {
			selected = append(selected, t)
		}
	}
	return selected
}
