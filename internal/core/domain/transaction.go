package domain

import "time"

type TransactionStatus string

const (
	TransactionOpen   TransactionStatus = "open"
	TransactionClosed TransactionStatus = "closed"
)

// LineItem is one product purchase within a transaction. The line total is
// captured from the product's price when the item is added; later price
// changes never alter it.
type LineItem struct {
	Product   *Product
	Quantity  int
	LineTotal Amount
}

// Transaction is a member checkout. It starts open, accumulates line items,
// and is closed exactly once; stock effects are applied at close.
type Transaction struct {
	ID     string
	Date   time.Time
	Status TransactionStatus
	Items  []LineItem
}

func NewTransaction(date time.Time) *Transaction {
	return &Transaction{
		Date:   date,
		Status: TransactionOpen,
	}
}

// AddItem appends a line item for the product at its current price and returns
// the captured line total.
func (t *Transaction) AddItem(product *Product, quantity int) Amount {
	lineTotal := product.Price.Multiply(quantity)
	t.Items = append(t.Items, LineItem{
		Product:   product,
		Quantity:  quantity,
		LineTotal: lineTotal,
	})
	return lineTotal
}

// TotalCost sums the captured line totals.
func (t *Transaction) TotalCost() Amount {
	total := Amount(0)
	for _, item := range t.Items {
		total = total.Add(item.LineTotal)
	}
	return total
}

func (t *Transaction) Close() {
	t.Status = TransactionClosed
}

func (t *Transaction) IsClosed() bool {
	return t.Status == TransactionClosed
}

// WithinRange reports whether the transaction date falls within [start, end],
// both ends inclusive.
func (t *Transaction) WithinRange(start, end time.Time) bool {
	return !t.Date.Before(start) && !t.Date.After(end)
}
