package domain

import (
	"testing"
	"time"
)

func TestNewTransaction(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	transaction := NewTransaction(date)

	if transaction.ID != "" {
		t.Fatalf("expected empty ID before insert, got %q", transaction.ID)
	}
	if !transaction.Date.Equal(date) {
		t.Fatalf("expected Date %v, got %v", date, transaction.Date)
	}
	if transaction.Status != TransactionOpen {
		t.Fatalf("expected status open, got %q", transaction.Status)
	}
	if transaction.IsClosed() {
		t.Fatal("new transaction must not be closed")
	}
}

func TestTransaction_AddItem_CapturesPrice(t *testing.T) {
	product := NewProduct("Coffee", "C1", 5, 20, NewAmountFromCents(1000))
	transaction := NewTransaction(time.Now())

	lineTotal := transaction.AddItem(product, 3)
	if lineTotal != 3000 {
		t.Fatalf("expected line total 3000, got %d", lineTotal)
	}

	// a later price change must not touch the captured line total
	product.Price = NewAmountFromCents(2000)
	if transaction.Items[0].LineTotal != 3000 {
		t.Fatalf("expected captured line total 3000, got %d", transaction.Items[0].LineTotal)
	}
	if transaction.TotalCost() != 3000 {
		t.Fatalf("expected total cost 3000, got %d", transaction.TotalCost())
	}
}

func TestTransaction_TotalCost(t *testing.T) {
	coffee := NewProduct("Coffee", "C1", 5, 20, NewAmountFromCents(1000))
	tea := NewProduct("Tea", "T1", 5, 20, NewAmountFromCents(250))

	transaction := NewTransaction(time.Now())
	if transaction.TotalCost() != 0 {
		t.Fatalf("expected empty transaction total 0, got %d", transaction.TotalCost())
	}

	transaction.AddItem(coffee, 2)
	transaction.AddItem(tea, 4)
	if got := transaction.TotalCost(); got != 3000 {
		t.Fatalf("expected total 3000, got %d", got)
	}
}

func TestTransaction_Close(t *testing.T) {
	transaction := NewTransaction(time.Now())
	transaction.Close()
	if !transaction.IsClosed() {
		t.Fatal("expected transaction to be closed")
	}
}

func TestTransaction_WithinRange(t *testing.T) {
	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	transaction := NewTransaction(date)

	day := 24 * time.Hour
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{"inside range", date.Add(-day), date.Add(day), true},
		{"start boundary", date, date.Add(day), true},
		{"end boundary", date.Add(-day), date, true},
		{"exact match", date, date, true},
		{"before range", date.Add(day), date.Add(2 * day), false},
		{"after range", date.Add(-2 * day), date.Add(-day), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transaction.WithinRange(tt.start, tt.end); got != tt.expected {
				t.Errorf("WithinRange() = %v, want %v", got, tt.expected)
			}
		})
	}
}
