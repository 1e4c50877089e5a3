package service

import (
	"testing"

	"github.com/coopware/grocery/internal/adapters/memory"
	"github.com/coopware/grocery/internal/core/dto"
)

func TestBeginTransaction(t *testing.T) {
	grocery := newTestGrocery(t)
	ctx := t.Context()

	first := grocery.BeginTransaction(ctx)
	if !first.Code.IsOK() {
		t.Fatalf("expected ok, got %q", first.Code)
	}
	if first.TransactionID != "T1" {
		t.Fatalf("expected T1, got %s", first.TransactionID)
	}
	if !first.Date.Equal(testClock) {
		t.Fatalf("expected date %v, got %v", testClock, first.Date)
	}

	second := grocery.BeginTransaction(ctx)
	if second.TransactionID != "T2" {
		t.Fatalf("expected T2, got %s", second.TransactionID)
	}
}

func TestAddTransactionLineItem(t *testing.T) {
	grocery := newTestGrocery(t)
	ctx := t.Context()
	addProduct(t, grocery, "C1", "Coffee", 5, 20, 1000)
	addProduct(t, grocery, "T1P", "Tea", 3, 10, 250)

	transaction := grocery.BeginTransaction(ctx)

	first := grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
		TransactionID: transaction.TransactionID, ProductID: "C1", Quantity: 3,
	})
	if !first.Code.IsOK() {
		t.Fatalf("expected ok, got %q", first.Code)
	}
	if first.LineTotal != 3000 {
		t.Fatalf("expected line total 3000, got %d", first.LineTotal)
	}
	if first.RunningTotal != 3000 {
		t.Fatalf("expected running total 3000, got %d", first.RunningTotal)
	}

	second := grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
		TransactionID: transaction.TransactionID, ProductID: "T1P", Quantity: 4,
	})
	if second.LineTotal != 1000 {
		t.Fatalf("expected line total 1000, got %d", second.LineTotal)
	}
	if second.RunningTotal != 4000 {
		t.Fatalf("expected running total 4000, got %d", second.RunningTotal)
	}

	// stock stays put until the transaction ends
	if found := grocery.SearchProduct(ctx, "C1"); found.StockOnHand != 20 {
		t.Fatalf("expected stock 20 before EndTransaction, got %d", found.StockOnHand)
	}
}

func TestAddTransactionLineItem_Errors(t *testing.T) {
	grocery := newTestGrocery(t)
	ctx := t.Context()
	addProduct(t, grocery, "C1", "Coffee", 5, 20, 1000)
	memberID := addMember(t, grocery, "Rosa Diaz")

	t.Run("unknown transaction", func(t *testing.T) {
		result := grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
			TransactionID: "T999", ProductID: "C1", Quantity: 1,
		})
		if result.Code != dto.CodeTransactionNotFound {
			t.Fatalf("expected %q, got %q", dto.CodeTransactionNotFound, result.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		transaction := grocery.BeginTransaction(ctx)
		result := grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
			TransactionID: transaction.TransactionID, ProductID: "X9", Quantity: 1,
		})
		if result.Code != dto.CodeProductNotFound {
			t.Fatalf("expected %q, got %q", dto.CodeProductNotFound, result.Code)
		}
	})

	t.Run("closed transaction", func(t *testing.T) {
		transaction := grocery.BeginTransaction(ctx)
		grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
			TransactionID: transaction.TransactionID, MemberID: memberID,
		})
		result := grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
			TransactionID: transaction.TransactionID, ProductID: "C1", Quantity: 1,
		})
		if result.Code != dto.CodeInvalidState {
			t.Fatalf("expected %q, got %q", dto.CodeInvalidState, result.Code)
		}
	})
}

func TestAddTransactionLineItem_Limit(t *testing.T) {
	grocery := NewGrocery(
		memory.NewStockRepository(),
		memory.NewMemberRepository(),
		memory.NewOrderRepository(),
		memory.NewTransactionRepository(),
		nil,
		2,
	)
	ctx := t.Context()
	addProduct(t, grocery, "C1", "Coffee", 5, 20, 1000)

	transaction := grocery.BeginTransaction(ctx)
	for i := 0; i < 2; i++ {
		result := grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
			TransactionID: transaction.TransactionID, ProductID: "C1", Quantity: 1,
		})
		if !result.Code.IsOK() {
			t.Fatalf("expected ok on item %d, got %q", i+1, result.Code)
		}
	}

	result := grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
		TransactionID: transaction.TransactionID, ProductID: "C1", Quantity: 1,
	})
	if result.Code != dto.CodeOperationFailed {
		t.Fatalf("expected %q past the limit, got %q", dto.CodeOperationFailed, result.Code)
	}
}

func TestEndTransaction_DepletesStockAndReorders(t *testing.T) {
	grocery := newTestGrocery(t)
	ctx := t.Context()
	memberID := addMember(t, grocery, "Rosa Diaz")
	addProduct(t, grocery, "C1", "Coffee", 5, 12, 1000)

	transaction := grocery.BeginTransaction(ctx)
	grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
		TransactionID: transaction.TransactionID, ProductID: "C1", Quantity: 8,
	})

	ended := grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
		TransactionID: transaction.TransactionID, MemberID: memberID,
	})
	if !ended.Code.IsOK() {
		t.Fatalf("expected ok, got %q", ended.Code)
	}
	if ended.Total != 8000 {
		t.Fatalf("expected total 8000, got %d", ended.Total)
	}

	// 12 - 8 = 4, at or below the reorder level of 5
	if found := grocery.SearchProduct(ctx, "C1"); found.StockOnHand != 4 {
		t.Fatalf("expected stock 4, got %d", found.StockOnHand)
	}

	// the initial stocking order plus the checkout-triggered one
	orders := collect(grocery.ListOutstandingOrders(ctx))
	if len(orders) != 2 {
		t.Fatalf("expected 2 outstanding orders, got %d", len(orders))
	}
	if orders[1].Quantity != 10 {
		t.Fatalf("expected reorder quantity 10, got %d", orders[1].Quantity)
	}
}

func TestEndTransaction_AboveReorderLevelPlacesNoOrder(t *testing.T) {
	grocery := newTestGrocery(t)
	ctx := t.Context()
	memberID := addMember(t, grocery, "Rosa Diaz")
	addProduct(t, grocery, "C1", "Coffee", 5, 12, 1000)

	transaction := grocery.BeginTransaction(ctx)
	grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
		TransactionID: transaction.TransactionID, ProductID: "C1", Quantity: 6,
	})
	grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
		TransactionID: transaction.TransactionID, MemberID: memberID,
	})

	// 12 - 6 = 6, still above the reorder level of 5; only the initial order remains
	if found := grocery.SearchProduct(ctx, "C1"); found.StockOnHand != 6 {
		t.Fatalf("expected stock 6, got %d", found.StockOnHand)
	}
	if orders := collect(grocery.ListOutstandingOrders(ctx)); len(orders) != 1 {
		t.Fatalf("expected 1 outstanding order, got %d", len(orders))
	}
}

func TestEndTransaction_PriceChangeIsNotRetroactive(t *testing.T) {
	grocery := newTestGrocery(t)
	ctx := t.Context()
	memberID := addMember(t, grocery, "Rosa Diaz")
	addProduct(t, grocery, "C1", "Coffee", 5, 20, 1000)

	transaction := grocery.BeginTransaction(ctx)
	grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
		TransactionID: transaction.TransactionID, ProductID: "C1", Quantity: 3,
	})

	grocery.ChangePrice(ctx, &dto.ChangePriceRequest{ProductID: "C1", Price: 2000})

	ended := grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
		TransactionID: transaction.TransactionID, MemberID: memberID,
	})
	if ended.Total != 3000 {
		t.Fatalf("expected total at the captured price, 3000, got %d", ended.Total)
	}
	if ended.Items[0].LineTotal != 3000 {
		t.Fatalf("expected captured line total 3000, got %d", ended.Items[0].LineTotal)
	}
}

func TestEndTransaction_Errors(t *testing.T) {
	grocery := newTestGrocery(t)
	ctx := t.Context()
	memberID := addMember(t, grocery, "Rosa Diaz")
	addProduct(t, grocery, "C1", "Coffee", 5, 12, 1000)

	t.Run("unknown transaction", func(t *testing.T) {
		result := grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
			TransactionID: "T999", MemberID: memberID,
		})
		if result.Code != dto.CodeTransactionNotFound {
			t.Fatalf("expected %q, got %q", dto.CodeTransactionNotFound, result.Code)
		}
	})

	t.Run("unknown member leaves the transaction open", func(t *testing.T) {
		transaction := grocery.BeginTransaction(ctx)
		result := grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
			TransactionID: transaction.TransactionID, MemberID: "M999",
		})
		if result.Code != dto.CodeNoSuchMember {
			t.Fatalf("expected %q, got %q", dto.CodeNoSuchMember, result.Code)
		}

		// the transaction can still be ended with the right member
		retried := grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
			TransactionID: transaction.TransactionID, MemberID: memberID,
		})
		if !retried.Code.IsOK() {
			t.Fatalf("expected ok on retry, got %q", retried.Code)
		}
	})

	t.Run("double end depletes stock only once", func(t *testing.T) {
		before := grocery.SearchProduct(ctx, "C1").StockOnHand

		transaction := grocery.BeginTransaction(ctx)
		grocery.AddTransactionLineItem(ctx, &dto.AddLineItemRequest{
			TransactionID: transaction.TransactionID, ProductID: "C1", Quantity: 2,
		})
		grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
			TransactionID: transaction.TransactionID, MemberID: memberID,
		})

		again := grocery.EndTransaction(ctx, &dto.EndTransactionRequest{
			TransactionID: transaction.TransactionID, MemberID: memberID,
		})
		if again.Code != dto.CodeInvalidState {
			t.Fatalf("expected %q, got %q", dto.CodeInvalidState, again.Code)
		}
		if found := grocery.SearchProduct(ctx, "C1"); found.StockOnHand != before-2 {
			t.Fatalf("expected stock %d, got %d", before-2, found.StockOnHand)
		}
	})
}
