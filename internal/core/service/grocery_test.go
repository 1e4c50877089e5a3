package service

import (
	"iter"
	"path/filepath"
	"testing"
	"time"

	"github.com/coopware/grocery/internal/adapters/file"
	"github.com/coopware/grocery/internal/adapters/memory"
	"github.com/coopware/grocery/internal/core/dto"
)

var testClock = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestGrocery(tb testing.TB) *Grocery {
	tb.Helper()
	store := file.NewStore(filepath.Join(tb.TempDir(), "grocery-data.json"))
	grocery := NewGrocery(
		memory.NewStockRepository(),
		memory.NewMemberRepository(),
		memory.NewOrderRepository(),
		memory.NewTransactionRepository(),
		store,
		0,
	)
	grocery.now = func() time.Time { return testClock }
	return grocery
}

func collect[R any](seq iter.Seq[R]) []R {
	var out []R
	for r := range seq {
		out = append(out, r)
	}
	return out
}

func addProduct(tb testing.TB, grocery *Grocery, id, name string, reorderLevel, stock, price int) {
	tb.Helper()
	result := grocery.AddProduct(tb.Context(), &dto.AddProductRequest{
		Name:         name,
		ProductID:    id,
		ReorderLevel: reorderLevel,
		InitialStock: stock,
		Price:        price,
	})
	if !result.Code.IsOK() {
		tb.Fatalf("AddProduct(%s) = %q", id, result.Code)
	}
}

func addMember(tb testing.TB, grocery *Grocery, name string) string {
	tb.Helper()
	result := grocery.AddMember(tb.Context(), &dto.AddMemberRequest{
		Name:     name,
		Address:  "12 Elm St",
		Phone:    "555-0142",
		JoinedAt: testClock,
		FeePaid:  2500,
	})
	if !result.Code.IsOK() {
		tb.Fatalf("AddMember(%s) = %q", name, result.Code)
	}
	return result.MemberID
}
