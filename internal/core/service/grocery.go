package service

import (
	"iter"
	"sync"
	"time"

	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/dto"
	"github.com/coopware/grocery/internal/core/port"
	"github.com/coopware/grocery/internal/core/serviceerrors"
)

const defaultMaxLineItems = 100

// Grocery is the facade through which every business operation runs. It
// orchestrates the four collections and owns the one rule coupling checkouts
// to inventory: depleting a product to or below its reorder level places a
// restock order for twice that level.
//
// All operations are serialized behind a single mutex; the repositories
// themselves are not safe for concurrent mutation.
type Grocery struct {
	mu           sync.Mutex
	stock        port.StockPort
	members      port.MemberPort
	orders       port.OrderPort
	transactions port.TransactionPort
	store        port.DataStorePort
	maxLineItems int
	now          func() time.Time
}

func NewGrocery(
	stock port.StockPort,
	members port.MemberPort,
	orders port.OrderPort,
	transactions port.TransactionPort,
	store port.DataStorePort,
	maxLineItems int,
) *Grocery {
	if maxLineItems <= 0 {
		maxLineItems = defaultMaxLineItems
	}
	return &Grocery{
		stock:        stock,
		members:      members,
		orders:       orders,
		transactions: transactions,
		store:        store,
		maxLineItems: maxLineItems,
		now:          time.Now,
	}
}

// failCode translates an unexpected repository error into a result code.
// Not-found errors are translated at the call site instead, where the entity
// being looked up is known.
func failCode(err error) dto.Code {
	switch {
	case serviceerrors.IsOfKind(err, serviceerrors.KindConflict):
		return dto.CodeDuplicateID
	case serviceerrors.IsOfKind(err, serviceerrors.KindInvalidState):
		return dto.CodeInvalidState
	default:
		return dto.CodeOperationFailed
	}
}

// lazyResults projects a snapshot of entities into detached result copies,
// one element at a time as the caller consumes the sequence.
func lazyResults[E, R any](entities []E, project func(E) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, entity := range entities {
			if !yield(project(entity)) {
				return
			}
		}
	}
}

func emptyResults[R any]() iter.Seq[R] {
	return func(func(R) bool) {}
}

func memberResult(code dto.Code, member *domain.Member) *dto.MemberResult {
	result := &dto.MemberResult{Code: code}
	if member != nil {
		result.MemberID = member.ID
		result.Name = member.Name
		result.Address = member.Address
		result.Phone = member.Phone
		result.JoinedAt = member.JoinedAt
		result.FeePaid = member.FeePaid.Cents()
	}
	return result
}

func productResult(code dto.Code, product *domain.Product) *dto.ProductResult {
	result := &dto.ProductResult{Code: code}
	if product != nil {
		result.ProductID = product.ID
		result.Name = product.Name
		result.StockOnHand = product.StockOnHand
		result.ReorderLevel = product.ReorderLevel
		result.Price = product.Price.Cents()
	}
	return result
}

func orderResult(order *domain.Order) dto.OrderResult {
	return dto.OrderResult{
		Code:        dto.CodeOK,
		OrderID:     order.ID,
		ProductID:   order.Product.ID,
		ProductName: order.Product.Name,
		Quantity:    order.Quantity,
		PlacedAt:    order.PlacedAt,
	}
}

func transactionResult(code dto.Code, transaction *domain.Transaction) *dto.TransactionResult {
	result := &dto.TransactionResult{Code: code}
	if transaction != nil {
		result.TransactionID = transaction.ID
		result.Date = transaction.Date
		result.Total = transaction.TotalCost().Cents()
		result.Items = make([]dto.TransactionItem, len(transaction.Items))
		for i, item := range transaction.Items {
			result.Items[i] = dto.TransactionItem{
				ProductID:   item.Product.ID,
				ProductName: item.Product.Name,
				Quantity:    item.Quantity,
				LineTotal:   item.LineTotal.Cents(),
			}
		}
	}
	return result
}
