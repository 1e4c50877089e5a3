package service

import (
	"context"

	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/dto"
	"github.com/coopware/grocery/internal/core/logger"
)

// BeginTransaction opens a new transaction under a generated id. No member is
// attached until EndTransaction.
func (g *Grocery) BeginTransaction(ctx context.Context) *dto.TransactionResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	transaction := domain.NewTransaction(g.now())
	if err := g.transactions.Insert(ctx, transaction); err != nil {
		logger.Error(ctx, "transaction: insert failed", err, nil)
		return transactionResult(dto.CodeOperationFailed, nil)
	}

	logger.Info(ctx, "Transaction begun", map[string]any{"transaction_id": transaction.ID})
	return transactionResult(dto.CodeOK, transaction)
}

// AddTransactionLineItem appends a line item priced at the product's current
// price and reports the line total plus the transaction's running total.
// Stock is untouched here; it is only depleted when the transaction ends.
func (g *Grocery) AddTransactionLineItem(ctx context.Context, request *dto.AddLineItemRequest) *dto.LineItemResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	transaction, err := g.transactions.FindByID(ctx, request.TransactionID)
	if err != nil {
		return &dto.LineItemResult{Code: dto.CodeTransactionNotFound}
	}
	if transaction.IsClosed() {
		return &dto.LineItemResult{Code: dto.CodeInvalidState, TransactionID: transaction.ID}
	}
	if len(transaction.Items) >= g.maxLineItems {
		logger.Warn(ctx, "checkout: line item limit reached", map[string]any{
			"transaction_id": transaction.ID,
			"limit":          g.maxLineItems,
		})
		return &dto.LineItemResult{Code: dto.CodeOperationFailed, TransactionID: transaction.ID}
	}

	product, err := g.stock.Search(ctx, request.ProductID)
	if err != nil {
		return &dto.LineItemResult{Code: dto.CodeProductNotFound, TransactionID: transaction.ID}
	}

	lineTotal := transaction.AddItem(product, request.Quantity)
	return &dto.LineItemResult{
		Code:          dto.CodeOK,
		TransactionID: transaction.ID,
		LineTotal:     lineTotal.Cents(),
		RunningTotal:  transaction.TotalCost().Cents(),
	}
}

// EndTransaction attaches the transaction to the member's history, depletes
// stock for every line item, and places a restock order for each product left
// at or below its reorder level. The transaction is closed and cannot be
// ended or extended again.
func (g *Grocery) EndTransaction(ctx context.Context, request *dto.EndTransactionRequest) *dto.TransactionResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	transaction, err := g.transactions.FindByID(ctx, request.TransactionID)
	if err != nil {
		return transactionResult(dto.CodeTransactionNotFound, nil)
	}
	if transaction.IsClosed() {
		return transactionResult(dto.CodeInvalidState, nil)
	}
	member, err := g.members.Search(ctx, request.MemberID)
	if err != nil {
		return transactionResult(dto.CodeNoSuchMember, nil)
	}

	member.AddTransaction(transaction)
	g.depleteStock(ctx, transaction)
	transaction.Close()

	logger.Info(ctx, "Transaction ended", map[string]any{
		"transaction_id": transaction.ID,
		"member_id":      member.ID,
		"total":          transaction.TotalCost().Cents(),
	})
	return transactionResult(dto.CodeOK, transaction)
}

// depleteStock applies a finished checkout to inventory: each line item
// decrements its product's stock once, and a product that lands at or below
// its reorder level gets a restock order dated now.
func (g *Grocery) depleteStock(ctx context.Context, transaction *domain.Transaction) {
	for _, item := range transaction.Items {
		product := item.Product
		product.StockOnHand -= item.Quantity
		if product.NeedsRestock() {
			// a failed order insert is logged inside placeRestockOrder;
			// the checkout itself still completes
			_, _ = g.placeRestockOrder(ctx, product)
		}
	}
}
