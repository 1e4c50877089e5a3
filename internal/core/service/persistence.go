package service

import (
	"context"

	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/logger"
)

// Save writes a snapshot of all four collections and their id sequences
// through the data store.
func (g *Grocery) Save(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	snapshot, err := g.snapshot(ctx)
	if err != nil {
		logger.Error(ctx, "persistence: snapshot failed", err, nil)
		return err
	}
	if err := g.store.Save(ctx, snapshot); err != nil {
		logger.Error(ctx, "persistence: save failed", err, nil)
		return err
	}

	logger.Info(ctx, "State saved", map[string]any{
		"products":     len(snapshot.Products),
		"members":      len(snapshot.Members),
		"orders":       len(snapshot.Orders),
		"transactions": len(snapshot.Transactions),
	})
	return nil
}

// Load replaces the facade state with the stored snapshot. Id generation
// continues from the restored sequences, so ids never collide with persisted
// ones.
func (g *Grocery) Load(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	snapshot, err := g.store.Load(ctx)
	if err != nil {
		logger.Error(ctx, "persistence: load failed", err, nil)
		return err
	}

	if err := g.stock.Restore(ctx, snapshot.Products); err != nil {
		return err
	}
	if err := g.members.Restore(ctx, snapshot.Members, snapshot.MemberSeq); err != nil {
		return err
	}
	if err := g.orders.Restore(ctx, snapshot.Orders, snapshot.OrderSeq); err != nil {
		return err
	}
	if err := g.transactions.Restore(ctx, snapshot.Transactions, snapshot.TransactionSeq); err != nil {
		return err
	}

	logger.Info(ctx, "State loaded", map[string]any{
		"products":     len(snapshot.Products),
		"members":      len(snapshot.Members),
		"orders":       len(snapshot.Orders),
		"transactions": len(snapshot.Transactions),
	})
	return nil
}

func (g *Grocery) snapshot(ctx context.Context) (*domain.Snapshot, error) {
	products, err := g.stock.All(ctx)
	if err != nil {
		return nil, err
	}
	members, err := g.members.All(ctx)
	if err != nil {
		return nil, err
	}
	memberSeq, err := g.members.Sequence(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := g.orders.Outstanding(ctx)
	if err != nil {
		return nil, err
	}
	orderSeq, err := g.orders.Sequence(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := g.transactions.All(ctx)
	if err != nil {
		return nil, err
	}
	transactionSeq, err := g.transactions.Sequence(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Products:       products,
		Members:        members,
		Orders:         orders,
		Transactions:   transactions,
		MemberSeq:      memberSeq,
		OrderSeq:       orderSeq,
		TransactionSeq: transactionSeq,
	}, nil
}
