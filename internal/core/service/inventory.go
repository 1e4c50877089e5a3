package service

import (
	"context"
	"iter"

	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/dto"
	"github.com/coopware/grocery/internal/core/logger"
)

// AddProduct stocks a new product under the caller-supplied id and
// unconditionally places an initial restock order for twice the reorder
// level. A duplicate id is rejected before any order is placed.
func (g *Grocery) AddProduct(ctx context.Context, request *dto.AddProductRequest) *dto.ProductResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	product := domain.NewProduct(request.Name, request.ProductID,
		request.ReorderLevel, request.InitialStock, domain.NewAmountFromCents(request.Price))
	if err := g.stock.Insert(ctx, product); err != nil {
		logger.Error(ctx, "stock: insert failed", err, map[string]any{
			"product_id": request.ProductID,
		})
		return productResult(failCode(err), nil)
	}

	if _, err := g.placeRestockOrder(ctx, product); err != nil {
		return productResult(dto.CodeOperationFailed, nil)
	}

	logger.Info(ctx, "Product added", map[string]any{"product_id": product.ID})
	return productResult(dto.CodeOK, product)
}

func (g *Grocery) SearchProduct(ctx context.Context, productID string) *dto.ProductResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	product, err := g.stock.Search(ctx, productID)
	if err != nil {
		return productResult(dto.CodeProductNotFound, nil)
	}
	return productResult(dto.CodeOK, product)
}

// ChangePrice sets the product's current price. Line items already captured
// keep the price they were sold at.
func (g *Grocery) ChangePrice(ctx context.Context, request *dto.ChangePriceRequest) *dto.ProductResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	product, err := g.stock.Search(ctx, request.ProductID)
	if err != nil {
		return productResult(dto.CodeProductNotFound, nil)
	}
	product.Price = domain.NewAmountFromCents(request.Price)

	logger.Info(ctx, "Price changed", map[string]any{
		"product_id": product.ID,
		"price":      request.Price,
	})
	return productResult(dto.CodeOK, product)
}

func (g *Grocery) ListProducts(ctx context.Context) iter.Seq[dto.ProductResult] {
	g.mu.Lock()
	defer g.mu.Unlock()

	products, err := g.stock.All(ctx)
	if err != nil {
		logger.Error(ctx, "stock: list failed", err, nil)
		return emptyResults[dto.ProductResult]()
	}
	return lazyResults(products, func(p *domain.Product) dto.ProductResult {
		return *productResult(dto.CodeOK, p)
	})
}

func (g *Grocery) FindProductsByNamePrefix(ctx context.Context, prefix string) iter.Seq[dto.ProductResult] {
	g.mu.Lock()
	defer g.mu.Unlock()

	products, err := g.stock.ByNamePrefix(ctx, prefix)
	if err != nil {
		logger.Error(ctx, "stock: prefix search failed", err, map[string]any{"prefix": prefix})
		return emptyResults[dto.ProductResult]()
	}
	return lazyResults(products, func(p *domain.Product) dto.ProductResult {
		return *productResult(dto.CodeOK, p)
	})
}

func (g *Grocery) ListOutstandingOrders(ctx context.Context) iter.Seq[dto.OrderResult] {
	g.mu.Lock()
	defer g.mu.Unlock()

	orders, err := g.orders.Outstanding(ctx)
	if err != nil {
		logger.Error(ctx, "order: list failed", err, nil)
		return emptyResults[dto.OrderResult]()
	}
	return lazyResults(orders, orderResult)
}

// ProcessShipment receives the ordered quantity into stock and removes the
// order permanently; a second call with the same id finds nothing.
func (g *Grocery) ProcessShipment(ctx context.Context, orderID string) *dto.ProductResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	order, err := g.orders.Search(ctx, orderID)
	if err != nil {
		return productResult(dto.CodeOrderNotFound, nil)
	}

	product := order.Product
	product.StockOnHand += order.Quantity
	if _, err := g.orders.Remove(ctx, orderID); err != nil {
		logger.Error(ctx, "order: remove failed", err, map[string]any{"order_id": orderID})
		return productResult(dto.CodeOperationFailed, nil)
	}

	logger.Info(ctx, "Shipment processed", map[string]any{
		"order_id":      orderID,
		"product_id":    product.ID,
		"stock_on_hand": product.StockOnHand,
	})
	return productResult(dto.CodeOK, product)
}

func (g *Grocery) placeRestockOrder(ctx context.Context, product *domain.Product) (*domain.Order, error) {
	order := domain.NewRestockOrder(product, g.now())
	if err := g.orders.Insert(ctx, order); err != nil {
		logger.Error(ctx, "order: insert failed", err, map[string]any{
			"product_id": product.ID,
		})
		return nil, err
	}

	logger.Info(ctx, "Restock order placed", map[string]any{
		"order_id":   order.ID,
		"product_id": product.ID,
		"quantity":   order.Quantity,
	})
	return order, nil
}
