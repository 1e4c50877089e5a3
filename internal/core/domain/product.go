package domain

// Product is one item in the coop's inventory. Product ids are supplied by the
// caller, unlike member, order and transaction ids which are generated by their
// repositories.
type Product struct {
	ID           string
	Name         string
	StockOnHand  int
	ReorderLevel int
	Price        Amount
}

func NewProduct(name, id string, reorderLevel, initialStock int, price Amount) *Product {
	return &Product{
		ID:           id,
		Name:         name,
		StockOnHand:  initialStock,
		ReorderLevel: reorderLevel,
		Price:        price,
	}
}

// NeedsRestock reports whether stock has fallen to or below the reorder level.
func (p *Product) NeedsRestock() bool {
	return p.StockOnHand <= p.ReorderLevel
}

// RestockQuantity is the quantity placed on every restock order: twice the
// reorder level.
func (p *Product) RestockQuantity() int {
	return p.ReorderLevel * 2
}
