package domain

import "time"

// Order is an outstanding restock order. It references the product in Stock
// but does not own it; processing the shipment removes the order permanently.
// The id is assigned by the order repository on insert.
type Order struct {
	ID       string
	Product  *Product
	Quantity int
	PlacedAt time.Time
}

// NewRestockOrder places an order for the product's restock quantity, dated now.
// Every product gets one on creation and another each time a checkout depletes
// it to or below its reorder level.
func NewRestockOrder(product *Product, placedAt time.Time) *Order {
	return &Order{
		Product:  product,
		Quantity: product.RestockQuantity(),
		PlacedAt: placedAt,
	}
}
