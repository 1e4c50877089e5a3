package dto

import "time"

type OrderResult struct {
	Code        Code      `json:"code"`
	OrderID     string    `json:"order_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	PlacedAt    time.Time `json:"placed_at"`
}
