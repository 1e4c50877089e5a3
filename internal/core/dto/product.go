package dto

type AddProductRequest struct {
	Name         string `json:"name"`
	ProductID    string `json:"product_id"`
	ReorderLevel int    `json:"reorder_level"`
	InitialStock int    `json:"initial_stock"`
	Price        int    `json:"price"` // cents
}

type ChangePriceRequest struct {
	ProductID string `json:"product_id"`
	Price     int    `json:"price"` // cents
}

type ProductResult struct {
	Code         Code   `json:"code"`
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	StockOnHand  int    `json:"stock_on_hand"`
	ReorderLevel int    `json:"reorder_level"`
	Price        int    `json:"price"`
}
