package dto

import "time"

type AddLineItemRequest struct {
	TransactionID string `json:"transaction_id"`
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
}

type EndTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
	MemberID      string `json:"member_id"`
}

type TransactionItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	LineTotal   int    `json:"line_total"`
}

type TransactionResult struct {
	Code          Code              `json:"code"`
	TransactionID string            `json:"transaction_id"`
	Date          time.Time         `json:"date"`
	Total         int               `json:"total"`
	Items         []TransactionItem `json:"items,omitempty"`
}

// LineItemResult reports one AddTransactionLineItem call: the captured line
// total plus the transaction's running total.
type LineItemResult struct {
	Code          Code   `json:"code"`
	TransactionID string `json:"transaction_id"`
	LineTotal     int    `json:"line_total"`
	RunningTotal  int    `json:"running_total"`
}
