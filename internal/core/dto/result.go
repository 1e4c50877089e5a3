package dto

// Code is the explicit result code carried by every facade result. Expected
// business outcomes are reported here, never as errors.
type Code string

const (
	CodeOK                  Code = "ok"
	CodeProductNotFound     Code = "product_not_found"
	CodeNoSuchMember        Code = "no_such_member"
	CodeTransactionNotFound Code = "transaction_not_found"
	CodeOrderNotFound       Code = "order_not_found"
	CodeDuplicateID         Code = "duplicate_id"
	CodeInvalidState        Code = "invalid_state"
	CodeOperationFailed     Code = "operation_failed"
)

func (c Code) IsOK() bool {
	return c == CodeOK
}
