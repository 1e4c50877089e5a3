package domain

// Snapshot is the full persistable state of the facade: the four collections
// plus the id sequences, so that id generation continues without collision
// after a reload. Orders and line items share product instances with Products,
// and members reference transaction instances in Transactions; a store that
// round-trips a snapshot must restore that aliasing.
type Snapshot struct {
	Products     []*Product
	Members      []*Member
	Orders       []*Order
	Transactions []*Transaction

	MemberSeq      int
	OrderSeq       int
	TransactionSeq int
}
