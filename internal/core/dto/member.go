package dto

import "time"

type AddMemberRequest struct {
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Phone    string    `json:"phone"`
	JoinedAt time.Time `json:"joined_at"`
	FeePaid  int       `json:"fee_paid"` // cents
}

type TransactionReportRequest struct {
	MemberID string    `json:"member_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// MemberResult is a detached copy of a member's fields; mutating it never
// touches facade state.
type MemberResult struct {
	Code     Code      `json:"code"`
	MemberID string    `json:"member_id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Phone    string    `json:"phone"`
	JoinedAt time.Time `json:"joined_at"`
	FeePaid  int       `json:"fee_paid"`
}
