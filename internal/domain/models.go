package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PendingOrderStatus is the initial status of every order.
	PendingOrderStatus string = "pending"
	// CompletedOrderStatus marks an order fulfilled by the operator.
	CompletedOrderStatus string = "completed"
	// RejectedOrderStatus marks an order declined; the debited amount is not re-credited.
	RejectedOrderStatus string = "rejected"
)

// IsValidOrderStatus reports whether s is one of the three known statuses.
func IsValidOrderStatus(s string) bool {
	switch s {
	case PendingOrderStatus, CompletedOrderStatus, RejectedOrderStatus:
		return true
	}
	return false
}

// User is a panel account. ID is the caller-supplied uid and doubles as the
// document key, so it is not stored inside the document itself.
type User struct {
	ID        string          `json:"-"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Order is a purchase placed against a user's balance. Amount is fixed at
// creation and never recomputed. The service descriptor fields are opaque
// to the ledger.
type Order struct {
	ID        string          `json:"-"`
	UserID    string          `json:"uid"`
	Username  string          `json:"username"`
	Service   string          `json:"service"`
	ServiceID string          `json:"service_id"`
	Platform  string          `json:"platform"`
	Plan      string          `json:"plan"`
	Target    string          `json:"target"`
	UTR       string          `json:"utr"`
	Amount    decimal.Decimal `json:"amount"`
	Quantity  int             `json:"quantity"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
