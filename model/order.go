package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the confirmation returned by a (simulated) checkout. Orders are
// not persisted anywhere; the confirmation is the whole transaction.
type Order struct {
	ID        string          `json:"id"`
	Items     []CartItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
