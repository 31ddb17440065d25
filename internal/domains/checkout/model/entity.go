package model

import (
	"time"

	cartmodel "storefront-backend/internal/domains/cart/model"

	"github.com/shopspring/decimal"
)

// PendingCheckout is the one-shot snapshot taken at initiate time.
// It exists so a success callback arriving in a fresh session can still
// be tied back to what the shopper was buying. The live cart stays
// untouched until the backend confirms order creation.
type PendingCheckout struct {
	Owner          string               `json:"owner"`
	TransactionRef string               `json:"transaction_ref"`
	State          CheckoutState        `json:"state"`
	Lines          []cartmodel.CartLine `json:"lines"`
	TotalAmount    decimal.Decimal      `json:"total_amount"`
	ItemCount      int                  `json:"item_count"`
	CreatedAt      time.Time            `json:"created_at"`
}

// Expired reports whether the record is older than maxAge and should be
// treated as abandoned.
func (p *PendingCheckout) Expired(maxAge time.Duration) bool {
	return time.Since(p.CreatedAt) > maxAge
}
