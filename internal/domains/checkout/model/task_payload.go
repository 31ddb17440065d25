package model

import "github.com/shopspring/decimal"

// TrackCheckoutPayload is the fire-and-forget in-flight signal emitted
// at initiate time. Purely informational; losing it never blocks the
// handoff.
type TrackCheckoutPayload struct {
	Owner          string          `json:"owner"`
	TransactionRef string          `json:"transaction_ref"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ItemCount      int             `json:"item_count"`
}

// OrderConfirmationPayload is enqueued once the backend reports the
// order was created.
type OrderConfirmationPayload struct {
	Owner          string          `json:"owner"`
	TransactionRef string          `json:"transaction_ref"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ItemCount      int             `json:"item_count"`
}
