package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// InitiateResponse is returned to the client, which redirects the
// browser to PaymentURL.
type InitiateResponse struct {
	PaymentURL     string          `json:"payment_url"`
	TransactionRef string          `json:"transaction_ref"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ItemCount      int             `json:"item_count"`
}

// ConfirmRequest names the transaction to confirm. The backend resolves
// what was paid from the reference alone.
type ConfirmRequest struct {
	TransactionRef string `json:"transaction_ref"`
}

func (r ConfirmRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TransactionRef, validation.Required),
	)
}

// SuccessReturnResponse reports what happened when the gateway sent the
// shopper back through the success URL.
type SuccessReturnResponse struct {
	TransactionRef string        `json:"transaction_ref"`
	Status         string        `json:"status"`
	State          CheckoutState `json:"state"`
	OrderCreated   bool          `json:"order_created"`
	Order          interface{}   `json:"order,omitempty"`
}

// FailureReturnResponse mirrors the gateway's failure redirect params.
type FailureReturnResponse struct {
	TransactionRef string        `json:"transaction_ref,omitempty"`
	Status         string        `json:"status,omitempty"`
	ErrorMessage   string        `json:"error_message,omitempty"`
	State          CheckoutState `json:"state"`
}

// StatusResponse is the manual re-verify result.
type StatusResponse struct {
	TransactionRef string `json:"transaction_ref"`
	Status         string `json:"status"`
	RefID          string `json:"ref_id,omitempty"`
}

// PendingResponse exposes the fresh pending record, if any.
type PendingResponse struct {
	TransactionRef string          `json:"transaction_ref"`
	State          CheckoutState   `json:"state"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ItemCount      int             `json:"item_count"`
	CreatedAt      string          `json:"created_at"`
}
