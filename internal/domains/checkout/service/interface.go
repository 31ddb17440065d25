package service

import (
	"context"

	"storefront-backend/internal/domains/checkout/model"

	"github.com/shopspring/decimal"
)

type ServiceInterface interface {
	// Initiate snapshots the cart, asks the backend for a payment
	// session and returns the gateway URL. The cart is not touched.
	Initiate(ctx context.Context, owner, sessionToken string) (*model.InitiateResponse, error)

	// HandleSuccessReturn processes the gateway's success redirect:
	// decodes the base64 payload, verifies its signature and, when the
	// gateway reports COMPLETE, confirms the order with the backend.
	HandleSuccessReturn(ctx context.Context, owner, sessionToken, data string) (*model.SuccessReturnResponse, error)

	// HandleFailureReturn records a failed/canceled payment. The cart
	// stays intact; the pending record is discarded.
	HandleFailureReturn(ctx context.Context, owner, transactionRef, status, errorMessage string) (*model.FailureReturnResponse, error)

	// CheckStatus re-verifies a transaction against the backend.
	CheckStatus(ctx context.Context, owner, sessionToken, transactionRef string, amount decimal.Decimal) (*model.StatusResponse, error)

	// Confirm is the explicit retry path for order creation.
	Confirm(ctx context.Context, owner, sessionToken, transactionRef string) (*model.SuccessReturnResponse, error)

	// GetPending returns the owner's fresh pending checkout, if any.
	GetPending(ctx context.Context, owner string) (*model.PendingResponse, error)
}
