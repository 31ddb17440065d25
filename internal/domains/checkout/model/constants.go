package model

// CheckoutState tracks where a handoff is in its lifecycle. The state
// lives on the PendingCheckout record; the cart itself is never touched
// before StateOrderCreated.
type CheckoutState string

const (
	StateIdle            CheckoutState = "IDLE"
	StateInitiating      CheckoutState = "INITIATING"
	StateRedirected      CheckoutState = "REDIRECTED"
	StateReturnedSuccess CheckoutState = "RETURNED_SUCCESS"
	StateReturnedFailure CheckoutState = "RETURNED_FAILURE"
	StateVerifying       CheckoutState = "VERIFYING"
	StateOrderCreated    CheckoutState = "ORDER_CREATED"
	StateVerifyFailed    CheckoutState = "VERIFY_FAILED"
)

// Payment statuses reported by the backend's check-status endpoint.
const (
	PaymentStatusPending    = "PENDING"
	PaymentStatusComplete   = "COMPLETE"
	PaymentStatusFailed     = "FAILED"
	PaymentStatusCanceled   = "CANCELED"
	PaymentStatusAmbiguous  = "AMBIGUOUS"
	PaymentStatusFullRefund = "FULL_REFUND"
	PaymentStatusNotFound   = "NOT_FOUND"
)
