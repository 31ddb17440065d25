package esewa

// Config carries the merchant identity and callback endpoints for the
// eSewa redirect gateway.
type Config struct {
	// ProductCode is the merchant code echoed back in callbacks
	// (eSewa sandbox uses "EPAYTEST").
	ProductCode string

	// SecretKey signs and verifies callback payloads. Empty disables
	// signature verification (sandbox / local development).
	SecretKey string

	// SuccessURL and FailureURL are where the gateway redirects the
	// shopper's browser after payment.
	SuccessURL string
	FailureURL string
}

// VerifiesSignatures reports whether callback signatures are checked.
func (c Config) VerifiesSignatures() bool {
	return c.SecretKey != ""
}
