package esewa

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DecodeCallback decodes the base64-JSON `data` parameter from the
// success redirect. Decode failures say nothing about the payment
// outcome; callers must treat them as retryable.
func DecodeCallback(data string) (*CallbackPayload, error) {
	if data == "" {
		return nil, fmt.Errorf("empty callback data")
	}

	// Browsers sometimes turn '+' into a space in the query string.
	data = strings.ReplaceAll(data, " ", "+")

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		// The gateway has been observed emitting unpadded payloads.
		raw, err = base64.RawStdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("base64 decode callback: %w", err)
		}
	}

	var payload CallbackPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal callback: %w", err)
	}

	if payload.TransactionUUID == "" {
		return nil, fmt.Errorf("callback missing transaction_uuid")
	}

	return &payload, nil
}

// Amount parses total_amount, tolerating the thousands separators the
// gateway puts in ("1,000.00").
func (p *CallbackPayload) Amount() (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(p.TotalAmount, ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse total_amount %q: %w", p.TotalAmount, err)
	}
	return d, nil
}
