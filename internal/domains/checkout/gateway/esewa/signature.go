package esewa

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// =====================================================
// ESEWA SIGNATURE GENERATION & VERIFICATION
// =====================================================

// GenerateSignature computes the eSewa callback signature:
// HMAC-SHA256 over "field1=value1,field2=value2,..." in the order given
// by signed_field_names, base64 encoded.
func GenerateSignature(rawMessage, secretKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(rawMessage))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// BuildSignedMessage assembles the comma-joined message from the payload
// in signed_field_names order.
func BuildSignedMessage(p *CallbackPayload) (string, error) {
	if p.SignedFieldNames == "" {
		return "", fmt.Errorf("callback missing signed_field_names")
	}

	values := map[string]string{
		"transaction_code":   p.TransactionCode,
		"status":             p.Status,
		"total_amount":       p.TotalAmount,
		"transaction_uuid":   p.TransactionUUID,
		"product_code":       p.ProductCode,
		"signed_field_names": p.SignedFieldNames,
	}

	fields := strings.Split(p.SignedFieldNames, ",")
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		v, ok := values[f]
		if !ok {
			return "", fmt.Errorf("unknown signed field %q", f)
		}
		parts = append(parts, fmt.Sprintf("%s=%s", f, v))
	}

	return strings.Join(parts, ","), nil
}

// VerifySignature checks the payload's signature against secretKey.
// Returns nil when the signature matches.
func VerifySignature(p *CallbackPayload, secretKey string) error {
	message, err := BuildSignedMessage(p)
	if err != nil {
		return err
	}

	expected := GenerateSignature(message, secretKey)
	if !hmac.Equal([]byte(expected), []byte(p.Signature)) {
		return fmt.Errorf("signature mismatch for transaction %s", p.TransactionUUID)
	}
	return nil
}
