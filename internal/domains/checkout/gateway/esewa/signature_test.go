package esewa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "8gBm/:&EnhH.1/q"

func signedPayload() *CallbackPayload {
	p := &CallbackPayload{
		TransactionCode:  "000ABC",
		Status:           StatusComplete,
		TotalAmount:      "100",
		TransactionUUID:  "txn-1",
		ProductCode:      "EPAYTEST",
		SignedFieldNames: "transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names",
	}
	message, _ := BuildSignedMessage(p)
	p.Signature = GenerateSignature(message, testSecret)
	return p
}

func TestBuildSignedMessage_FollowsFieldOrder(t *testing.T) {
	p := signedPayload()
	p.SignedFieldNames = "total_amount,transaction_uuid,product_code"

	message, err := BuildSignedMessage(p)
	require.NoError(t, err)
	assert.Equal(t, "total_amount=100,transaction_uuid=txn-1,product_code=EPAYTEST", message)
}

func TestBuildSignedMessage_UnknownField(t *testing.T) {
	p := signedPayload()
	p.SignedFieldNames = "total_amount,bogus_field"

	_, err := BuildSignedMessage(p)
	assert.Error(t, err)
}

func TestVerifySignature_RoundTrip(t *testing.T) {
	p := signedPayload()
	assert.NoError(t, VerifySignature(p, testSecret))
}

func TestVerifySignature_TamperedAmount(t *testing.T) {
	p := signedPayload()
	p.TotalAmount = "1"
	assert.Error(t, VerifySignature(p, testSecret))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	p := signedPayload()
	assert.Error(t, VerifySignature(p, "another-secret"))
}

func TestVerifySignature_MissingSignedFields(t *testing.T) {
	p := signedPayload()
	p.SignedFieldNames = ""
	assert.Error(t, VerifySignature(p, testSecret))
}
