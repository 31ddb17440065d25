package esewa

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, p CallbackPayload) string {
	t.Helper()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestDecodeCallback(t *testing.T) {
	data := encode(t, CallbackPayload{
		TransactionUUID: "txn-1",
		TransactionCode: "000ABC",
		Status:          StatusComplete,
		TotalAmount:     "1,000",
		ProductCode:     "EPAYTEST",
	})

	p, err := DecodeCallback(data)
	require.NoError(t, err)
	assert.Equal(t, "txn-1", p.TransactionUUID)
	assert.Equal(t, StatusComplete, p.Status)

	amount, err := p.Amount()
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("1000")))
}

func TestDecodeCallback_Unpadded(t *testing.T) {
	raw, err := json.Marshal(CallbackPayload{TransactionUUID: "txn-1"})
	require.NoError(t, err)
	data := base64.RawStdEncoding.EncodeToString(raw)

	p, err := DecodeCallback(data)
	require.NoError(t, err)
	assert.Equal(t, "txn-1", p.TransactionUUID)
}

func TestDecodeCallback_PlusMangledAsSpace(t *testing.T) {
	data := encode(t, CallbackPayload{TransactionUUID: "txn-1", TotalAmount: "1,000.5"})
	mangled := ""
	for _, r := range data {
		if r == '+' {
			mangled += " "
		} else {
			mangled += string(r)
		}
	}

	p, err := DecodeCallback(mangled)
	require.NoError(t, err)
	assert.Equal(t, "txn-1", p.TransactionUUID)
}

func TestDecodeCallback_Invalid(t *testing.T) {
	_, err := DecodeCallback("")
	assert.Error(t, err)

	_, err = DecodeCallback("!!!not base64!!!")
	assert.Error(t, err)

	// Valid base64, not JSON
	_, err = DecodeCallback(base64.StdEncoding.EncodeToString([]byte("hello")))
	assert.Error(t, err)

	// Valid JSON, missing transaction_uuid
	_, err = DecodeCallback(encode(t, CallbackPayload{Status: StatusComplete}))
	assert.Error(t, err)
}
