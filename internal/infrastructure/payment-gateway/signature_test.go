package paymentgateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateSignatureVerifier_MissingSecret(t *testing.T) {
	_, err := CreateSignatureVerifier("")
	assert.Error(t, err)
}

func TestVerify_ValidSignature(t *testing.T) {
	verifier, err := CreateSignatureVerifier("test-secret")
	require.NoError(t, err)

	testCases := []struct {
		Name      string
		OrderID   string
		PaymentID string
	}{
		{Name: "typical ids", OrderID: "order_MkWa1Bc2defGh3", PaymentID: "pay_NlXb4Cd5efgIj6"},
		{Name: "short ids", OrderID: "o", PaymentID: "p"},
		{Name: "ids containing separator", OrderID: "order|1", PaymentID: "pay|2"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.True(t, verifier.Verify(tc.OrderID, tc.PaymentID, sign("test-secret", tc.OrderID, tc.PaymentID)))
		})
	}
}

func TestVerify_RejectsMutatedSignature(t *testing.T) {
	verifier, err := CreateSignatureVerifier("test-secret")
	require.NoError(t, err)

	valid := sign("test-secret", "order_MkWa1Bc2defGh3", "pay_NlXb4Cd5efgIj6")

	// Flipping any single hex digit must invalidate the signature.
	for i := 0; i < len(valid); i++ {
		mutated := []byte(valid)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}

		assert.False(t, verifier.Verify("order_MkWa1Bc2defGh3", "pay_NlXb4Cd5efgIj6", string(mutated)))
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	verifier, err := CreateSignatureVerifier("test-secret")
	require.NoError(t, err)

	assert.False(t, verifier.Verify("order_1", "pay_1", sign("other-secret", "order_1", "pay_1")))
}

func TestVerify_RejectsTruncatedSignature(t *testing.T) {
	verifier, err := CreateSignatureVerifier("test-secret")
	require.NoError(t, err)

	valid := sign("test-secret", "order_1", "pay_1")
	assert.False(t, verifier.Verify("order_1", "pay_1", valid[:len(valid)-1]))
	assert.False(t, verifier.Verify("order_1", "pay_1", ""))
}

func TestOrderReceipt_Deterministic(t *testing.T) {
	assert.Equal(t, "order_rcpt_42", OrderReceipt(42))
	assert.Equal(t, OrderReceipt(7), OrderReceipt(7))
}
