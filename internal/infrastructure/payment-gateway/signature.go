package paymentgateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// SignatureVerifier validates the authenticity of a payment callback using
// the gateway's pre-shared secret.
type SignatureVerifier struct {
	secret []byte
}

func CreateSignatureVerifier(secret string) (*SignatureVerifier, error) {
	if secret == "" {
		return nil, errors.New("payment gateway secret is not configured")
	}

	return &SignatureVerifier{secret: []byte(secret)}, nil
}

// Verify computes the hex HMAC-SHA256 of "orderID|paymentID" and compares it
// to the provided signature in constant time. It never returns an error; a
// mismatch is simply false.
func (v *SignatureVerifier) Verify(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
