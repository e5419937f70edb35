package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"go.uber.org/zap"
)

func signFor(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "test_secret", zap.NewNop())

	orderID := "order_123"
	paymentID := "pay_456"

	if err := g.VerifySignature(orderID, paymentID, signFor("test_secret", orderID, paymentID)); err != nil {
		t.Fatalf("expected valid signature to verify, got %v", err)
	}

	if err := g.VerifySignature(orderID, paymentID, signFor("wrong_secret", orderID, paymentID)); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature for forged signature, got %v", err)
	}

	if err := g.VerifySignature(orderID, "pay_other", signFor("test_secret", orderID, paymentID)); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature for mismatched payment id, got %v", err)
	}
}
