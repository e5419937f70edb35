package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// ErrInvalidSignature means the widget callback did not come from the gateway.
var ErrInvalidSignature = errors.New("payment signature verification failed")

// Gateway creates and verifies online payment orders. Client-side callbacks
// are never trusted; every payment goes through VerifySignature server-side.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) error
}

// RazorpayGateway implements Gateway against the Razorpay Orders API.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	logger    *zap.Logger
}

// NewRazorpayGateway creates a gateway from API credentials.
func NewRazorpayGateway(keyID, keySecret string, logger *zap.Logger) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
		logger:    logger,
	}
}

// CreateOrder registers an order with Razorpay for the given amount in minor
// units (paise for INR) and returns the gateway's order ID.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":          amountMinorUnits,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create payment order: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", errors.New("payment order response missing order id")
	}
	g.logger.Info("payment order registered",
		zap.String("orderID", orderID),
		zap.Int64("amountMinor", amountMinorUnits),
		zap.String("currency", currency))
	return orderID, nil
}

// VerifySignature checks the HMAC-SHA256 the gateway computes over
// "orderID|paymentID" with the key secret.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
