package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/charge"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentVerification is the outcome of checking a payment intent.
type PaymentVerification struct {
	Paid        bool
	AmountMinor int64
	Currency    string
	ReceiptURL  string
}

// PaymentVerifier checks that a client-side payment actually completed before
// a paid booking is accepted. Intent creation happens outside this core.
type PaymentVerifier interface {
	VerifyIntent(ctx context.Context, intentID string, expectedAmountMinor int64) (*PaymentVerification, error)
}

// StripePaymentVerifier is the production implementation on the Stripe API.
type StripePaymentVerifier struct {
	logger *zap.Logger
}

// NewStripePaymentVerifier constructs the Stripe verifier. The package-level
// stripe.Key must already be set.
func NewStripePaymentVerifier(logger *zap.Logger) *StripePaymentVerifier {
	return &StripePaymentVerifier{logger: logger}
}

// VerifyIntent retrieves the intent and checks status and amount. The receipt
// URL of the latest charge is included for the receipt email when available.
func (v *StripePaymentVerifier) VerifyIntent(ctx context.Context, intentID string, expectedAmountMinor int64) (*PaymentVerification, error) {
	intent, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, NewPaymentError("payment not completed")
	}
	if intent.Amount != expectedAmountMinor {
		v.logger.Warn("payment amount mismatch",
			zap.String("intent", intentID),
			zap.Int64("got", intent.Amount),
			zap.Int64("want", expectedAmountMinor))
		return nil, NewPaymentError("payment amount mismatch")
	}

	verification := &PaymentVerification{
		Paid:        true,
		AmountMinor: intent.Amount,
		Currency:    string(intent.Currency),
	}

	if intent.LatestCharge != nil {
		ch, err := charge.Get(intent.LatestCharge.ID, nil)
		if err != nil {
			// The receipt is nice to have; the verification stands without it.
			v.logger.Warn("failed to retrieve charge for receipt",
				zap.String("intent", intentID), zap.Error(err))
		} else {
			verification.ReceiptURL = ch.ReceiptURL
		}
	}

	return verification, nil
}
