// Package payments abstracts the payment-intent provider so handlers and
// tests do not depend on the Stripe SDK directly.
package payments

import (
	"context"
	"math"
)

// IntentCreator creates a provider-side payment intent for an amount in
// the currency's minor unit (cents) and returns its client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

// AmountCents converts a decimal price into the provider's integer minor
// unit: round(price × 100).
func AmountCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
