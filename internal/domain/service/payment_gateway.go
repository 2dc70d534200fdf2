package service

import "context"

// PaymentIntent is the authorization handle returned by the external
// processor. ClientSecret is what the caller confirms the payment with.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway defines the contract the core requires from the external
// payment processor: create an intent for an amount/currency and hand back a
// client-confirmable secret. Nothing is persisted on this path.
type PaymentGateway interface {
	// CreateIntent requests an authorization handle for amount in minor
	// currency units (e.g. cents).
	CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)
}
