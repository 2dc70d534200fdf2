// Package payment provides the concrete payment gateway implementation
// backed by the Stripe API.
package payment

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"belleza/config"
	"belleza/internal/domain/service"
)

// stripeGateway implements the PaymentGateway interface with the Stripe SDK.
type stripeGateway struct {
	api *client.API
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	return &stripeGateway{
		api: client.New(cfg.Stripe.SecretKey, nil),
	}, nil
}

// CreateIntent requests a payment intent for the amount in minor currency
// units. Pass-through request/response; failures are not retried here.
func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
