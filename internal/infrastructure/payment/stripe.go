package payment

import (
	"context"
	"fmt"

	"dental-care-server/config"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeClient wraps the payment provider's SDK behind the one call this
// system needs: creating a card payment intent.
type StripeClient struct {
	api      *client.API
	currency string
}

func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeClient{
		api:      api,
		currency: cfg.Currency,
	}
}

// CreateIntent creates a payment intent for amount in the smallest
// currency unit and returns its client secret.
func (c *StripeClient) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
