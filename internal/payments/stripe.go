package payments

import (
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// IntentClient creates payment intents with an external processor and hands
// back the client secret the front-end needs to complete the charge.
type IntentClient interface {
	CreateIntent(amount decimal.Decimal, currency string) (clientSecret string, err error)
}

// StripeClient implements IntentClient against the Stripe API.
type StripeClient struct {
	api *client.API
}

// NewStripeClient creates a Stripe-backed intent client.
func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

// CreateIntent creates a payment intent for a dollar amount and returns its
// client secret. Stripe wants the amount in cents.
func (c *StripeClient) CreateIntent(amount decimal.Decimal, currency string) (string, error) {
	cents := amount.Mul(decimal.NewFromInt(100)).IntPart()
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(cents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
