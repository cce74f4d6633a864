package payments

import (
	"context"

	"github.com/stripe/stripe-go/v80"
)

// Gateway defines a common interface over the hosted checkout provider.
// The provider is the system of record for session state; callers only
// create sessions and observe them, never mutate them.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*stripe.CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error)
}

// CheckoutParams carries everything needed to open one hosted checkout
// session for a single product.
type CheckoutParams struct {
	ProductName   string
	UnitAmount    int64 // minor currency units
	Quantity      int64
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}
