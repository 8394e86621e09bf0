package payments

import (
	"context"
	"errors"
)

type IntentInput struct {
	// Amount is in minor units (price * 100).
	Amount      int64
	Description string
}

type Intent struct {
	// ClientSecret is the provider token the frontend checkout widget
	// needs to collect the payment.
	ClientSecret string
	Reference    string
}

// IntentCreator is the external payment collaborator. The API only
// multiplies the price into minor units and hands off.
type IntentCreator interface {
	CreateIntent(ctx context.Context, in IntentInput) (*Intent, error)
}

// Disabled stands in when no provider credentials are configured.
type Disabled struct{}

func (Disabled) CreateIntent(context.Context, IntentInput) (*Intent, error) {
	return nil, errors.New("payment provider not configured")
}
