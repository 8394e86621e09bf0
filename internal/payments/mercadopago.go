package payments

import (
	"context"

	"github.com/google/uuid"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPagoClient creates a checkout preference per intent. The
// preference ID is what the frontend widget consumes, so it plays the
// client-secret role.
type MercadoPagoClient struct {
	prefs preference.Client
}

func NewMercadoPagoClient(accessToken string) (*MercadoPagoClient, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoClient{
		prefs: preference.NewClient(cfg),
	}, nil
}

func (c *MercadoPagoClient) CreateIntent(
	ctx context.Context,
	in IntentInput,
) (*Intent, error) {

	ref := uuid.NewString()

	resource, err := c.prefs.Create(ctx, preference.Request{
		ExternalReference: ref,
		Items: []preference.ItemRequest{
			{
				Title:     in.Description,
				Quantity:  1,
				UnitPrice: float64(in.Amount) / 100,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &Intent{
		ClientSecret: resource.ID,
		Reference:    ref,
	}, nil
}

var _ IntentCreator = (*MercadoPagoClient)(nil)
