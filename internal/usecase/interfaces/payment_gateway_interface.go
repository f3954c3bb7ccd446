package interfaces

import "context"

// IPaymentGateway abstracts the online card-payment provider (Mercado Pago)
// used by the optional checkout path. The manual receipt-upload flow never
// touches it.
type IPaymentGateway interface {
	// ChargePlan creates a provider payment for a pricing plan and returns
	// the provider's payment id and status ("approved", "rejected", ...).
	ChargePlan(ctx context.Context, planName string, amount float64, payerEmail string) (providerPaymentID string, providerStatus string, err error)
}
