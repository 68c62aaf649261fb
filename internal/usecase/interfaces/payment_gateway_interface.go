package interfaces

import (
	"context"

	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
)

// CreateChargeInput is the gateway-facing charge creation request. The
// idempotency key is generated fresh per call by the use case so that a
// client retry of the same HTTP request cannot create duplicate charges.

type CreateChargeInput struct {
	Amount         float64
	Description    string
	PayerEmail     string
	IdempotencyKey string
}

// IPaymentGateway abstracts the external PIX payment provider (Mercado Pago).

type IPaymentGateway interface {
	CreatePixCharge(ctx context.Context, in CreateChargeInput) (entities.PixCharge, error)
	GetCharge(ctx context.Context, id string) (entities.PixCharge, error)
}
