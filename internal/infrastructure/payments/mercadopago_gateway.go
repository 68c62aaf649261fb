package payments

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MP_ACCESS_TOKEN")

const pixPaymentMethodID = "pix"

// MercadoPagoGateway creates and reads PIX payments through the official
// SDK. The SDK stamps a fresh X-Idempotency-Key on every create call; the
// use-case supplied key is additionally recorded in the payment metadata so
// charge creations can be reconciled against client retries.

type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[pix][gateway] missing MP_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[pix][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[pix][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePixCharge(ctx context.Context, in interfaces.CreateChargeInput) (entities.PixCharge, error) {
	log.Printf("[pix][gateway] create start plan=%q amount=%.2f", in.Description, in.Amount)

	req := payment.Request{
		TransactionAmount: in.Amount,
		Description:       in.Description,
		PaymentMethodID:   pixPaymentMethodID,
		Payer:             &payment.PayerRequest{Email: in.PayerEmail},
	}
	if in.IdempotencyKey != "" {
		req.Metadata = map[string]any{"idempotency_key": in.IdempotencyKey}
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[pix][gateway] sdk create failed err=%v", err)
		return entities.PixCharge{}, err
	}

	charge := fromPaymentResponse(resp)
	log.Printf("[pix][gateway] create success charge_id=%s status=%s", charge.ID, charge.Status)
	return charge, nil
}

func (g *MercadoPagoGateway) GetCharge(ctx context.Context, id string) (entities.PixCharge, error) {
	numericID, err := strconv.Atoi(id)
	if err != nil {
		// Mercado Pago payment ids are numeric; anything else cannot exist.
		return entities.PixCharge{}, errors.New("payment not found")
	}

	resp, err := g.client.Get(ctx, numericID)
	if err != nil {
		log.Printf("[pix][gateway] sdk get failed charge_id=%s err=%v", id, err)
		return entities.PixCharge{}, err
	}

	return fromPaymentResponse(resp), nil
}

func fromPaymentResponse(resp *payment.Response) entities.PixCharge {
	charge := entities.PixCharge{
		ID:          strconv.Itoa(resp.ID),
		Status:      entities.ChargeStatus(resp.Status),
		Description: resp.Description,
		Amount:      resp.TransactionAmount,
	}
	charge.QRCode = resp.PointOfInteraction.TransactionData.QRCode
	charge.QRCodeBase64 = resp.PointOfInteraction.TransactionData.QRCodeBase64
	charge.TicketURL = resp.PointOfInteraction.TransactionData.TicketURL
	return charge
}
