package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
	"github.com/Sandrinhosilv/back-marceneiro/internal/infrastructure/metrics"
	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount       = errors.New("invalid charge amount")
	ErrInvalidDescription  = errors.New("invalid charge description")
	ErrMissingContact      = errors.New("email and whatsapp are required")
	ErrInvalidChargeID     = errors.New("invalid charge id")
	ErrChargeNotFound      = errors.New("charge not found")
	ErrGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

const conversionCurrency = "BRL"

// CreateChargeCommand carries the validated checkout request into the use
// case. Fields holds the open set of request fields the attribution
// extractor scans (utm_*, fbclid, ...).

type CreateChargeCommand struct {
	Amount      float64
	Description string
	Email       string
	Whatsapp    string
	Fields      map[string]string
}

// ChargeStatusResult is what a status poll returns to the frontend: the
// gateway status verbatim plus the fulfillment link once approved.

type ChargeStatusResult struct {
	ID     string
	Status entities.ChargeStatus
	Link   string
}

// IPixChargeUseCase encapsulates the checkout flow: create a PIX charge and
// fan out lead data, then report the purchase exactly once on approval.

type IPixChargeUseCase interface {
	CreateCharge(ctx context.Context, cmd CreateChargeCommand) (entities.PixCharge, error)
	GetChargeStatus(ctx context.Context, id string) (ChargeStatusResult, error)
}

// taskDispatcher is the slice of fanout.Dispatcher the use case needs.
type taskDispatcher interface {
	Submit(name string, run func(ctx context.Context) error) bool
}

type PixChargeUseCase struct {
	gateway    interfaces.IPaymentGateway
	repo       interfaces.IChargeRepository
	leadSink   interfaces.ILeadSink
	reporter   interfaces.IConversionReporter
	webhook    interfaces.IWebhookRelay
	dispatcher taskDispatcher
	planLinks  func(plan string) string
	metrics    *metrics.CheckoutMetrics
}

var _ IPixChargeUseCase = (*PixChargeUseCase)(nil)

func NewPixChargeUseCase(
	gateway interfaces.IPaymentGateway,
	repo interfaces.IChargeRepository,
	leadSink interfaces.ILeadSink,
	reporter interfaces.IConversionReporter,
	webhook interfaces.IWebhookRelay,
	dispatcher taskDispatcher,
	planLinks func(plan string) string,
	m *metrics.CheckoutMetrics,
) *PixChargeUseCase {
	return &PixChargeUseCase{
		gateway:    gateway,
		repo:       repo,
		leadSink:   leadSink,
		reporter:   reporter,
		webhook:    webhook,
		dispatcher: dispatcher,
		planLinks:  planLinks,
		metrics:    m,
	}
}

func (u *PixChargeUseCase) CreateCharge(ctx context.Context, cmd CreateChargeCommand) (entities.PixCharge, error) {
	log.Printf("[pix][usecase] create start plan=%q amount=%.2f", cmd.Description, cmd.Amount)

	if cmd.Amount <= 0 {
		return entities.PixCharge{}, ErrInvalidAmount
	}
	if strings.TrimSpace(cmd.Description) == "" {
		return entities.PixCharge{}, ErrInvalidDescription
	}
	email := strings.TrimSpace(cmd.Email)
	whatsapp := strings.TrimSpace(cmd.Whatsapp)
	if email == "" || whatsapp == "" {
		return entities.PixCharge{}, ErrMissingContact
	}
	if u.gateway == nil {
		return entities.PixCharge{}, errors.New("payment gateway not configured")
	}

	attribution := ExtractAttribution(cmd.Fields)

	charge, err := u.gateway.CreatePixCharge(ctx, interfaces.CreateChargeInput{
		Amount:         cmd.Amount,
		Description:    cmd.Description,
		PayerEmail:     email,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		log.Printf("[pix][usecase] gateway create failed plan=%q err=%v", cmd.Description, err)
		return entities.PixCharge{}, mapGatewayError(err)
	}
	log.Printf("[pix][usecase] gateway create success charge_id=%s status=%s", charge.ID, charge.Status)
	if u.metrics != nil {
		u.metrics.ChargesCreatedTotal.WithLabelValues(string(charge.Status)).Inc()
	}

	// The owned copy backs the single-writer purchase claim later. A store
	// failure must not strand a charge the gateway already created, so it
	// is logged and the checkout proceeds without purchase dedup for this
	// charge.
	rec := entities.ChargeRecord{
		ID:          charge.ID,
		Plan:        cmd.Description,
		Amount:      cmd.Amount,
		Email:       email,
		Whatsapp:    whatsapp,
		Attribution: attribution,
		CreatedAt:   time.Now().UTC(),
	}
	if u.repo != nil {
		if _, err := u.repo.Create(ctx, rec); err != nil {
			log.Printf("[pix][usecase] charge record create failed charge_id=%s err=%v", charge.ID, err)
		}
	}

	u.dispatchLeadFanout(rec)

	return charge, nil
}

func (u *PixChargeUseCase) GetChargeStatus(ctx context.Context, id string) (ChargeStatusResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ChargeStatusResult{}, ErrInvalidChargeID
	}
	if u.gateway == nil {
		return ChargeStatusResult{}, errors.New("payment gateway not configured")
	}

	charge, err := u.gateway.GetCharge(ctx, id)
	if err != nil {
		log.Printf("[pix][usecase] gateway get failed charge_id=%s err=%v", id, err)
		return ChargeStatusResult{}, mapGatewayError(err)
	}
	log.Printf("[pix][usecase] status poll charge_id=%s status=%s", id, charge.Status)
	if u.metrics != nil {
		u.metrics.StatusPollsTotal.WithLabelValues(string(charge.Status)).Inc()
	}

	result := ChargeStatusResult{ID: charge.ID, Status: charge.Status}
	if charge.Status != entities.ChargeStatusApproved {
		return result, nil
	}

	if u.planLinks != nil {
		result.Link = u.planLinks(charge.Description)
	}

	u.reportPurchaseOnce(ctx, id)

	return result, nil
}

// reportPurchaseOnce claims the purchase-report flag and, when this caller
// wins the claim, dispatches the Purchase conversion and webhook. The
// conditional write in the repository is what makes concurrent polls safe.
func (u *PixChargeUseCase) reportPurchaseOnce(ctx context.Context, id string) {
	if u.repo == nil {
		return
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[pix][usecase] charge record load failed charge_id=%s err=%v", id, err)
		return
	}
	if rec.ID == "" {
		log.Printf("[pix][usecase] no charge record, skipping purchase report charge_id=%s", id)
		return
	}
	if rec.PurchaseSent {
		return
	}

	claimed, err := u.repo.ClaimPurchaseReport(ctx, id)
	if err != nil {
		log.Printf("[pix][usecase] purchase claim failed charge_id=%s err=%v", id, err)
		return
	}
	if !claimed {
		return
	}
	log.Printf("[pix][usecase] purchase claimed charge_id=%s", id)
	if u.metrics != nil {
		u.metrics.PurchaseReportsTotal.Inc()
	}

	u.dispatchPurchaseFanout(rec)
}

func (u *PixChargeUseCase) dispatchLeadFanout(rec entities.ChargeRecord) {
	if u.dispatcher == nil {
		return
	}

	lead := entities.Lead{
		Email:       rec.Email,
		Whatsapp:    rec.Whatsapp,
		Plan:        rec.Plan,
		Amount:      rec.Amount,
		Attribution: rec.Attribution,
	}
	if u.leadSink != nil {
		u.dispatcher.Submit("lead_sink", func(ctx context.Context) error {
			return u.leadSink.SaveLead(ctx, lead)
		})
	}
	if u.reporter != nil {
		event := newConversionEvent(entities.ConversionEventLead, rec)
		u.dispatcher.Submit("capi_lead", func(ctx context.Context) error {
			return u.reporter.Report(ctx, event)
		})
	}
	if u.webhook != nil {
		payload := webhookPayload(rec)
		u.dispatcher.Submit("webhook_lead", func(ctx context.Context) error {
			return u.webhook.Notify(ctx, "lead_created", payload)
		})
	}
}

func (u *PixChargeUseCase) dispatchPurchaseFanout(rec entities.ChargeRecord) {
	if u.dispatcher == nil {
		return
	}

	if u.reporter != nil {
		event := newConversionEvent(entities.ConversionEventPurchase, rec)
		u.dispatcher.Submit("capi_purchase", func(ctx context.Context) error {
			return u.reporter.Report(ctx, event)
		})
	}
	if u.webhook != nil {
		payload := webhookPayload(rec)
		u.dispatcher.Submit("webhook_purchase", func(ctx context.Context) error {
			return u.webhook.Notify(ctx, "purchase_approved", payload)
		})
	}
}

func newConversionEvent(name entities.ConversionEventName, rec entities.ChargeRecord) entities.ConversionEvent {
	return entities.ConversionEvent{
		Name:        name,
		EventID:     uuid.NewString(),
		Time:        time.Now().UTC(),
		Email:       rec.Email,
		Phone:       rec.Whatsapp,
		Value:       rec.Amount,
		Currency:    conversionCurrency,
		Attribution: rec.Attribution,
	}
}

func webhookPayload(rec entities.ChargeRecord) map[string]any {
	payload := map[string]any{
		"charge_id": rec.ID,
		"plan":      rec.Plan,
		"amount":    rec.Amount,
		"email":     rec.Email,
		"whatsapp":  rec.Whatsapp,
	}
	for k, v := range rec.Attribution {
		payload[k] = v
	}
	return payload
}

// The Mercado Pago SDK surfaces API failures as errors whose text carries
// the provider's JSON body; sniffing it is how the provider status makes it
// back to the HTTP layer.

func mapGatewayError(err error) error {
	switch {
	case isGatewayNotFound(err):
		return ErrChargeNotFound
	case isGatewayUnauthorized(err):
		return ErrGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrGatewayBadRequest
	default:
		return err
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "payment not found") || strings.Contains(msg, "\"status\":404")
}
