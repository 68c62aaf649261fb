package entities

import "time"

// ChargeStatus is the Mercado Pago payment status, passed through verbatim.
//
// The gateway may return values beyond the ones listed here (rejected,
// cancelled, refunded, ...); callers must treat the type as open.

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusInProcess ChargeStatus = "in_process"
	ChargeStatusApproved  ChargeStatus = "approved"
)

// PixCharge is the gateway-side view of a PIX payment: the identifier and
// status owned by Mercado Pago plus the transaction data the frontend needs
// to render the charge (copy-paste string and QR image).

type PixCharge struct {
	ID           string       `json:"id"`
	Status       ChargeStatus `json:"status"`
	Description  string       `json:"description"`
	Amount       float64      `json:"amount"`
	QRCode       string       `json:"qr_code"`
	QRCodeBase64 string       `json:"qr_code_base64"`
	TicketURL    string       `json:"ticket_url,omitempty"`
}

// ChargeRecord is the locally owned copy of a charge persisted in DynamoDB.
//
// Storage model:
//   - PK: id (provider payment id)
//
// PurchaseSent is the single-writer purchase-report flag: it is flipped
// false→true with a conditional update so that concurrent status polls for
// the same charge report the Purchase conversion at most once.

type ChargeRecord struct {
	ID           string            `json:"id"`
	Plan         string            `json:"plan"`
	Amount       float64           `json:"amount"`
	Email        string            `json:"email"`
	Whatsapp     string            `json:"whatsapp"`
	Attribution  map[string]string `json:"attribution,omitempty"`
	PurchaseSent bool              `json:"purchase_sent"`
	CreatedAt    time.Time         `json:"created_at"`
}
