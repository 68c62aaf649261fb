package response

import "github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"

// PixChargeResponse is what POST /api/pix returns: the provider id and
// status plus the QR payload, passed through from the gateway unmodified.

type PixChargeResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
}

func FromPixCharge(c entities.PixCharge) PixChargeResponse {
	return PixChargeResponse{
		ID:           c.ID,
		Status:       string(c.Status),
		QRCode:       c.QRCode,
		QRCodeBase64: c.QRCodeBase64,
	}
}

// ChargeStatusResponse is what GET /api/pix/:id returns. Link is blank until
// the charge is approved and the plan maps to a fulfillment link.

type ChargeStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Link   string `json:"link"`
}

func FromChargeStatus(id, status, link string) ChargeStatusResponse {
	return ChargeStatusResponse{ID: id, Status: status, Link: link}
}
