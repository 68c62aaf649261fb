package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sandrinhosilv/back-marceneiro/internal/adapter/http/dto/request"
	"github.com/Sandrinhosilv/back-marceneiro/internal/adapter/http/dto/response"
	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase"
	"github.com/Sandrinhosilv/back-marceneiro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPixPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// PixHandler handles HTTP requests for PIX charge creation and status polls.

type PixHandler struct {
	usecase usecase.IPixChargeUseCase
}

func NewPixHandler(uc usecase.IPixChargeUseCase) *PixHandler {
	return &PixHandler{usecase: uc}
}

// CreatePixCharge creates a PIX charge and triggers the lead fan-out.
func (h *PixHandler) CreatePixCharge(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[pix][handler] failed reading body err=%v", err)
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return
	}

	payload, err := request.ParsePixChargeRequest(raw)
	if err != nil {
		log.Printf("[pix][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return
	}

	charge, err := h.usecase.CreateCharge(c.Request.Context(), usecase.CreateChargeCommand{
		Amount:      payload.Amount,
		Description: payload.Description,
		Email:       payload.Email,
		Whatsapp:    payload.Whatsapp,
		Fields:      payload.Fields(),
	})
	if err != nil {
		log.Printf("[pix][handler] create failed plan=%q err=%v", payload.Description, err)
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pix][handler] create success charge_id=%s status=%s", charge.ID, charge.Status)

	c.JSON(http.StatusOK, response.FromPixCharge(charge))
}

// GetPixChargeStatus polls the gateway for the charge status.
func (h *PixHandler) GetPixChargeStatus(c *gin.Context) {
	id := c.Param("id")

	result, err := h.usecase.GetChargeStatus(c.Request.Context(), id)
	if err != nil {
		log.Printf("[pix][handler] status poll failed charge_id=%s err=%v", id, err)
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pix][handler] status poll success charge_id=%s status=%s", result.ID, result.Status)

	c.JSON(http.StatusOK, response.FromChargeStatus(result.ID, string(result.Status), result.Link))
}

func mapPixError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDescription):
		return pkg.NewDomainErrorSimple("INVALID_DESCRIPTION", "Description is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingContact):
		return pkg.NewDomainErrorSimple("MISSING_CONTACT", "Email and whatsapp are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidChargeID):
		return pkg.NewDomainErrorSimple("INVALID_CHARGE_ID", "Invalid charge id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
