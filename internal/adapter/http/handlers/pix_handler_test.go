package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sandrinhosilv/back-marceneiro/internal/adapter/http/handlers/mocks"
	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPixRouter(uc usecase.IPixChargeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPixHandler(uc)
	r := gin.New()
	r.POST("/api/pix", h.CreatePixCharge)
	r.GET("/api/pix/:id", h.GetPixChargeStatus)
	return r
}

func TestPixHandler_CreatePixCharge(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixChargeUseCase(ctrl)
		r := newPixRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/pix", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing contact maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixChargeUseCase(ctrl)
		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(entities.PixCharge{}, usecase.ErrMissingContact)
		r := newPixRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/pix", bytes.NewBufferString(`{"amount":100,"description":"Plano Starter"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] == "" {
			t.Fatalf("expected error message, got %s", w.Body.String())
		}
	})

	t.Run("gateway unauthorized maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixChargeUseCase(ctrl)
		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(entities.PixCharge{}, usecase.ErrGatewayUnauthorized)
		r := newPixRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/pix", bytes.NewBufferString(`{"amount":100,"description":"Plano Starter","email":"a@b.com","whatsapp":"11999999999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixChargeUseCase(ctrl)
		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(entities.PixCharge{}, errors.New("network down"))
		r := newPixRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/pix", bytes.NewBufferString(`{"amount":100,"description":"Plano Starter","email":"a@b.com","whatsapp":"11999999999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success passes the qr payload through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixChargeUseCase(ctrl)

		var gotCmd usecase.CreateChargeCommand
		uc.EXPECT().
			CreateCharge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.CreateChargeCommand) (entities.PixCharge, error) {
				gotCmd = cmd
				return entities.PixCharge{
					ID:           "123",
					Status:       entities.ChargeStatusPending,
					QRCode:       "xyz",
					QRCodeBase64: "base64",
				}, nil
			})
		r := newPixRouter(uc)

		body := `{"amount":100,"description":"Plano Starter","email":"a@b.com","whatsapp":"11999999999","utm_campaign":"Oferta|111"}`
		req := httptest.NewRequest(http.MethodPost, "/api/pix", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "123" || resp["status"] != "pending" || resp["qr_code"] != "xyz" || resp["qr_code_base64"] != "base64" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
		if gotCmd.Fields["utm_campaign"] != "Oferta|111" {
			t.Fatalf("attribution fields not forwarded: %+v", gotCmd.Fields)
		}
	})
}

func TestPixHandler_GetPixChargeStatus(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixChargeUseCase(ctrl)
		uc.EXPECT().GetChargeStatus(gomock.Any(), "999").Return(usecase.ChargeStatusResult{}, usecase.ErrChargeNotFound)
		r := newPixRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/pix/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("approved returns link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixChargeUseCase(ctrl)
		uc.EXPECT().GetChargeStatus(gomock.Any(), "123").Return(usecase.ChargeStatusResult{
			ID:     "123",
			Status: entities.ChargeStatusApproved,
			Link:   "https://example.com/starter",
		}, nil)
		r := newPixRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/pix/123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "approved" || resp["link"] != "https://example.com/starter" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("pending returns empty link field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixChargeUseCase(ctrl)
		uc.EXPECT().GetChargeStatus(gomock.Any(), "123").Return(usecase.ChargeStatusResult{
			ID:     "123",
			Status: entities.ChargeStatusPending,
		}, nil)
		r := newPixRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/pix/123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if link, ok := resp["link"]; !ok || link != "" {
			t.Fatalf("expected blank link field, got %s", w.Body.String())
		}
	})
}
