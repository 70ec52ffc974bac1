package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistica_xpto/internal/adapter/http/handlers/mocks"
	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBillRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *mocks.MockIBillUseCase) {
	t.Helper()
	uc := mocks.NewMockIBillUseCase(ctrl)
	h := NewBillHandler(uc)

	r := gin.New()
	r.POST("/v1/bills", h.CreateBill)
	r.GET("/v1/bills/:bill_id", h.GetBillByID)
	r.PATCH("/v1/bills/:bill_id/pay", h.PayBill)
	return r, uc
}

func TestBillHandler_PayBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _ := newBillRouter(t, ctrl)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/11/pay", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, uc := newBillRouter(t, ctrl)

		uc.EXPECT().Pay(gomock.Any(), 11, "pix", gomock.Any()).Return(entities.Bill{}, usecase.ErrBillAlreadyPaid)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/11/pay", bytes.NewBufferString(`{"paymentMethod":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, uc := newBillRouter(t, ctrl)

		uc.EXPECT().Pay(gomock.Any(), 11, "credit_card", gomock.Any()).Return(entities.Bill{}, usecase.ErrPaymentGatewayDeclined)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/11/pay", bytes.NewBufferString(`{"paymentMethod":"credit_card","gatewayPayload":{"token":"abc"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("pay success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, uc := newBillRouter(t, ctrl)

		uc.EXPECT().Pay(gomock.Any(), 11, "pix", gomock.Any()).Return(entities.Bill{ID: "b-1", BillID: 11, PaymentStatus: entities.PaymentStatusPaid, PaymentMethod: "pix", ProviderPaymentID: "mp-1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/11/pay", bytes.NewBufferString(`{"paymentMethod":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			BillID            int    `json:"billId"`
			PaymentStatus     string `json:"paymentStatus"`
			PaymentMethod     string `json:"paymentMethod"`
			ProviderPaymentID string `json:"providerPaymentId"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp.PaymentStatus != "paid" || resp.PaymentMethod != "pix" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.ProviderPaymentID != "mp-1" {
			t.Fatalf("expected provider payment id in response, got %+v", resp)
		}
	})
}

func TestBillHandler_CreateBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown client key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, uc := newBillRouter(t, ctrl)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Bill{}, usecase.ErrInvalidBillClient)

		body := `{"clientKey":"c-404","shipmentKey":"s-1","issueDate":"2026-09-05T00:00:00Z","dueDate":"2026-10-05T00:00:00Z","amount":1500,"totalAmount":1650}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp.Message != "Invalid Client ID. Client does not exist." {
			t.Fatalf("unexpected message: %q", resp.Message)
		}
	})
}

func TestBillHandler_GetBillByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, uc := newBillRouter(t, ctrl)

		uc.EXPECT().GetByBillID(gomock.Any(), 99).Return(entities.Bill{}, usecase.ErrBillNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
