package handlers

import (
	"errors"
	"log"
	"net/http"

	request "logistica_xpto/internal/adapter/http/dto/request"
	response "logistica_xpto/internal/adapter/http/dto/response"
	"logistica_xpto/internal/usecase"
	"logistica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// BillHandler handles HTTP requests for bills, including settlement.

type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

func (h *BillHandler) CreateBill(c *gin.Context) {
	var payload request.BillCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeAppError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBill(created))
}

func (h *BillHandler) GetAllBills(c *gin.Context) {
	bills, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBills(bills))
}

func (h *BillHandler) GetBillByID(c *gin.Context) {
	billID, ok := paramID(c, "bill_id")
	if !ok {
		return
	}

	bill, err := h.usecase.GetByBillID(c.Request.Context(), billID)
	if err != nil {
		writeAppError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBill(bill))
}

func (h *BillHandler) UpdateBill(c *gin.Context) {
	billID, ok := paramID(c, "bill_id")
	if !ok {
		return
	}

	var payload request.BillUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), billID, payload.ToUpdate())
	if err != nil {
		writeAppError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBill(updated))
}

// PayBill settles a pending bill, charging the payment provider first when
// a gateway payload is supplied.
func (h *BillHandler) PayBill(c *gin.Context) {
	billID, ok := paramID(c, "bill_id")
	if !ok {
		return
	}

	var payload request.BillPayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	log.Printf("[bill][handler] pay request bill_id=%d method=%s", billID, payload.PaymentMethod)

	paid, err := h.usecase.Pay(c.Request.Context(), billID, payload.PaymentMethod, payload.GatewayPayload)
	if err != nil {
		writeAppError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBill(paid))
}

func (h *BillHandler) DeleteBill(c *gin.Context) {
	billID, ok := paramID(c, "bill_id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), billID); err != nil {
		writeAppError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted{Success: true, Message: "Bill deleted successfully"})
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillAmount), errors.Is(err, usecase.ErrInvalidBillStatus), errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBillClient):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT", "Invalid Client ID. Client does not exist.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBillShipment):
		return pkg.NewDomainErrorSimple("INVALID_SHIPMENT", "Invalid Shipment ID. Shipment does not exist.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillAlreadyPaid):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_PAID", "Bill is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was declined by the provider", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
