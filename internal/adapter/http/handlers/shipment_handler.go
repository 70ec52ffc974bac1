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

// ShipmentHandler handles HTTP requests for shipments. Creation is the
// cross-entity workflow; everything else is plain CRUD over the composed
// shipment view.

type ShipmentHandler struct {
	usecase usecase.IShipmentUseCase
}

func NewShipmentHandler(uc usecase.IShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc}
}

// CreateShipment validates the payload, aggregates every field violation,
// then runs the availability workflow. Business checks report the first
// failure only, in truck, driver, client order.
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var payload request.ShipmentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	detail, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[shipment][handler] create failed err=%v", err)
		writeAppError(c, mapShipmentError(err))
		return
	}
	log.Printf("[shipment][handler] create success shipment_id=%d", detail.Shipment.ShipmentID)

	c.JSON(http.StatusCreated, response.ShipmentCreated{
		Message:  "Shipment created successfully",
		Shipment: response.FromShipmentDetail(detail),
	})
}

func (h *ShipmentHandler) GetAllShipments(c *gin.Context) {
	details, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShipmentDetails(details))
}

func (h *ShipmentHandler) GetShipmentByID(c *gin.Context) {
	shipmentID, ok := paramID(c, "shipment_id")
	if !ok {
		return
	}

	detail, err := h.usecase.GetByShipmentID(c.Request.Context(), shipmentID)
	if err != nil {
		writeAppError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShipmentDetail(detail))
}

func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	shipmentID, ok := paramID(c, "shipment_id")
	if !ok {
		return
	}

	var payload request.ShipmentUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	detail, err := h.usecase.Update(c.Request.Context(), shipmentID, payload.ToUpdate())
	if err != nil {
		writeAppError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShipmentDetail(detail))
}

func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	shipmentID, ok := paramID(c, "shipment_id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), shipmentID); err != nil {
		writeAppError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted{Success: true, Message: "Shipment deleted successfully"})
}

func mapShipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrShipmentTruckMissing):
		return pkg.NewDomainErrorSimple("INVALID_TRUCK", "Invalid Truck ID. Truck does not exist.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTruckNotAvailable):
		return pkg.NewDomainErrorSimple("TRUCK_NOT_AVAILABLE", "Truck is not available.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentDriverMissing):
		return pkg.NewDomainErrorSimple("INVALID_DRIVER", "Invalid Driver ID. Driver does not exist.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDriverNotAvailable):
		return pkg.NewDomainErrorSimple("DRIVER_NOT_AVAILABLE", "Driver is not available.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentClientMissing):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT", "Invalid Client ID. Client does not exist.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShipmentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
