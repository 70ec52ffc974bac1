package handlers

import (
	"errors"
	"net/http"

	request "logistica_xpto/internal/adapter/http/dto/request"
	response "logistica_xpto/internal/adapter/http/dto/response"
	"logistica_xpto/internal/usecase"
	"logistica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// TruckHandler handles HTTP requests for trucks.

type TruckHandler struct {
	usecase usecase.ITruckUseCase
}

func NewTruckHandler(uc usecase.ITruckUseCase) *TruckHandler {
	return &TruckHandler{usecase: uc}
}

func (h *TruckHandler) CreateTruck(c *gin.Context) {
	var payload request.TruckCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeAppError(c, mapTruckError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTruck(created))
}

func (h *TruckHandler) GetAllTrucks(c *gin.Context) {
	trucks, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapTruckError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTrucks(trucks))
}

func (h *TruckHandler) GetTruckByID(c *gin.Context) {
	truckID, ok := paramID(c, "truck_id")
	if !ok {
		return
	}

	truck, err := h.usecase.GetByTruckID(c.Request.Context(), truckID)
	if err != nil {
		writeAppError(c, mapTruckError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTruck(truck))
}

func (h *TruckHandler) UpdateTruck(c *gin.Context) {
	truckID, ok := paramID(c, "truck_id")
	if !ok {
		return
	}

	var payload request.TruckUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), truckID, payload.ToUpdate())
	if err != nil {
		writeAppError(c, mapTruckError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTruck(updated))
}

func (h *TruckHandler) DeleteTruck(c *gin.Context) {
	truckID, ok := paramID(c, "truck_id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), truckID); err != nil {
		writeAppError(c, mapTruckError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted{Success: true, Message: "Truck deleted successfully"})
}

func mapTruckError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlate), errors.Is(err, usecase.ErrInvalidCapacity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTruckNotFound):
		return pkg.NewDomainErrorSimple("TRUCK_NOT_FOUND", "Truck not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
