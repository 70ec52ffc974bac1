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

// DriverHandler handles HTTP requests for drivers.

type DriverHandler struct {
	usecase usecase.IDriverUseCase
}

func NewDriverHandler(uc usecase.IDriverUseCase) *DriverHandler {
	return &DriverHandler{usecase: uc}
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var payload request.DriverCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeAppError(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDriver(created))
}

func (h *DriverHandler) GetAllDrivers(c *gin.Context) {
	drivers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDrivers(drivers))
}

func (h *DriverHandler) GetDriverByID(c *gin.Context) {
	driverID, ok := paramID(c, "driver_id")
	if !ok {
		return
	}

	driver, err := h.usecase.GetByDriverID(c.Request.Context(), driverID)
	if err != nil {
		writeAppError(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDriver(driver))
}

func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	driverID, ok := paramID(c, "driver_id")
	if !ok {
		return
	}

	var payload request.DriverUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), driverID, payload.ToUpdate())
	if err != nil {
		writeAppError(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDriver(updated))
}

func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	driverID, ok := paramID(c, "driver_id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), driverID); err != nil {
		writeAppError(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted{Success: true, Message: "Driver deleted successfully"})
}

func mapDriverError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDriverName),
		errors.Is(err, usecase.ErrInvalidLicense),
		errors.Is(err, usecase.ErrInvalidDriverSalary):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLicenseNumberTaken):
		return pkg.NewDomainErrorSimple("LICENSE_NUMBER_TAKEN", "License number already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrDriverNotFound):
		return pkg.NewDomainErrorSimple("DRIVER_NOT_FOUND", "Driver not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
