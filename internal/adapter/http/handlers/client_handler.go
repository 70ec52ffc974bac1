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

// ClientHandler handles HTTP requests for clients.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeAppError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(created))
}

func (h *ClientHandler) GetAllClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) GetClientByID(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}

	client, err := h.usecase.GetByClientID(c.Request.Context(), clientID)
	if err != nil {
		writeAppError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}

	var payload request.ClientUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, err)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), clientID, payload.ToUpdate())
	if err != nil {
		writeAppError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(updated))
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), clientID); err != nil {
		writeAppError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted{Success: true, Message: "Client deleted successfully"})
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
