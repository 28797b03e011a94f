package handlers

import (
	"net/http"

	request "oficina_nova_brasil/internal/adapter/http/dto/request"
	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler serves /clients.
type ClientHandler struct {
	usecase usecase.IClientUseCase
	cars    usecase.ICarUseCase
	log     *zap.Logger
}

func NewClientHandler(uc usecase.IClientUseCase, cars usecase.ICarUseCase, log *zap.Logger) *ClientHandler {
	return &ClientHandler{usecase: uc, cars: cars, log: orNop(log)}
}

// ListClients godoc
// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Param    search query string false "name, phone, email or tax id substring"
// @Success  200 {array} response.ClientResponse
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClient godoc
// @Summary  Get a client
// @Tags     clients
// @Produce  json
// @Param    id path string true "client id"
// @Success  200 {object} response.ClientResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// ListClientCars returns the vehicles registered to one client.
func (h *ClientHandler) ListClientCars(c *gin.Context) {
	ctx := c.Request.Context()
	client, err := h.usecase.GetClient(ctx, c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	cars, err := h.cars.ListCars(ctx, usecase.CarFilter{ClientID: client.ID})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	out := make([]response.CarResponse, 0, len(cars))
	for _, car := range cars {
		out = append(out, response.FromCar(car, client.Name))
	}
	c.JSON(http.StatusOK, out)
}

// CreateClient godoc
// @Summary  Register a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    body body request.ClientRequest true "client"
// @Success  201 {object} response.ClientResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	client, err := h.usecase.CreateClient(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// UpdateClient godoc
// @Summary  Update a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    id   path string true "client id"
// @Param    body body request.UpdateClientRequest true "fields to change"
// @Success  200 {object} response.ClientResponse
// @Router   /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.UpdateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	client, err := h.usecase.UpdateClient(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// DeleteClient godoc
// @Summary  Delete a client
// @Description Cars and orders referencing the client are kept.
// @Tags     clients
// @Param    id path string true "client id"
// @Success  204
// @Router   /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
