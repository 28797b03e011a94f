package handlers

import (
	"net/http"
	"strings"

	request "oficina_nova_brasil/internal/adapter/http/dto/request"
	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceOrderHandler serves /orders.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
	names   usecase.IReferenceResolver
	log     *zap.Logger
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase, names usecase.IReferenceResolver, log *zap.Logger) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc, names: names, log: orNop(log)}
}

// ListOrders godoc
// @Summary  List service orders, newest first
// @Tags     orders
// @Produce  json
// @Param    search query string false "order id, client name or plate"
// @Param    status query string false "pending, in_progress, completed or cancelled"
// @Success  200 {array} response.ServiceOrderResponse
// @Router   /orders [get]
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.usecase.ListOrders(ctx, usecase.OrderFilter{
		Search: c.Query("search"),
		Status: entities.OrderStatus(strings.TrimSpace(c.Query("status"))),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	names := h.names.Index(ctx)
	out := make([]response.ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, response.FromServiceOrder(o, names.ClientName(o.ClientID), names.CarSummary(o.CarID)))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, o))
}

// PrintOrder godoc
// @Summary  Printable view of a service order
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.ServiceOrderResponse
// @Router   /orders/{id}/print [get]
func (h *ServiceOrderHandler) PrintOrder(c *gin.Context) {
	d, err := h.usecase.GetOrderDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDetails(d))
}

// CreateOrder godoc
// @Summary  Open a service order
// @Description Totals are derived from the items. Creating directly as completed stamps completedAt.
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body request.ServiceOrderRequest true "order"
// @Success  201 {object} response.ServiceOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /orders [post]
func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	o, err := h.usecase.CreateOrder(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(c, o))
}

func (h *ServiceOrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	o, err := h.usecase.UpdateOrder(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, o))
}

// ChangeStatus godoc
// @Summary  Move a service order to another status
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path string true "order id"
// @Param    body body request.OrderStatusRequest true "new status"
// @Success  200 {object} response.ServiceOrderResponse
// @Router   /orders/{id}/status [patch]
func (h *ServiceOrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	status := entities.OrderStatus(strings.TrimSpace(payload.Status))
	o, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, o))
}

func (h *ServiceOrderHandler) AddItem(c *gin.Context) {
	var payload request.OrderItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	o, err := h.usecase.AddOrderItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, o))
}

func (h *ServiceOrderHandler) RemoveItem(c *gin.Context) {
	o, err := h.usecase.RemoveOrderItem(c.Request.Context(), c.Param("id"), c.Param("serviceId"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, o))
}

func (h *ServiceOrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceOrderHandler) toResponse(c *gin.Context, o entities.ServiceOrder) response.ServiceOrderResponse {
	ctx := c.Request.Context()
	return response.FromServiceOrder(o, h.names.ResolveClientName(ctx, o.ClientID), h.names.ResolveCarSummary(ctx, o.CarID))
}
