package handlers

import (
	"net/http"
	"strconv"

	request "oficina_nova_brasil/internal/adapter/http/dto/request"
	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the catalog under /services.
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
	names   usecase.IReferenceResolver
	log     *zap.Logger
}

func NewServiceHandler(uc usecase.IServiceUseCase, names usecase.IReferenceResolver, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{usecase: uc, names: names, log: orNop(log)}
}

// ListServices godoc
// @Summary  List catalog services
// @Tags     services
// @Produce  json
// @Param    search   query string false "description or category substring"
// @Param    category query string false "exact category"
// @Param    active   query bool   false "only active services"
// @Success  200 {array} response.ServiceResponse
// @Router   /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	services, err := h.usecase.ListServices(ctx, usecase.ServiceFilter{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		ActiveOnly: activeOnly,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	names := h.names.Index(ctx)
	out := make([]response.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, response.FromService(s, names.EmployeeName(s.ResponsibleEmployeeID)))
	}
	c.JSON(http.StatusOK, out)
}

// ListCategories returns the suggested category names.
func (h *ServiceHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.CategoriesResponse{Categories: h.usecase.Categories()})
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, s))
}

// CreateService godoc
// @Summary  Add a catalog service
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    body body request.ServiceRequest true "service"
// @Success  201 {object} response.ServiceResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	s, err := h.usecase.CreateService(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(c, s))
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	s, err := h.usecase.UpdateService(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, s))
}

func (h *ServiceHandler) ToggleService(c *gin.Context) {
	s, err := h.usecase.ToggleServiceActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, s))
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) toResponse(c *gin.Context, s entities.Service) response.ServiceResponse {
	return response.FromService(s, h.names.ResolveEmployeeName(c.Request.Context(), s.ResponsibleEmployeeID))
}
