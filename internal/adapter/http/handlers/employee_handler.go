package handlers

import (
	"net/http"

	request "oficina_nova_brasil/internal/adapter/http/dto/request"
	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
	log     *zap.Logger
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc, log: orNop(log)}
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.usecase.ListEmployees(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEmployees(employees))
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	e, err := h.usecase.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(e))
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	e, err := h.usecase.CreateEmployee(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEmployee(e))
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var payload request.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	e, err := h.usecase.UpdateEmployee(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(e))
}

// ToggleEmployee flips isActive.
func (h *EmployeeHandler) ToggleEmployee(c *gin.Context) {
	e, err := h.usecase.ToggleEmployeeActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(e))
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.usecase.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
