package handlers

import (
	"net/http"

	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	log     *zap.Logger
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{usecase: uc, log: orNop(log)}
}

// GetDashboard godoc
// @Summary  Shop figures, recomputed on every call
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.DashboardResponse
// @Router   /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	stats, err := h.usecase.GetDashboard(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(stats))
}
