package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/adapter/http/handlers/mocks"
	"oficina_nova_brasil/internal/domain/aggregate"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *DashboardHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)
		return r
	}

	t.Run("figures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, nil)

		uc.EXPECT().GetDashboard(gomock.Any()).Return(aggregate.DashboardStats{
			TotalClients:    3,
			CompletedOrders: 2,
			MonthlyRevenue:  decimal.NewFromInt(900),
		}, nil)

		w := doJSON(newRouter(h), http.MethodGet, "/v1/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.DashboardResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.TotalClients != 3 || body.CompletedOrders != 2 || !body.MonthlyRevenue.Equal(decimal.NewFromInt(900)) {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, nil)

		uc.EXPECT().GetDashboard(gomock.Any()).Return(aggregate.DashboardStats{}, errors.New("disk"))

		w := doJSON(newRouter(h), http.MethodGet, "/v1/dashboard", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
