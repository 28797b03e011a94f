package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/adapter/http/handlers/mocks"
	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *ServiceOrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.PATCH("/v1/orders/:id/status", h.ChangeStatus)
	r.POST("/v1/orders/:id/items", h.AddItem)
	r.DELETE("/v1/orders/:id/items/:serviceId", h.RemoveItem)
	r.GET("/v1/orders/:id/print", h.PrintOrder)
	r.GET("/v1/orders", h.ListOrders)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServiceOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewServiceOrderHandler(mocks.NewMockIServiceOrderUseCase(ctrl), nil, nil)

		w := doJSON(newOrderRouter(h), http.MethodPost, "/v1/orders", `{"clientId":"c1","carId":"v1","items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewServiceOrderHandler(mocks.NewMockIServiceOrderUseCase(ctrl), nil, nil)

		w := doJSON(newOrderRouter(h), http.MethodPost, "/v1/orders", `{"clientId":"c1","carId":"v1","items":[{"serviceId":"s1","quantity":0}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewServiceOrderHandler(mocks.NewMockIServiceOrderUseCase(ctrl), nil, nil)

		w := doJSON(newOrderRouter(h), http.MethodPost, "/v1/orders", `{"clientId":"c1","carId":"v1","date":"14/10/2026","items":[{"serviceId":"s1","quantity":1}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing parent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, nil, nil)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(entities.ServiceOrder{}, fmt.Errorf("%w: client %q", usecase.ErrMissingReference, "c1"))

		w := doJSON(newOrderRouter(h), http.MethodPost, "/v1/orders", `{"clientId":"c1","carId":"v1","items":[{"serviceId":"s1","quantity":1}]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		names := mocks.NewMockIReferenceResolver(ctrl)
		h := NewServiceOrderHandler(uc, names, nil)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateOrderInput{})).DoAndReturn(
			func(_ context.Context, in usecase.CreateOrderInput) (entities.ServiceOrder, error) {
				if in.ClientID != "c1" || len(in.Items) != 1 || in.Items[0].Quantity != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.Date.Equal(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected date: %v", in.Date)
				}
				return entities.ServiceOrder{
					ID:         "OS-1",
					ClientID:   "c1",
					CarID:      "v1",
					Status:     entities.OrderStatusPending,
					Items:      []entities.ServiceOrderItem{{ServiceID: "s1", Quantity: 1, UnitValue: decimal.NewFromInt(450), TotalValue: decimal.NewFromInt(450)}},
					TotalValue: decimal.NewFromInt(450),
				}, nil
			},
		)
		names.EXPECT().ResolveClientName(gomock.Any(), "c1").Return("Maria Silva")
		names.EXPECT().ResolveCarSummary(gomock.Any(), "v1").Return("ABC1234 - Fiat Uno")

		w := doJSON(newOrderRouter(h), http.MethodPost, "/v1/orders", `{"clientId":"c1","carId":"v1","date":"2026-10-14","items":[{"serviceId":"s1","quantity":1}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body response.ServiceOrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.ClientName != "Maria Silva" || !body.TotalValue.Equal(decimal.NewFromInt(450)) {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestServiceOrderHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("change status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		names := mocks.NewMockIReferenceResolver(ctrl)
		h := NewServiceOrderHandler(uc, names, nil)

		done := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().ChangeStatus(gomock.Any(), "OS-1", entities.OrderStatusCompleted).
			Return(entities.ServiceOrder{ID: "OS-1", Status: entities.OrderStatusCompleted, CompletedAt: &done}, nil)
		names.EXPECT().ResolveClientName(gomock.Any(), gomock.Any()).Return(usecase.ClientNotFoundPlaceholder)
		names.EXPECT().ResolveCarSummary(gomock.Any(), gomock.Any()).Return(usecase.CarNotFoundPlaceholder)

		w := doJSON(newOrderRouter(h), http.MethodPatch, "/v1/orders/OS-1/status", `{"status":"completed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.ServiceOrderResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.CompletedAt == nil || body.ClientName != usecase.ClientNotFoundPlaceholder {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, nil, nil)

		uc.EXPECT().ChangeStatus(gomock.Any(), "OS-1", entities.OrderStatus("paid")).Return(entities.ServiceOrder{}, usecase.ErrInvalidStatus)

		w := doJSON(newOrderRouter(h), http.MethodPatch, "/v1/orders/OS-1/status", `{"status":"paid"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, nil, nil)

		uc.EXPECT().RemoveOrderItem(gomock.Any(), "OS-1", "s9").Return(entities.ServiceOrder{}, usecase.ErrOrderItemNotFound)

		w := doJSON(newOrderRouter(h), http.MethodDelete, "/v1/orders/OS-1/items/s9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("print", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, nil, nil)

		item := entities.ServiceOrderItem{ServiceID: "s1", Quantity: 1, UnitValue: decimal.NewFromInt(80), TotalValue: decimal.NewFromInt(80)}
		uc.EXPECT().GetOrderDetails(gomock.Any(), "OS-1").Return(usecase.OrderDetails{
			Order:      entities.ServiceOrder{ID: "OS-1", Items: []entities.ServiceOrderItem{item}, TotalValue: decimal.NewFromInt(80)},
			ClientName: "Maria",
			CarSummary: "ABC1234 - Fiat Uno",
			Lines:      []usecase.OrderLine{{ServiceOrderItem: item, ServiceDescription: "Solda"}},
		}, nil)

		w := doJSON(newOrderRouter(h), http.MethodGet, "/v1/orders/OS-1/print", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.ServiceOrderResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.CarSummary != "ABC1234 - Fiat Uno" || len(body.Items) != 1 || body.Items[0].Description != "Solda" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, nil, nil)

		uc.EXPECT().ListOrders(gomock.Any(), usecase.OrderFilter{Status: entities.OrderStatusPending}).Return(nil, errors.New("disk"))

		w := doJSON(newOrderRouter(h), http.MethodGet, "/v1/orders?status=pending", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("list resolves names from one index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		names := mocks.NewMockIReferenceResolver(ctrl)
		h := NewServiceOrderHandler(uc, names, nil)

		uc.EXPECT().ListOrders(gomock.Any(), usecase.OrderFilter{}).Return([]entities.ServiceOrder{
			{ID: "OS-2", ClientID: "c1", CarID: "v1"},
			{ID: "OS-1", ClientID: "gone", CarID: "v1"},
		}, nil)
		names.EXPECT().Index(gomock.Any()).Return(usecase.NewReferenceIndex(
			[]entities.Client{{ID: "c1", Name: "Maria"}},
			[]entities.Car{{ID: "v1", Plate: "ABC1234", Brand: "Fiat", Model: "Uno"}},
			nil, nil, nil,
		)).Times(1)

		w := doJSON(newOrderRouter(h), http.MethodGet, "/v1/orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.ServiceOrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 || body[0].ClientName != "Maria" || body[1].ClientName != usecase.ClientNotFoundPlaceholder || body[1].CarSummary != "ABC1234 - Fiat Uno" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
