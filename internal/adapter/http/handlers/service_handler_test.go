package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/adapter/http/handlers/mocks"
	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newServiceRouter(h *ServiceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/services", h.ListServices)
	r.GET("/v1/services/categories", h.ListCategories)
	r.POST("/v1/services", h.CreateService)
	r.PATCH("/v1/services/:id/toggle", h.ToggleService)
	r.DELETE("/v1/services/:id", h.DeleteService)
	return r
}

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewServiceHandler(mocks.NewMockIServiceUseCase(ctrl), nil, nil)

		w := doJSON(newServiceRouter(h), http.MethodPost, "/v1/services", `{"description":"Solda","category":"Soldas","estimatedTimeHours":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inactive employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc, nil, nil)

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrEmployeeInactive)

		w := doJSON(newServiceRouter(h), http.MethodPost, "/v1/services",
			`{"description":"Solda","category":"Soldas","value":80,"estimatedTimeHours":1,"responsibleEmployeeId":"e1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		names := mocks.NewMockIReferenceResolver(ctrl)
		h := NewServiceHandler(uc, names, nil)

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.ServiceDraft) (entities.Service, error) {
				if !d.Value.Equal(decimal.NewFromInt(80)) || !d.IsActive {
					t.Fatalf("unexpected draft: %+v", d)
				}
				return entities.Service{ID: "s1", Description: "Solda", Value: d.Value, IsActive: true}, nil
			},
		)
		names.EXPECT().ResolveEmployeeName(gomock.Any(), "").Return(usecase.EmployeeNotAssigned)

		w := doJSON(newServiceRouter(h), http.MethodPost, "/v1/services", `{"description":"Solda","category":"Soldas","value":"80","estimatedTimeHours":1}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body response.ServiceResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ResponsibleEmployeeName != usecase.EmployeeNotAssigned {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestServiceHandler_ToggleService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("toggled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		names := mocks.NewMockIReferenceResolver(ctrl)
		h := NewServiceHandler(uc, names, nil)

		uc.EXPECT().ToggleServiceActive(gomock.Any(), "s1").Return(entities.Service{ID: "s1", ResponsibleEmployeeID: "e1"}, nil)
		names.EXPECT().ResolveEmployeeName(gomock.Any(), "e1").Return("Pedro")

		w := doJSON(newServiceRouter(h), http.MethodPatch, "/v1/services/s1/toggle", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.ServiceResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.IsActive || body.ResponsibleEmployeeName != "Pedro" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc, nil, nil)

		uc.EXPECT().ToggleServiceActive(gomock.Any(), "x").Return(entities.Service{}, usecase.ErrServiceNotFound)

		w := doJSON(newServiceRouter(h), http.MethodPatch, "/v1/services/x/toggle", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	names := mocks.NewMockIReferenceResolver(ctrl)
	h := NewServiceHandler(uc, names, nil)

	uc.EXPECT().ListServices(gomock.Any(), usecase.ServiceFilter{Category: "Soldas", ActiveOnly: true}).Return([]entities.Service{
		{ID: "s1", ResponsibleEmployeeID: "e1"},
		{ID: "s2"},
	}, nil)
	names.EXPECT().Index(gomock.Any()).Return(usecase.NewReferenceIndex(nil, nil, []entities.Employee{{ID: "e1", Name: "Pedro"}}, nil, nil))
	uc.EXPECT().Categories().Return([]string{"Soldas", "Outros"})

	r := newServiceRouter(h)
	w := doJSON(r, http.MethodGet, "/v1/services?category=Soldas&active=true", "")
	var list []response.ServiceResponse
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if w.Code != http.StatusOK || len(list) != 2 || list[0].ResponsibleEmployeeName != "Pedro" || list[1].ResponsibleEmployeeName != usecase.EmployeeNotAssigned {
		t.Fatalf("unexpected list response %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/v1/services/categories", "")
	var cats response.CategoriesResponse
	_ = json.Unmarshal(w.Body.Bytes(), &cats)
	if w.Code != http.StatusOK || len(cats.Categories) != 2 {
		t.Fatalf("unexpected categories response %d: %s", w.Code, w.Body.String())
	}
}
