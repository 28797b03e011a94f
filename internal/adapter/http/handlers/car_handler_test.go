package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/adapter/http/handlers/mocks"
	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase"
	"oficina_nova_brasil/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCarRouter(h *CarHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/cars", h.ListCars)
	r.GET("/v1/cars/:id", h.GetCar)
	r.POST("/v1/cars", h.CreateCar)
	r.PUT("/v1/cars/:id", h.UpdateCar)
	r.DELETE("/v1/cars/:id", h.DeleteCar)
	return r
}

func TestCarHandler_CreateCar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("zero year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCarHandler(mocks.NewMockICarUseCase(ctrl), nil, nil)

		w := doJSON(newCarRouter(h), http.MethodPost, "/v1/cars", `{"clientId":"c1","plate":"abc1234","brand":"Fiat","model":"Uno","year":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICarUseCase(ctrl)
		h := NewCarHandler(uc, nil, nil)

		uc.EXPECT().CreateCar(gomock.Any(), entities.CarDraft{ClientID: "c9", Plate: "abc1234", Brand: "Fiat", Model: "Uno", Year: 2015}).
			Return(entities.Car{}, usecase.ErrMissingReference)

		w := doJSON(newCarRouter(h), http.MethodPost, "/v1/cars", `{"clientId":"c9","plate":"abc1234","brand":"Fiat","model":"Uno","year":2015}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "MISSING_REFERENCE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("created with owner name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICarUseCase(ctrl)
		names := mocks.NewMockIReferenceResolver(ctrl)
		h := NewCarHandler(uc, names, nil)

		uc.EXPECT().CreateCar(gomock.Any(), gomock.Any()).
			Return(entities.Car{ID: "v1", ClientID: "c1", Plate: "ABC1234", Brand: "Fiat", Model: "Uno", Year: 2015}, nil)
		names.EXPECT().ResolveClientName(gomock.Any(), "c1").Return("Maria")

		w := doJSON(newCarRouter(h), http.MethodPost, "/v1/cars", `{"clientId":"c1","plate":"abc1234","brand":"Fiat","model":"Uno","year":2015}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body response.CarResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.ClientName != "Maria" || body.Summary != "ABC1234 - Fiat Uno" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestCarHandler_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func(uc *mocks.MockICarUseCase)
		status int
	}{
		{
			name:   "get unknown car",
			method: http.MethodGet,
			path:   "/v1/cars/x",
			setup: func(uc *mocks.MockICarUseCase) {
				uc.EXPECT().GetCar(gomock.Any(), "x").Return(entities.Car{}, usecase.ErrCarNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name:   "update with blank plate",
			method: http.MethodPut,
			path:   "/v1/cars/v1",
			body:   `{"plate":" "}`,
			setup: func(uc *mocks.MockICarUseCase) {
				uc.EXPECT().UpdateCar(gomock.Any(), "v1", gomock.Any()).Return(entities.Car{}, usecase.ErrValidation)
			},
			status: http.StatusBadRequest,
		},
		{
			name:   "update with malformed json",
			method: http.MethodPut,
			path:   "/v1/cars/v1",
			body:   `{"year":"new"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/v1/cars/v1",
			setup: func(uc *mocks.MockICarUseCase) {
				uc.EXPECT().DeleteCar(gomock.Any(), "v1").Return(nil)
			},
			status: http.StatusNoContent,
		},
		{
			name:   "list store failure",
			method: http.MethodGet,
			path:   "/v1/cars?clientId=c1",
			setup: func(uc *mocks.MockICarUseCase) {
				uc.EXPECT().ListCars(gomock.Any(), usecase.CarFilter{ClientID: "c1"}).Return(nil, errors.New("disk"))
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICarUseCase(ctrl)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewCarHandler(uc, nil, nil)

			w := doJSON(newCarRouter(h), tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestCarHandler_ListCars(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICarUseCase(ctrl)
	names := mocks.NewMockIReferenceResolver(ctrl)
	h := NewCarHandler(uc, names, nil)

	uc.EXPECT().ListCars(gomock.Any(), usecase.CarFilter{Search: "uno"}).Return([]entities.Car{
		{ID: "v1", ClientID: "c1"},
		{ID: "v2", ClientID: "gone"},
	}, nil)
	names.EXPECT().Index(gomock.Any()).Return(usecase.NewReferenceIndex([]entities.Client{{ID: "c1", Name: "Maria"}}, nil, nil, nil, nil))

	w := doJSON(newCarRouter(h), http.MethodGet, "/v1/cars?search=uno", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []response.CarResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0].ClientName != "Maria" || body[1].ClientName != usecase.ClientNotFoundPlaceholder {
		t.Fatalf("unexpected body: %+v", body)
	}
}
