package handlers

import (
	"net/http"

	request "oficina_nova_brasil/internal/adapter/http/dto/request"
	response "oficina_nova_brasil/internal/adapter/http/dto/response"
	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CarHandler serves /cars. Owner names are resolved per response and
// degrade to a placeholder when the owner was deleted.
type CarHandler struct {
	usecase usecase.ICarUseCase
	names   usecase.IReferenceResolver
	log     *zap.Logger
}

func NewCarHandler(uc usecase.ICarUseCase, names usecase.IReferenceResolver, log *zap.Logger) *CarHandler {
	return &CarHandler{usecase: uc, names: names, log: orNop(log)}
}

// ListCars godoc
// @Summary  List cars
// @Tags     cars
// @Produce  json
// @Param    search   query string false "plate, brand, model, color, year or owner name"
// @Param    clientId query string false "only cars of this client"
// @Success  200 {array} response.CarResponse
// @Router   /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	ctx := c.Request.Context()
	cars, err := h.usecase.ListCars(ctx, usecase.CarFilter{Search: c.Query("search"), ClientID: c.Query("clientId")})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	names := h.names.Index(ctx)
	out := make([]response.CarResponse, 0, len(cars))
	for _, car := range cars {
		out = append(out, response.FromCar(car, names.ClientName(car.ClientID)))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.usecase.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, car))
}

// CreateCar godoc
// @Summary  Register a car
// @Description The plate is stored upper-cased. The client must exist.
// @Tags     cars
// @Accept   json
// @Produce  json
// @Param    body body request.CarRequest true "car"
// @Success  201 {object} response.CarResponse
// @Failure  422 {object} pkg.HTTPError
// @Router   /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	var payload request.CarRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	car, err := h.usecase.CreateCar(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(c, car))
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	var payload request.UpdateCarRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c)
		return
	}
	car, err := h.usecase.UpdateCar(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, car))
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	if err := h.usecase.DeleteCar(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CarHandler) toResponse(c *gin.Context, car entities.Car) response.CarResponse {
	return response.FromCar(car, h.names.ResolveClientName(c.Request.Context(), car.ClientID))
}
