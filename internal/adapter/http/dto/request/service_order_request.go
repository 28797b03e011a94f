package request

import (
	"errors"
	"strings"
	"time"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC3339")

const dateOnly = "2006-01-02"

// ParseDate accepts a calendar date or a full RFC3339 timestamp. A bare date
// is read as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

type OrderItemRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

func (r OrderItemRequest) ToInput() usecase.OrderItemInput {
	return usecase.OrderItemInput{ServiceID: r.ServiceID, Quantity: r.Quantity}
}

// ServiceOrderRequest opens an order. Date defaults to today and Status to
// pending.
type ServiceOrderRequest struct {
	ClientID     string             `json:"clientId" binding:"required"`
	CarID        string             `json:"carId" binding:"required"`
	Date         string             `json:"date"`
	Status       string             `json:"status"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Observations string             `json:"observations"`
}

func (r ServiceOrderRequest) ToInput() (usecase.CreateOrderInput, error) {
	in := usecase.CreateOrderInput{
		ClientID:     r.ClientID,
		CarID:        r.CarID,
		Status:       entities.OrderStatus(strings.TrimSpace(r.Status)),
		Observations: r.Observations,
		Items:        make([]usecase.OrderItemInput, 0, len(r.Items)),
	}
	if strings.TrimSpace(r.Date) != "" {
		d, err := ParseDate(r.Date)
		if err != nil {
			return usecase.CreateOrderInput{}, err
		}
		in.Date = d
	}
	for _, it := range r.Items {
		in.Items = append(in.Items, it.ToInput())
	}
	return in, nil
}

type UpdateServiceOrderRequest struct {
	ClientID     *string `json:"clientId"`
	CarID        *string `json:"carId"`
	Date         *string `json:"date"`
	Status       *string `json:"status"`
	Observations *string `json:"observations"`
}

func (r UpdateServiceOrderRequest) ToInput() (usecase.UpdateOrderInput, error) {
	in := usecase.UpdateOrderInput{
		ClientID:     r.ClientID,
		CarID:        r.CarID,
		Observations: r.Observations,
	}
	if r.Date != nil {
		d, err := ParseDate(*r.Date)
		if err != nil {
			return usecase.UpdateOrderInput{}, err
		}
		in.Date = &d
	}
	if r.Status != nil {
		s := entities.OrderStatus(strings.TrimSpace(*r.Status))
		in.Status = &s
	}
	return in, nil
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
