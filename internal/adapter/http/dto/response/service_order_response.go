package response

import (
	"time"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase"

	"github.com/shopspring/decimal"
)

type ServiceOrderItemResponse struct {
	ServiceID              string          `json:"serviceId"`
	Description            string          `json:"description"`
	Quantity               int             `json:"quantity"`
	UnitValue              decimal.Decimal `json:"unitValue"`
	TotalValue             decimal.Decimal `json:"totalValue"`
	UnitEstimatedTimeHours float64         `json:"unitEstimatedTimeHours"`
}

type ServiceOrderResponse struct {
	ID                 string                     `json:"id"`
	ClientID           string                     `json:"clientId"`
	ClientName         string                     `json:"clientName"`
	CarID              string                     `json:"carId"`
	CarSummary         string                     `json:"carSummary"`
	Date               time.Time                  `json:"date"`
	Status             string                     `json:"status"`
	Items              []ServiceOrderItemResponse `json:"items"`
	TotalValue         decimal.Decimal            `json:"totalValue"`
	EstimatedTimeHours float64                    `json:"estimatedTimeHours"`
	Observations       string                     `json:"observations"`
	CreatedAt          time.Time                  `json:"createdAt"`
	UpdatedAt          time.Time                  `json:"updatedAt"`
	CompletedAt        *time.Time                 `json:"completedAt,omitempty"`
}

// FromServiceOrder maps an order; item descriptions come from the snapshot
// taken when each item was added.
func FromServiceOrder(o entities.ServiceOrder, clientName, carSummary string) ServiceOrderResponse {
	items := make([]ServiceOrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, fromItem(it, it.Description))
	}
	return ServiceOrderResponse{
		ID:                 o.ID,
		ClientID:           o.ClientID,
		ClientName:         clientName,
		CarID:              o.CarID,
		CarSummary:         carSummary,
		Date:               o.Date,
		Status:             string(o.Status),
		Items:              items,
		TotalValue:         o.TotalValue,
		EstimatedTimeHours: o.EstimatedTimeHours,
		Observations:       o.Observations,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		CompletedAt:        o.CompletedAt,
	}
}

// FromOrderDetails is the printable view, with every reference resolved
// against the current catalog.
func FromOrderDetails(d usecase.OrderDetails) ServiceOrderResponse {
	res := FromServiceOrder(d.Order, d.ClientName, d.CarSummary)
	res.Items = make([]ServiceOrderItemResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		res.Items = append(res.Items, fromItem(l.ServiceOrderItem, l.ServiceDescription))
	}
	return res
}

func fromItem(it entities.ServiceOrderItem, description string) ServiceOrderItemResponse {
	return ServiceOrderItemResponse{
		ServiceID:              it.ServiceID,
		Description:            description,
		Quantity:               it.Quantity,
		UnitValue:              it.UnitValue,
		TotalValue:             it.TotalValue,
		UnitEstimatedTimeHours: it.UnitEstimatedTimeHours,
	}
}
