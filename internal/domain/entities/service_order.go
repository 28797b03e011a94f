package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a service order (OS).
//
// Every status is reachable from every other one. Only entering
// OrderStatusCompleted has a side effect: it stamps CompletedAt.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether the order still needs work.
func (s OrderStatus) IsOpen() bool {
	return s == OrderStatusPending || s == OrderStatusInProgress
}

// ServiceOrderItem is a line item embedded in a ServiceOrder.
//
// UnitValue and UnitEstimatedTimeHours are snapshots of the catalog entry at
// the time the item was added; TotalValue is always Quantity * UnitValue.
type ServiceOrderItem struct {
	ServiceID              string          `json:"serviceId"`
	Quantity               int             `json:"quantity"`
	UnitValue              decimal.Decimal `json:"unitValue"`
	TotalValue             decimal.Decimal `json:"totalValue"`
	UnitEstimatedTimeHours float64         `json:"unitEstimatedTimeHours,omitempty"`
	Description            string          `json:"description,omitempty"`
}

// ServiceOrder bundles catalog services for one client and car.
//
// Storage model:
//   - slot: service_orders
//   - id: "OS-" + unix milliseconds (see identity.TimestampPrefixedID)
//
// TotalValue and EstimatedTimeHours are derived from Items and recomputed on
// every item change.
type ServiceOrder struct {
	ID                 string             `json:"id"`
	ClientID           string             `json:"clientId"`
	CarID              string             `json:"carId"`
	Date               time.Time          `json:"date"`
	Status             OrderStatus        `json:"status"`
	Items              []ServiceOrderItem `json:"items"`
	TotalValue         decimal.Decimal    `json:"totalValue"`
	EstimatedTimeHours float64            `json:"estimatedTimeHours"`
	Observations       string             `json:"observations,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	CompletedAt        *time.Time         `json:"completedAt,omitempty"`
}

// ServiceOrderDraft is an order being composed before it is persisted.
type ServiceOrderDraft struct {
	ClientID     string
	CarID        string
	Date         time.Time
	Status       OrderStatus
	Items        []ServiceOrderItem
	Observations string
}

func (d *ServiceOrderDraft) AddItem(svc Service, quantity int) {
	d.Items = AddLineItem(d.Items, svc, quantity)
}

func (d *ServiceOrderDraft) RemoveItem(serviceID string) bool {
	var removed bool
	d.Items, removed = RemoveLineItem(d.Items, serviceID)
	return removed
}

// Totals returns the total value and estimated hours the draft would have.
func (d ServiceOrderDraft) Totals() (decimal.Decimal, float64) {
	return OrderTotals(d.Items)
}

// Build materialises the draft. A draft without status starts pending; a
// draft created directly as completed counts as entering completed.
func (d ServiceOrderDraft) Build(id string, now time.Time) ServiceOrder {
	o := ServiceOrder{
		ID:           id,
		ClientID:     d.ClientID,
		CarID:        d.CarID,
		Date:         d.Date,
		Status:       OrderStatusPending,
		Items:        cloneItems(d.Items),
		Observations: d.Observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if o.Date.IsZero() {
		o.Date = now
	}
	o.Recalculate()
	if d.Status != "" {
		o.TransitionTo(d.Status, now)
	}
	return o
}

type ServiceOrderPatch struct {
	ClientID     *string
	CarID        *string
	Date         *time.Time
	Status       *OrderStatus
	Items        *[]ServiceOrderItem
	Observations *string
}

func (p ServiceOrderPatch) Apply(o ServiceOrder, now time.Time) ServiceOrder {
	o.Items = cloneItems(o.Items)
	setString(&o.ClientID, p.ClientID)
	setString(&o.CarID, p.CarID)
	if p.Date != nil {
		o.Date = *p.Date
	}
	setString(&o.Observations, p.Observations)
	if p.Items != nil {
		o.Items = cloneItems(*p.Items)
		o.Recalculate()
	}
	if p.Status != nil {
		o.TransitionTo(*p.Status, now)
	}
	o.UpdatedAt = now
	return o
}
