package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransitionTo moves the order to status. Entering completed from any other
// status stamps CompletedAt; leaving completed never clears it.
func (o *ServiceOrder) TransitionTo(status OrderStatus, now time.Time) {
	if status == OrderStatusCompleted && o.Status != OrderStatusCompleted {
		stamped := now
		o.CompletedAt = &stamped
	}
	o.Status = status
}

// Recalculate derives TotalValue and EstimatedTimeHours from Items.
func (o *ServiceOrder) Recalculate() {
	o.TotalValue, o.EstimatedTimeHours = OrderTotals(o.Items)
}

// OrderTotals sums items from scratch.
func OrderTotals(items []ServiceOrderItem) (decimal.Decimal, float64) {
	total := decimal.Zero
	hours := 0.0
	for _, it := range items {
		total = total.Add(it.TotalValue)
		hours += float64(it.Quantity) * it.UnitEstimatedTimeHours
	}
	return total, hours
}

// AddLineItem returns items with quantity units of svc added. An existing
// line for the same service is incremented and re-priced from the catalog
// entry; otherwise a new line is appended with the current price snapshot.
func AddLineItem(items []ServiceOrderItem, svc Service, quantity int) []ServiceOrderItem {
	out := cloneItems(items)
	for i := range out {
		if out[i].ServiceID != svc.ID {
			continue
		}
		out[i].Quantity += quantity
		out[i].UnitValue = svc.Value
		out[i].UnitEstimatedTimeHours = svc.EstimatedTimeHours
		out[i].TotalValue = lineTotal(out[i].UnitValue, out[i].Quantity)
		return out
	}
	return append(out, ServiceOrderItem{
		ServiceID:              svc.ID,
		Quantity:               quantity,
		UnitValue:              svc.Value,
		TotalValue:             lineTotal(svc.Value, quantity),
		UnitEstimatedTimeHours: svc.EstimatedTimeHours,
		Description:            svc.Description,
	})
}

// RemoveLineItem drops the whole line for serviceID.
func RemoveLineItem(items []ServiceOrderItem, serviceID string) ([]ServiceOrderItem, bool) {
	out := make([]ServiceOrderItem, 0, len(items))
	removed := false
	for _, it := range items {
		if it.ServiceID == serviceID {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

func lineTotal(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

func cloneItems(items []ServiceOrderItem) []ServiceOrderItem {
	if items == nil {
		return []ServiceOrderItem{}
	}
	out := make([]ServiceOrderItem, len(items))
	copy(out, items)
	return out
}
