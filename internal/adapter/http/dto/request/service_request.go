package request

import (
	"oficina_nova_brasil/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ServiceRequest registers a catalog entry. Value accepts a JSON number or a
// decimal string ("450.00"). IsActive defaults to true.
type ServiceRequest struct {
	Description           string           `json:"description" binding:"required"`
	Category              string           `json:"category" binding:"required"`
	Value                 *decimal.Decimal `json:"value" binding:"required"`
	EstimatedTimeHours    *float64         `json:"estimatedTimeHours" binding:"required"`
	ResponsibleEmployeeID string           `json:"responsibleEmployeeId"`
	IsActive              *bool            `json:"isActive"`
}

func (r ServiceRequest) ToDraft() entities.ServiceDraft {
	d := entities.ServiceDraft{
		Description:           r.Description,
		Category:              r.Category,
		ResponsibleEmployeeID: r.ResponsibleEmployeeID,
		IsActive:              boolOr(r.IsActive, true),
	}
	if r.Value != nil {
		d.Value = *r.Value
	}
	if r.EstimatedTimeHours != nil {
		d.EstimatedTimeHours = *r.EstimatedTimeHours
	}
	return d
}

type UpdateServiceRequest struct {
	Description           *string          `json:"description"`
	Category              *string          `json:"category"`
	Value                 *decimal.Decimal `json:"value"`
	EstimatedTimeHours    *float64         `json:"estimatedTimeHours"`
	ResponsibleEmployeeID *string          `json:"responsibleEmployeeId"`
	IsActive              *bool            `json:"isActive"`
}

func (r UpdateServiceRequest) ToPatch() entities.ServicePatch {
	return entities.ServicePatch{
		Description:           r.Description,
		Category:              r.Category,
		Value:                 r.Value,
		EstimatedTimeHours:    r.EstimatedTimeHours,
		ResponsibleEmployeeID: r.ResponsibleEmployeeID,
		IsActive:              r.IsActive,
	}
}
