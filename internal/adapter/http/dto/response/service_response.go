package response

import (
	"time"

	"oficina_nova_brasil/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ServiceResponse struct {
	ID                      string          `json:"id"`
	Description             string          `json:"description"`
	Category                string          `json:"category"`
	Value                   decimal.Decimal `json:"value"`
	EstimatedTimeHours      float64         `json:"estimatedTimeHours"`
	ResponsibleEmployeeID   string          `json:"responsibleEmployeeId"`
	ResponsibleEmployeeName string          `json:"responsibleEmployeeName"`
	IsActive                bool            `json:"isActive"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
}

func FromService(s entities.Service, employeeName string) ServiceResponse {
	return ServiceResponse{
		ID:                      s.ID,
		Description:             s.Description,
		Category:                s.Category,
		Value:                   s.Value,
		EstimatedTimeHours:      s.EstimatedTimeHours,
		ResponsibleEmployeeID:   s.ResponsibleEmployeeID,
		ResponsibleEmployeeName: employeeName,
		IsActive:                s.IsActive,
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
