package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCategories is the suggestion list offered when registering a
// catalog entry. Category itself stays free text.
var ServiceCategories = []string{
	"Chapeação",
	"Pintura",
	"Funilaria",
	"Soldas",
	"Polimento",
	"Mecânica Geral",
	"Elétrica",
	"Outros",
}

// Service is a catalog entry that can be added to service orders.
//
// Value and EstimatedTimeHours are never negative.
type Service struct {
	ID                    string          `json:"id"`
	Description           string          `json:"description"`
	Value                 decimal.Decimal `json:"value"`
	EstimatedTimeHours    float64         `json:"estimatedTimeHours"`
	Category              string          `json:"category"`
	ResponsibleEmployeeID string          `json:"responsibleEmployeeId,omitempty"`
	IsActive              bool            `json:"isActive"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

type ServiceDraft struct {
	Description           string
	Value                 decimal.Decimal
	EstimatedTimeHours    float64
	Category              string
	ResponsibleEmployeeID string
	IsActive              bool
}

func (d ServiceDraft) Build(id string, now time.Time) Service {
	return Service{
		ID:                    id,
		Description:           d.Description,
		Value:                 d.Value,
		EstimatedTimeHours:    d.EstimatedTimeHours,
		Category:              d.Category,
		ResponsibleEmployeeID: d.ResponsibleEmployeeID,
		IsActive:              d.IsActive,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

type ServicePatch struct {
	Description           *string
	Value                 *decimal.Decimal
	EstimatedTimeHours    *float64
	Category              *string
	ResponsibleEmployeeID *string
	IsActive              *bool
}

func (p ServicePatch) Apply(s Service, now time.Time) Service {
	setString(&s.Description, p.Description)
	if p.Value != nil {
		s.Value = *p.Value
	}
	if p.EstimatedTimeHours != nil {
		s.EstimatedTimeHours = *p.EstimatedTimeHours
	}
	setString(&s.Category, p.Category)
	setString(&s.ResponsibleEmployeeID, p.ResponsibleEmployeeID)
	setBool(&s.IsActive, p.IsActive)
	s.UpdatedAt = now
	return s
}

func (s Service) Toggled(now time.Time) Service {
	s.IsActive = !s.IsActive
	s.UpdatedAt = now
	return s
}
