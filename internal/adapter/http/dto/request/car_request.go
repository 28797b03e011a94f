package request

import "oficina_nova_brasil/internal/domain/entities"

type CarRequest struct {
	ClientID     string `json:"clientId" binding:"required"`
	Plate        string `json:"plate" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required,gt=0"`
	Color        string `json:"color"`
	Observations string `json:"observations"`
}

func (r CarRequest) ToDraft() entities.CarDraft {
	return entities.CarDraft{
		ClientID:     r.ClientID,
		Plate:        r.Plate,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Color:        r.Color,
		Observations: r.Observations,
	}
}

type UpdateCarRequest struct {
	ClientID     *string `json:"clientId"`
	Plate        *string `json:"plate"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	Year         *int    `json:"year"`
	Color        *string `json:"color"`
	Observations *string `json:"observations"`
}

func (r UpdateCarRequest) ToPatch() entities.CarPatch {
	return entities.CarPatch{
		ClientID:     r.ClientID,
		Plate:        r.Plate,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Color:        r.Color,
		Observations: r.Observations,
	}
}
