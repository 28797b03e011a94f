package response

import (
	"time"

	"oficina_nova_brasil/internal/domain/entities"
)

// CarResponse carries the owner's name resolved at read time.
type CarResponse struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	ClientName   string    `json:"clientName"`
	Plate        string    `json:"plate"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Color        string    `json:"color"`
	Observations string    `json:"observations"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromCar(c entities.Car, clientName string) CarResponse {
	return CarResponse{
		ID:           c.ID,
		ClientID:     c.ClientID,
		ClientName:   clientName,
		Plate:        c.Plate,
		Brand:        c.Brand,
		Model:        c.Model,
		Year:         c.Year,
		Color:        c.Color,
		Observations: c.Observations,
		Summary:      c.Summary(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
