package entities

import (
	"strings"
	"time"
)

// Car is a customer vehicle. ClientID is a weak reference: the owner may have
// been deleted since.
type Car struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	Plate        string    `json:"plate"`
	Model        string    `json:"model"`
	Brand        string    `json:"brand"`
	Year         int       `json:"year"`
	Color        string    `json:"color,omitempty"`
	Observations string    `json:"observations,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Summary is the one-line description used on orders and printouts.
func (c Car) Summary() string {
	return c.Plate + " - " + c.Brand + " " + c.Model
}

// NormalizePlate upper-cases a licence plate.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

type CarDraft struct {
	ClientID     string
	Plate        string
	Model        string
	Brand        string
	Year         int
	Color        string
	Observations string
}

func (d CarDraft) Build(id string, now time.Time) Car {
	return Car{
		ID:           id,
		ClientID:     d.ClientID,
		Plate:        NormalizePlate(d.Plate),
		Model:        d.Model,
		Brand:        d.Brand,
		Year:         d.Year,
		Color:        d.Color,
		Observations: d.Observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

type CarPatch struct {
	ClientID     *string
	Plate        *string
	Model        *string
	Brand        *string
	Year         *int
	Color        *string
	Observations *string
}

func (p CarPatch) Apply(c Car, now time.Time) Car {
	setString(&c.ClientID, p.ClientID)
	if p.Plate != nil {
		c.Plate = NormalizePlate(*p.Plate)
	}
	setString(&c.Model, p.Model)
	setString(&c.Brand, p.Brand)
	if p.Year != nil {
		c.Year = *p.Year
	}
	setString(&c.Color, p.Color)
	setString(&c.Observations, p.Observations)
	c.UpdatedAt = now
	return c
}
