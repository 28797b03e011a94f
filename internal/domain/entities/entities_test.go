package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCarDraft_BuildNormalizesPlate(t *testing.T) {
	now := time.Now().UTC()
	c := CarDraft{ClientID: "c1", Plate: " abc1234 ", Brand: "Fiat", Model: "Uno", Year: 2010}.Build("car-1", now)
	if c.Plate != "ABC1234" {
		t.Fatalf("expected ABC1234, got %q", c.Plate)
	}
	if c.Summary() != "ABC1234 - Fiat Uno" {
		t.Fatalf("unexpected summary %q", c.Summary())
	}

	plate := "xyz9k87"
	patched := CarPatch{Plate: &plate}.Apply(c, now.Add(time.Minute))
	if patched.Plate != "XYZ9K87" {
		t.Fatalf("expected patched plate upper-cased, got %q", patched.Plate)
	}
	if patched.Model != "Uno" || !patched.CreatedAt.Equal(now) {
		t.Fatalf("unpatched fields must be kept: %+v", patched)
	}
}

func TestClientPatch_Apply(t *testing.T) {
	now := time.Now().UTC()
	c := ClientDraft{Name: "Maria Silva", Phone: "11999990000", TaxID: "123.456.789-00"}.Build("c1", now)

	name := "Maria S. Silva"
	later := now.Add(time.Hour)
	patched := ClientPatch{Name: &name}.Apply(c, later)
	if patched.Name != name || patched.Phone != c.Phone || patched.TaxID != c.TaxID {
		t.Fatalf("unexpected patch result: %+v", patched)
	}
	if patched.ID != "c1" || !patched.CreatedAt.Equal(now) || !patched.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected identity/timestamps: %+v", patched)
	}
}

func TestToggled(t *testing.T) {
	now := time.Now().UTC()
	e := EmployeeDraft{Name: "João", Role: "Funileiro", IsActive: true}.Build("e1", now)
	if e.Toggled(now).IsActive {
		t.Fatalf("expected employee deactivated")
	}

	s := ServiceDraft{Description: "Polimento", Value: decimal.NewFromInt(200)}.Build("s1", now)
	later := now.Add(time.Minute)
	toggled := s.Toggled(later)
	if !toggled.IsActive || !toggled.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected toggle result: %+v", toggled)
	}

	active := false
	if (ServicePatch{IsActive: &active}).Apply(toggled, later).IsActive {
		t.Fatalf("expected patch to deactivate")
	}
}
