package request

import (
	"errors"
	"testing"
	"time"

	"oficina_nova_brasil/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-10-14 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", d)
	}

	ts, err := ParseDate("2026-10-14T15:04:05-03:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.UTC().Hour() != 18 {
		t.Fatalf("unexpected timestamp %v", ts)
	}

	if _, err := ParseDate("14/10/2026"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestServiceOrderRequest_ToInput(t *testing.T) {
	r := ServiceOrderRequest{
		ClientID: "c1",
		CarID:    "v1",
		Date:     "2026-10-01",
		Status:   " completed ",
		Items:    []OrderItemRequest{{ServiceID: "s1", Quantity: 2}},
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Status != entities.OrderStatusCompleted || in.Date.Day() != 1 || len(in.Items) != 1 || in.Items[0].Quantity != 2 {
		t.Fatalf("unexpected input: %+v", in)
	}

	r.Date = ""
	in, err = r.ToInput()
	if err != nil || !in.Date.IsZero() {
		t.Fatalf("expected zero date to be left for the default, got %v / %v", in.Date, err)
	}

	r.Date = "yesterday"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdateServiceOrderRequest_ToInput(t *testing.T) {
	status := "in_progress"
	in, err := UpdateServiceOrderRequest{Status: &status}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Status == nil || *in.Status != entities.OrderStatusInProgress || in.Date != nil || in.ClientID != nil {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestDraftDefaults(t *testing.T) {
	if !(EmployeeRequest{Name: "a", Role: "b"}).ToDraft().IsActive {
		t.Fatalf("employees start active")
	}
	inactive := false
	value := decimal.RequireFromString("450.00")
	hours := 2.0
	d := ServiceRequest{Description: "x", Category: "y", Value: &value, EstimatedTimeHours: &hours, IsActive: &inactive}.ToDraft()
	if d.IsActive || !d.Value.Equal(value) || d.EstimatedTimeHours != 2 {
		t.Fatalf("unexpected draft: %+v", d)
	}
}
