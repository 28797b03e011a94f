// Package aggregate derives dashboard figures from repository snapshots.
// Everything here is recomputed per call and keeps no state.
package aggregate

import (
	"math"
	"time"

	"oficina_nova_brasil/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Snapshot is a read-only view of every collection at one instant.
type Snapshot struct {
	Clients   []entities.Client
	Cars      []entities.Car
	Employees []entities.Employee
	Services  []entities.Service
	Orders    []entities.ServiceOrder
}

type DashboardStats struct {
	TotalClients     int
	ClientsWithPhone int
	ClientsWithEmail int

	TotalCars      int
	AverageCarYear int

	TotalEmployees    int
	ActiveEmployees   int
	InactiveEmployees int

	TotalServices       int
	ActiveServices      int
	InactiveServices    int
	AverageServiceValue decimal.Decimal
	AverageServiceHours float64

	TotalOrders     int
	PendingOrders   int
	CompletedOrders int
	CancelledOrders int
	MonthlyRevenue  decimal.Decimal
}

// Dashboard computes all figures. now fixes the "current month" used for
// revenue.
func Dashboard(s Snapshot, now time.Time) DashboardStats {
	st := DashboardStats{
		TotalClients:        len(s.Clients),
		TotalCars:           len(s.Cars),
		AverageCarYear:      AverageCarYear(s.Cars),
		TotalEmployees:      len(s.Employees),
		TotalServices:       len(s.Services),
		AverageServiceValue: AverageServiceValue(s.Services),
		AverageServiceHours: AverageServiceHours(s.Services),
		TotalOrders:         len(s.Orders),
		MonthlyRevenue:      MonthlyRevenue(s.Orders, now),
	}

	for _, c := range s.Clients {
		if c.Phone != "" {
			st.ClientsWithPhone++
		}
		if c.Email != "" {
			st.ClientsWithEmail++
		}
	}
	for _, e := range s.Employees {
		if e.IsActive {
			st.ActiveEmployees++
		}
	}
	st.InactiveEmployees = st.TotalEmployees - st.ActiveEmployees

	for _, svc := range s.Services {
		if svc.IsActive {
			st.ActiveServices++
		}
	}
	st.InactiveServices = st.TotalServices - st.ActiveServices

	for _, o := range s.Orders {
		switch {
		case o.Status.IsOpen():
			st.PendingOrders++
		case o.Status == entities.OrderStatusCompleted:
			st.CompletedOrders++
		case o.Status == entities.OrderStatusCancelled:
			st.CancelledOrders++
		}
	}
	return st
}

// MonthlyRevenue sums completed orders dated in the calendar month of now,
// evaluated in now's location.
func MonthlyRevenue(orders []entities.ServiceOrder, now time.Time) decimal.Decimal {
	total := decimal.Zero
	year, month, _ := now.Date()
	for _, o := range orders {
		if o.Status != entities.OrderStatusCompleted {
			continue
		}
		oy, om, _ := o.Date.In(now.Location()).Date()
		if oy == year && om == month {
			total = total.Add(o.TotalValue)
		}
	}
	return total
}

// AverageServiceValue is rounded to cents; zero for an empty catalog.
func AverageServiceValue(services []entities.Service) decimal.Decimal {
	if len(services) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, s := range services {
		sum = sum.Add(s.Value)
	}
	return sum.Div(decimal.NewFromInt(int64(len(services)))).Round(2)
}

func AverageServiceHours(services []entities.Service) float64 {
	if len(services) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range services {
		sum += s.EstimatedTimeHours
	}
	return sum / float64(len(services))
}

func AverageCarYear(cars []entities.Car) int {
	if len(cars) == 0 {
		return 0
	}
	sum := 0
	for _, c := range cars {
		sum += c.Year
	}
	return int(math.Round(float64(sum) / float64(len(cars))))
}
