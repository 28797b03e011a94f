package response

import (
	"oficina_nova_brasil/internal/domain/aggregate"

	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	TotalClients        int             `json:"totalClients"`
	ClientsWithPhone    int             `json:"clientsWithPhone"`
	ClientsWithEmail    int             `json:"clientsWithEmail"`
	TotalCars           int             `json:"totalCars"`
	AverageCarYear      int             `json:"averageCarYear"`
	TotalEmployees      int             `json:"totalEmployees"`
	ActiveEmployees     int             `json:"activeEmployees"`
	InactiveEmployees   int             `json:"inactiveEmployees"`
	TotalServices       int             `json:"totalServices"`
	ActiveServices      int             `json:"activeServices"`
	InactiveServices    int             `json:"inactiveServices"`
	AverageServiceValue decimal.Decimal `json:"averageServiceValue"`
	AverageServiceHours float64         `json:"averageServiceHours"`
	TotalOrders         int             `json:"totalOrders"`
	PendingOrders       int             `json:"pendingOrders"`
	CompletedOrders     int             `json:"completedOrders"`
	CancelledOrders     int             `json:"cancelledOrders"`
	MonthlyRevenue      decimal.Decimal `json:"monthlyRevenue"`
}

func FromDashboard(s aggregate.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalClients:        s.TotalClients,
		ClientsWithPhone:    s.ClientsWithPhone,
		ClientsWithEmail:    s.ClientsWithEmail,
		TotalCars:           s.TotalCars,
		AverageCarYear:      s.AverageCarYear,
		TotalEmployees:      s.TotalEmployees,
		ActiveEmployees:     s.ActiveEmployees,
		InactiveEmployees:   s.InactiveEmployees,
		TotalServices:       s.TotalServices,
		ActiveServices:      s.ActiveServices,
		InactiveServices:    s.InactiveServices,
		AverageServiceValue: s.AverageServiceValue,
		AverageServiceHours: s.AverageServiceHours,
		TotalOrders:         s.TotalOrders,
		PendingOrders:       s.PendingOrders,
		CompletedOrders:     s.CompletedOrders,
		CancelledOrders:     s.CancelledOrders,
		MonthlyRevenue:      s.MonthlyRevenue,
	}
}
