package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_nova_brasil/internal/domain/entities"
	mock_interfaces "oficina_nova_brasil/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_GetDashboard(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	newUseCase := func(ctrl *gomock.Controller) (*DashboardUseCase, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockICarRepository, *mock_interfaces.MockIEmployeeRepository, *mock_interfaces.MockIServiceRepository, *mock_interfaces.MockIServiceOrderRepository) {
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		cars := mock_interfaces.NewMockICarRepository(ctrl)
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewDashboardUseCase(clients, cars, employees, services, orders).WithClock(func() time.Time { return now })
		return uc, clients, cars, employees, services, orders
	}

	t.Run("figures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, clients, cars, employees, services, orders := newUseCase(ctrl)

		clients.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "c1", Phone: "1"}, {ID: "c2"}}, nil)
		cars.EXPECT().List(gomock.Any()).Return([]entities.Car{{Year: 2010}, {Year: 2013}}, nil)
		employees.EXPECT().List(gomock.Any()).Return([]entities.Employee{{IsActive: true}, {IsActive: false}}, nil)
		services.EXPECT().List(gomock.Any()).Return([]entities.Service{
			{Value: decimal.NewFromInt(100), EstimatedTimeHours: 1, IsActive: true},
			{Value: decimal.NewFromInt(50), EstimatedTimeHours: 2},
		}, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{
			{Status: entities.OrderStatusCompleted, Date: now.AddDate(0, 0, -2), TotalValue: decimal.NewFromInt(300)},
			{Status: entities.OrderStatusCompleted, Date: now.AddDate(0, -1, 0), TotalValue: decimal.NewFromInt(999)},
			{Status: entities.OrderStatusPending, Date: now, TotalValue: decimal.NewFromInt(40)},
			{Status: entities.OrderStatusInProgress, Date: now},
			{Status: entities.OrderStatusCancelled, Date: now},
		}, nil)

		st, err := uc.GetDashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.TotalClients != 2 || st.ClientsWithPhone != 1 || st.TotalCars != 2 {
			t.Fatalf("unexpected client/car figures: %+v", st)
		}
		if st.ActiveEmployees != 1 || st.ActiveServices != 1 || st.InactiveServices != 1 {
			t.Fatalf("unexpected active figures: %+v", st)
		}
		if !st.AverageServiceValue.Equal(decimal.NewFromInt(75)) || st.AverageServiceHours != 1.5 {
			t.Fatalf("unexpected service averages: %+v", st)
		}
		if st.PendingOrders != 2 || st.CompletedOrders != 2 || st.CancelledOrders != 1 {
			t.Fatalf("unexpected order counts: %+v", st)
		}
		if !st.MonthlyRevenue.Equal(decimal.NewFromInt(300)) {
			t.Fatalf("expected revenue 300, got %s", st.MonthlyRevenue)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, clients, _, _, _, _ := newUseCase(ctrl)

		clients.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.GetDashboard(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
