package usecase

import (
	"context"
	"time"

	"oficina_nova_brasil/internal/domain/aggregate"
	"oficina_nova_brasil/internal/usecase/interfaces"
)

type IDashboardUseCase interface {
	GetDashboard(ctx context.Context) (aggregate.DashboardStats, error)
}

// DashboardUseCase reads every collection and recomputes the figures on each
// call; nothing is cached.
type DashboardUseCase struct {
	clients   interfaces.IClientRepository
	cars      interfaces.ICarRepository
	employees interfaces.IEmployeeRepository
	services  interfaces.IServiceRepository
	orders    interfaces.IServiceOrderRepository
	now       func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	clients interfaces.IClientRepository,
	cars interfaces.ICarRepository,
	employees interfaces.IEmployeeRepository,
	services interfaces.IServiceRepository,
	orders interfaces.IServiceOrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		clients:   clients,
		cars:      cars,
		employees: employees,
		services:  services,
		orders:    orders,
		now:       time.Now,
	}
}

// WithClock pins "now" for the monthly revenue window.
func (u *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	u.now = now
	return u
}

func (u *DashboardUseCase) GetDashboard(ctx context.Context) (aggregate.DashboardStats, error) {
	var (
		s   aggregate.Snapshot
		err error
	)
	if s.Clients, err = u.clients.List(ctx); err != nil {
		return aggregate.DashboardStats{}, err
	}
	if s.Cars, err = u.cars.List(ctx); err != nil {
		return aggregate.DashboardStats{}, err
	}
	if s.Employees, err = u.employees.List(ctx); err != nil {
		return aggregate.DashboardStats{}, err
	}
	if s.Services, err = u.services.List(ctx); err != nil {
		return aggregate.DashboardStats{}, err
	}
	if s.Orders, err = u.orders.List(ctx); err != nil {
		return aggregate.DashboardStats{}, err
	}
	return aggregate.Dashboard(s, u.now()), nil
}
