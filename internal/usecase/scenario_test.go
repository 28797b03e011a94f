package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"oficina_nova_brasil/internal/adapter/persistence/repository"
	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/infrastructure/storage/memory"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type shop struct {
	clients   *ClientUseCase
	cars      *CarUseCase
	employees *EmployeeUseCase
	services  *ServiceUseCase
	orders    *ServiceOrderUseCase
	resolver  *ReferenceResolver
	dashboard *DashboardUseCase
}

func newShop(t *testing.T, now func() time.Time) *shop {
	t.Helper()
	store := memory.NewStore()
	log := zap.NewNop()

	clientRepo := repository.NewClientRepository(store, repository.WithClock(now))
	carRepo := repository.NewCarRepository(store, repository.WithClock(now))
	employeeRepo := repository.NewEmployeeRepository(store, repository.WithClock(now))
	serviceRepo := repository.NewServiceRepository(store, repository.WithClock(now))
	orderRepo := repository.NewServiceOrderRepository(store, repository.WithClock(now))

	resolver := NewReferenceResolver(clientRepo, carRepo, employeeRepo, serviceRepo, log)
	return &shop{
		clients:   NewClientUseCase(clientRepo, log),
		cars:      NewCarUseCase(carRepo, clientRepo, log),
		employees: NewEmployeeUseCase(employeeRepo, log),
		services:  NewServiceUseCase(serviceRepo, employeeRepo, log),
		orders:    NewServiceOrderUseCase(orderRepo, clientRepo, carRepo, serviceRepo, resolver, log),
		resolver:  resolver,
		dashboard: NewDashboardUseCase(clientRepo, carRepo, employeeRepo, serviceRepo, orderRepo).WithClock(now),
	}
}

func TestShopScenario(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	s := newShop(t, func() time.Time { return now })

	c1, err := s.clients.CreateClient(ctx, entities.ClientDraft{Name: "Maria Silva", TaxID: "123.456.789-00", Phone: "11999990000"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	v1, err := s.cars.CreateCar(ctx, entities.CarDraft{ClientID: c1.ID, Plate: "abc1234", Brand: "Fiat", Model: "Uno", Year: 2015})
	if err != nil {
		t.Fatalf("create car: %v", err)
	}
	if v1.Plate != "ABC1234" {
		t.Fatalf("expected upper-cased plate, got %q", v1.Plate)
	}
	s1, err := s.services.CreateService(ctx, entities.ServiceDraft{
		Description:        "Troca de para-choque",
		Value:              decimal.RequireFromString("450.00"),
		EstimatedTimeHours: 2,
		Category:           "Funilaria",
		IsActive:           true,
	})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	o1, err := s.orders.CreateOrder(ctx, CreateOrderInput{
		ClientID: c1.ID,
		CarID:    v1.ID,
		Items:    []OrderItemInput{{ServiceID: s1.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if !o1.TotalValue.Equal(decimal.RequireFromString("450")) || o1.EstimatedTimeHours != 2 {
		t.Fatalf("unexpected totals: %s / %v", o1.TotalValue, o1.EstimatedTimeHours)
	}
	if o1.Status != entities.OrderStatusPending || o1.CompletedAt != nil {
		t.Fatalf("expected a pending order without completion, got %+v", o1)
	}

	done, err := s.orders.ChangeStatus(ctx, o1.ID, entities.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("complete order: %v", err)
	}
	if done.CompletedAt == nil {
		t.Fatalf("expected completedAt to be set")
	}

	stats, err := s.dashboard.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !stats.MonthlyRevenue.Equal(decimal.RequireFromString("450")) || stats.CompletedOrders != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if err := s.clients.DeleteClient(ctx, c1.ID); err != nil {
		t.Fatalf("delete client: %v", err)
	}
	cars, err := s.cars.ListCars(ctx, CarFilter{})
	if err != nil || len(cars) != 1 {
		t.Fatalf("expected the car to survive its owner, got %v / %v", cars, err)
	}
	if got := s.resolver.ResolveClientName(ctx, cars[0].ClientID); got != ClientNotFoundPlaceholder {
		t.Fatalf("expected placeholder, got %q", got)
	}

	details, err := s.orders.GetOrderDetails(ctx, o1.ID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if details.ClientName != ClientNotFoundPlaceholder || details.CarSummary != "ABC1234 - Fiat Uno" {
		t.Fatalf("unexpected details: %+v", details)
	}
	if len(details.Lines) != 1 || details.Lines[0].ServiceDescription != "Troca de para-choque" {
		t.Fatalf("unexpected lines: %+v", details.Lines)
	}
}

func TestServiceOrderUseCase_Items(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	s := newShop(t, func() time.Time { return now })

	c, _ := s.clients.CreateClient(ctx, entities.ClientDraft{Name: "João", TaxID: "1", Phone: "2"})
	car, _ := s.cars.CreateCar(ctx, entities.CarDraft{ClientID: c.ID, Plate: "xyz9z99", Brand: "VW", Model: "Gol", Year: 2010})
	paint, _ := s.services.CreateService(ctx, entities.ServiceDraft{Description: "Pintura", Value: decimal.NewFromInt(300), EstimatedTimeHours: 3, Category: "Pintura", IsActive: true})
	polish, _ := s.services.CreateService(ctx, entities.ServiceDraft{Description: "Polimento", Value: decimal.NewFromInt(100), EstimatedTimeHours: 1.5, Category: "Polimento", IsActive: true})

	o, err := s.orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, CarID: car.ID, Items: []OrderItemInput{{ServiceID: paint.ID, Quantity: 1}}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	t.Run("add new line", func(t *testing.T) {
		got, err := s.orders.AddOrderItem(ctx, o.ID, OrderItemInput{ServiceID: polish.ID, Quantity: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Items) != 2 || !got.TotalValue.Equal(decimal.NewFromInt(500)) || got.EstimatedTimeHours != 6 {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("re-add increments the existing line", func(t *testing.T) {
		got, err := s.orders.AddOrderItem(ctx, o.ID, OrderItemInput{ServiceID: paint.ID, Quantity: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Items) != 2 || got.Items[0].Quantity != 2 || !got.TotalValue.Equal(decimal.NewFromInt(800)) {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("remove line", func(t *testing.T) {
		got, err := s.orders.RemoveOrderItem(ctx, o.ID, polish.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Items) != 1 || !got.TotalValue.Equal(decimal.NewFromInt(600)) || got.EstimatedTimeHours != 6 {
			t.Fatalf("unexpected order: %+v", got)
		}
		if _, err := s.orders.RemoveOrderItem(ctx, o.ID, polish.ID); !errors.Is(err, ErrOrderItemNotFound) {
			t.Fatalf("expected ErrOrderItemNotFound, got %v", err)
		}
	})

	t.Run("inactive service cannot be added", func(t *testing.T) {
		if _, err := s.services.ToggleServiceActive(ctx, polish.ID); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		_, err := s.orders.AddOrderItem(ctx, o.ID, OrderItemInput{ServiceID: polish.ID, Quantity: 1})
		if !errors.Is(err, ErrServiceInactive) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrServiceInactive, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := s.orders.AddOrderItem(ctx, o.ID, OrderItemInput{ServiceID: paint.ID})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := s.orders.AddOrderItem(ctx, "OS-0", OrderItemInput{ServiceID: paint.ID, Quantity: 1})
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})

	t.Run("last line cannot be removed", func(t *testing.T) {
		_, err := s.orders.RemoveOrderItem(ctx, o.ID, paint.ID)
		if !errors.Is(err, ErrEmptyOrder) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrEmptyOrder, got %v", err)
		}
		stored, err := s.orders.GetOrder(ctx, o.ID)
		if err != nil {
			t.Fatalf("get order: %v", err)
		}
		if len(stored.Items) != 1 || !stored.TotalValue.Equal(decimal.NewFromInt(600)) {
			t.Fatalf("order must be left untouched, got %+v", stored)
		}
	})
}

func TestServiceOrderUseCase_ConcurrentItemEdits(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, time.Now)

	c, _ := s.clients.CreateClient(ctx, entities.ClientDraft{Name: "Carla", TaxID: "9", Phone: "8"})
	car, _ := s.cars.CreateCar(ctx, entities.CarDraft{ClientID: c.ID, Plate: "ccc3c33", Brand: "GM", Model: "Onix", Year: 2020})
	base, _ := s.services.CreateService(ctx, entities.ServiceDraft{Description: "Base", Value: decimal.NewFromInt(10), Category: "Outros", IsActive: true})
	o, err := s.orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, CarID: car.ID, Items: []OrderItemInput{{ServiceID: base.ID, Quantity: 1}}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	const n = 20
	ids := make([]string, n)
	for i := range ids {
		svc, err := s.services.CreateService(ctx, entities.ServiceDraft{
			Description: fmt.Sprintf("Serviço %d", i),
			Value:       decimal.NewFromInt(10),
			Category:    "Outros",
			IsActive:    true,
		})
		if err != nil {
			t.Fatalf("create service: %v", err)
		}
		ids[i] = svc.ID
	}

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			_, err := s.orders.AddOrderItem(ctx, o.ID, OrderItemInput{ServiceID: id, Quantity: 1})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("add item: %v", err)
	}

	got, err := s.orders.GetOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if len(got.Items) != n+1 {
		t.Fatalf("expected %d items, got %d", n+1, len(got.Items))
	}
	if !got.TotalValue.Equal(decimal.NewFromInt(10 * (n + 1))) {
		t.Fatalf("unexpected total %s", got.TotalValue)
	}
}

func TestServiceOrderUseCase_CreateGuards(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	s := newShop(t, func() time.Time { return now })

	owner, _ := s.clients.CreateClient(ctx, entities.ClientDraft{Name: "Ana", TaxID: "1", Phone: "2"})
	other, _ := s.clients.CreateClient(ctx, entities.ClientDraft{Name: "Bruno", TaxID: "3", Phone: "4"})
	car, _ := s.cars.CreateCar(ctx, entities.CarDraft{ClientID: owner.ID, Plate: "aaa0000", Brand: "Ford", Model: "Ka", Year: 2018})
	svc, _ := s.services.CreateService(ctx, entities.ServiceDraft{Description: "Solda", Value: decimal.NewFromInt(80), EstimatedTimeHours: 1, Category: "Soldas", IsActive: true})
	items := []OrderItemInput{{ServiceID: svc.ID, Quantity: 1}}

	tests := []struct {
		name string
		in   CreateOrderInput
		want error
	}{
		{"missing client", CreateOrderInput{CarID: car.ID, Items: items}, ErrValidation},
		{"unknown client", CreateOrderInput{ClientID: "nope", CarID: car.ID, Items: items}, ErrMissingReference},
		{"unknown car", CreateOrderInput{ClientID: owner.ID, CarID: "nope", Items: items}, ErrMissingReference},
		{"car of another client", CreateOrderInput{ClientID: other.ID, CarID: car.ID, Items: items}, ErrCarClientMismatch},
		{"no items", CreateOrderInput{ClientID: owner.ID, CarID: car.ID}, ErrEmptyOrder},
		{"bad status", CreateOrderInput{ClientID: owner.ID, CarID: car.ID, Items: items, Status: "paid"}, ErrInvalidStatus},
		{"unknown service", CreateOrderInput{ClientID: owner.ID, CarID: car.ID, Items: []OrderItemInput{{ServiceID: "x", Quantity: 1}}}, ErrMissingReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.orders.CreateOrder(ctx, tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("created as completed", func(t *testing.T) {
		o, err := s.orders.CreateOrder(ctx, CreateOrderInput{ClientID: owner.ID, CarID: car.ID, Items: items, Status: entities.OrderStatusCompleted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.CompletedAt == nil || !o.CompletedAt.Equal(now) {
			t.Fatalf("expected completedAt=now, got %v", o.CompletedAt)
		}
	})

	t.Run("update moving to a car of another client", func(t *testing.T) {
		o, err := s.orders.CreateOrder(ctx, CreateOrderInput{ClientID: owner.ID, CarID: car.ID, Items: items})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		otherID := other.ID
		if _, err := s.orders.UpdateOrder(ctx, o.ID, UpdateOrderInput{ClientID: &otherID}); !errors.Is(err, ErrCarClientMismatch) {
			t.Fatalf("expected ErrCarClientMismatch, got %v", err)
		}
		stored, err := s.orders.GetOrder(ctx, o.ID)
		if err != nil {
			t.Fatalf("get order: %v", err)
		}
		if stored.ClientID != owner.ID {
			t.Fatalf("rejected update must not be saved, got client %q", stored.ClientID)
		}
	})
}

func TestServiceOrderUseCase_ListOrders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	s := newShop(t, func() time.Time { return now })

	ana, _ := s.clients.CreateClient(ctx, entities.ClientDraft{Name: "Ana Souza", TaxID: "1", Phone: "2"})
	caio, _ := s.clients.CreateClient(ctx, entities.ClientDraft{Name: "Caio Lima", TaxID: "3", Phone: "4"})
	anaCar, _ := s.cars.CreateCar(ctx, entities.CarDraft{ClientID: ana.ID, Plate: "ana1111", Brand: "Fiat", Model: "Palio", Year: 2012})
	caioCar, _ := s.cars.CreateCar(ctx, entities.CarDraft{ClientID: caio.ID, Plate: "cai2222", Brand: "GM", Model: "Onix", Year: 2020})
	svc, _ := s.services.CreateService(ctx, entities.ServiceDraft{Description: "Elétrica", Value: decimal.NewFromInt(50), Category: "Elétrica", IsActive: true})
	items := []OrderItemInput{{ServiceID: svc.ID, Quantity: 1}}

	older, err := s.orders.CreateOrder(ctx, CreateOrderInput{ClientID: ana.ID, CarID: anaCar.ID, Items: items, Date: now.AddDate(0, 0, -3)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	newer, err := s.orders.CreateOrder(ctx, CreateOrderInput{ClientID: caio.ID, CarID: caioCar.ID, Items: items, Date: now, Status: entities.OrderStatusInProgress})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := s.orders.ListOrders(ctx, OrderFilter{})
	if err != nil || len(all) != 2 || all[0].ID != newer.ID || all[1].ID != older.ID {
		t.Fatalf("expected newest first, got %+v / %v", all, err)
	}

	byName, _ := s.orders.ListOrders(ctx, OrderFilter{Search: "souza"})
	if len(byName) != 1 || byName[0].ID != older.ID {
		t.Fatalf("unexpected client name search: %+v", byName)
	}

	byPlate, _ := s.orders.ListOrders(ctx, OrderFilter{Search: "CAI2"})
	if len(byPlate) != 1 || byPlate[0].ID != newer.ID {
		t.Fatalf("unexpected plate search: %+v", byPlate)
	}

	byStatus, _ := s.orders.ListOrders(ctx, OrderFilter{Status: entities.OrderStatusInProgress})
	if len(byStatus) != 1 || byStatus[0].ID != newer.ID {
		t.Fatalf("unexpected status filter: %+v", byStatus)
	}

	if _, err := s.orders.ListOrders(ctx, OrderFilter{Status: "archived"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
