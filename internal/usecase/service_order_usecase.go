package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// OrderItemInput asks for quantity units of a catalog service.
type OrderItemInput struct {
	ServiceID string
	Quantity  int
}

type CreateOrderInput struct {
	ClientID     string
	CarID        string
	Date         time.Time
	Status       entities.OrderStatus
	Items        []OrderItemInput
	Observations string
}

// UpdateOrderInput changes order header fields; nil means "keep". Line items
// change through AddOrderItem and RemoveOrderItem.
type UpdateOrderInput struct {
	ClientID     *string
	CarID        *string
	Date         *time.Time
	Status       *entities.OrderStatus
	Observations *string
}

// OrderFilter narrows ListOrders. Search matches the order id, the client
// name and the car plate; Status matches exactly.
type OrderFilter struct {
	Search string
	Status entities.OrderStatus
}

// OrderLine is a line item with its service resolved for display.
type OrderLine struct {
	entities.ServiceOrderItem
	ServiceDescription string
}

// OrderDetails is everything a printed service order shows.
type OrderDetails struct {
	Order      entities.ServiceOrder
	ClientName string
	CarSummary string
	Lines      []OrderLine
}

// IServiceOrderUseCase exposes the service order lifecycle.
//
// Totals are always derived from the line items by the repository, and
// completedAt is stamped on every entry into the completed status.
type IServiceOrderUseCase interface {
	ListOrders(ctx context.Context, filter OrderFilter) ([]entities.ServiceOrder, error)
	GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetOrderDetails(ctx context.Context, id string) (OrderDetails, error)
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.ServiceOrder, error)
	UpdateOrder(ctx context.Context, id string, in UpdateOrderInput) (entities.ServiceOrder, error)
	ChangeStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error)
	AddOrderItem(ctx context.Context, id string, item OrderItemInput) (entities.ServiceOrder, error)
	RemoveOrderItem(ctx context.Context, id, serviceID string) (entities.ServiceOrder, error)
	DeleteOrder(ctx context.Context, id string) error
}

type ServiceOrderUseCase struct {
	orders   interfaces.IServiceOrderRepository
	clients  interfaces.IClientRepository
	cars     interfaces.ICarRepository
	services interfaces.IServiceRepository
	resolver IReferenceResolver
	log      *zap.Logger
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	cars interfaces.ICarRepository,
	services interfaces.IServiceRepository,
	resolver IReferenceResolver,
	log *zap.Logger,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orders:   orders,
		clients:  clients,
		cars:     cars,
		services: services,
		resolver: resolver,
		log:      orNop(log),
	}
}

// ListOrders returns matching orders, most recent date first.
func (u *ServiceOrderUseCase) ListOrders(ctx context.Context, filter OrderFilter) ([]entities.ServiceOrder, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := normalizeSearch(filter.Search)
	var clientNames, plates map[string]string
	if needle != "" {
		if clientNames, plates, err = u.searchIndex(ctx); err != nil {
			return nil, err
		}
	}

	out := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if needle != "" && !containsFold(o.ID, needle) &&
			!containsFold(clientNames[o.ClientID], needle) && !containsFold(plates[o.CarID], needle) {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (u *ServiceOrderUseCase) searchIndex(ctx context.Context) (map[string]string, map[string]string, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	cars, err := u.cars.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	plates := make(map[string]string, len(cars))
	for _, c := range cars {
		plates[c.ID] = c.Plate
	}
	return names, plates, nil
}

func (u *ServiceOrderUseCase) GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, translateNotFound(err, ErrServiceOrderNotFound)
	}
	return o, nil
}

// GetOrderDetails resolves the order's references for display. Dangling
// references become placeholders; a line whose service left the catalog
// falls back to the description captured when it was added.
func (u *ServiceOrderUseCase) GetOrderDetails(ctx context.Context, id string) (OrderDetails, error) {
	o, err := u.GetOrder(ctx, id)
	if err != nil {
		return OrderDetails{}, err
	}

	d := OrderDetails{
		Order:      o,
		ClientName: u.resolver.ResolveClientName(ctx, o.ClientID),
		CarSummary: u.resolver.ResolveCarSummary(ctx, o.CarID),
		Lines:      make([]OrderLine, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		desc := u.resolver.ResolveServiceDescription(ctx, it.ServiceID)
		if desc == ServiceNotFoundPlaceholder && it.Description != "" {
			desc = it.Description
		}
		d.Lines = append(d.Lines, OrderLine{ServiceOrderItem: it, ServiceDescription: desc})
	}
	return d, nil
}

func (u *ServiceOrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.ServiceOrder, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.CarID = strings.TrimSpace(in.CarID)
	in.Observations = strings.TrimSpace(in.Observations)

	switch {
	case in.ClientID == "":
		return entities.ServiceOrder{}, requiredField("clientId")
	case in.CarID == "":
		return entities.ServiceOrder{}, requiredField("carId")
	case in.Status != "" && !in.Status.IsValid():
		return entities.ServiceOrder{}, ErrInvalidStatus
	case len(in.Items) == 0:
		return entities.ServiceOrder{}, ErrEmptyOrder
	}
	if err := u.requireOwnership(ctx, in.ClientID, in.CarID); err != nil {
		return entities.ServiceOrder{}, err
	}

	draft := entities.ServiceOrderDraft{
		ClientID:     in.ClientID,
		CarID:        in.CarID,
		Date:         in.Date,
		Status:       in.Status,
		Observations: in.Observations,
	}
	for _, item := range in.Items {
		svc, err := u.orderableService(ctx, item)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		draft.AddItem(svc, item.Quantity)
	}

	o, err := u.orders.Create(ctx, draft)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.log.Info("service order created",
		zap.String("order_id", o.ID),
		zap.String("client_id", o.ClientID),
		zap.String("status", string(o.Status)),
		zap.String("total", o.TotalValue.StringFixed(2)),
	)
	return o, nil
}

func (u *ServiceOrderUseCase) UpdateOrder(ctx context.Context, id string, in UpdateOrderInput) (entities.ServiceOrder, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	in.ClientID = trimPtr(in.ClientID)
	in.CarID = trimPtr(in.CarID)
	in.Observations = trimPtr(in.Observations)

	switch {
	case blankPatch(in.ClientID):
		return entities.ServiceOrder{}, requiredField("clientId")
	case blankPatch(in.CarID):
		return entities.ServiceOrder{}, requiredField("carId")
	case in.Status != nil && !in.Status.IsValid():
		return entities.ServiceOrder{}, ErrInvalidStatus
	}

	patch := entities.ServiceOrderPatch{
		ClientID:     in.ClientID,
		CarID:        in.CarID,
		Date:         in.Date,
		Status:       in.Status,
		Observations: in.Observations,
	}
	return u.mutate(ctx, id, func(current entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error) {
		if in.ClientID != nil || in.CarID != nil {
			clientID, carID := current.ClientID, current.CarID
			if in.ClientID != nil {
				clientID = *in.ClientID
			}
			if in.CarID != nil {
				carID = *in.CarID
			}
			if err := u.requireOwnership(ctx, clientID, carID); err != nil {
				return current, err
			}
		}
		return patch.Apply(current, now), nil
	})
}

func (u *ServiceOrderUseCase) ChangeStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !status.IsValid() {
		return entities.ServiceOrder{}, ErrInvalidStatus
	}
	o, err := u.update(ctx, id, entities.ServiceOrderPatch{Status: &status})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.log.Info("service order status changed", zap.String("order_id", o.ID), zap.String("status", string(o.Status)))
	return o, nil
}

// AddOrderItem and RemoveOrderItem edit the stored item list under the
// collection lock, so concurrent edits of one order never drop lines.
func (u *ServiceOrderUseCase) AddOrderItem(ctx context.Context, id string, item OrderItemInput) (entities.ServiceOrder, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o, err := u.mutate(ctx, id, func(o entities.ServiceOrder, _ time.Time) (entities.ServiceOrder, error) {
		svc, err := u.orderableService(ctx, item)
		if err != nil {
			return o, err
		}
		o.Items = entities.AddLineItem(o.Items, svc, item.Quantity)
		return o, nil
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.log.Info("service order item added",
		zap.String("order_id", o.ID),
		zap.String("service_id", strings.TrimSpace(item.ServiceID)),
		zap.Int("quantity", item.Quantity),
	)
	return o, nil
}

// RemoveOrderItem refuses to drop the last line; an order always carries at
// least one service.
func (u *ServiceOrderUseCase) RemoveOrderItem(ctx context.Context, id, serviceID string) (entities.ServiceOrder, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	serviceID = strings.TrimSpace(serviceID)
	o, err := u.mutate(ctx, id, func(o entities.ServiceOrder, _ time.Time) (entities.ServiceOrder, error) {
		items, removed := entities.RemoveLineItem(o.Items, serviceID)
		if !removed {
			return o, ErrOrderItemNotFound
		}
		if len(items) == 0 {
			return o, ErrEmptyOrder
		}
		o.Items = items
		return o, nil
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.log.Info("service order item removed", zap.String("order_id", o.ID), zap.String("service_id", serviceID))
	return o, nil
}

func (u *ServiceOrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	id, err := cleanID(id)
	if err != nil {
		return err
	}
	if err := u.orders.Delete(ctx, id); err != nil {
		return translateNotFound(err, ErrServiceOrderNotFound)
	}
	u.log.Info("service order deleted", zap.String("order_id", id))
	return nil
}

func (u *ServiceOrderUseCase) update(ctx context.Context, id string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, error) {
	o, err := u.orders.Update(ctx, id, patch)
	if err != nil {
		return entities.ServiceOrder{}, translateNotFound(err, ErrServiceOrderNotFound)
	}
	return o, nil
}

func (u *ServiceOrderUseCase) mutate(ctx context.Context, id string, fn interfaces.ServiceOrderMutator) (entities.ServiceOrder, error) {
	o, err := u.orders.Mutate(ctx, id, fn)
	if err != nil {
		return entities.ServiceOrder{}, translateNotFound(err, ErrServiceOrderNotFound)
	}
	return o, nil
}

// requireOwnership checks that both parents exist and the car belongs to the
// client.
func (u *ServiceOrderUseCase) requireOwnership(ctx context.Context, clientID, carID string) error {
	if _, err := u.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return missingReference("client", clientID)
		}
		return err
	}
	car, err := u.cars.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return missingReference("car", carID)
		}
		return err
	}
	if car.ClientID != clientID {
		return ErrCarClientMismatch
	}
	return nil
}

func (u *ServiceOrderUseCase) orderableService(ctx context.Context, item OrderItemInput) (entities.Service, error) {
	serviceID := strings.TrimSpace(item.ServiceID)
	if serviceID == "" {
		return entities.Service{}, requiredField("serviceId")
	}
	if item.Quantity <= 0 {
		return entities.Service{}, ErrInvalidQuantity
	}
	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.Service{}, missingReference("service", serviceID)
		}
		return entities.Service{}, err
	}
	if !svc.IsActive {
		return entities.Service{}, ErrServiceInactive
	}
	return svc, nil
}
