package usecase

import (
	"context"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Placeholders returned when a foreign key no longer resolves.
const (
	ClientNotFoundPlaceholder  = "client not found"
	CarNotFoundPlaceholder     = "vehicle not found"
	EmployeeNotAssigned        = "not assigned"
	ServiceNotFoundPlaceholder = "service not found"
)

// IReferenceResolver turns foreign keys into display strings. It never fails:
// a dangling reference or a store error resolves to a placeholder.
type IReferenceResolver interface {
	ResolveClientName(ctx context.Context, clientID string) string
	ResolveCarSummary(ctx context.Context, carID string) string
	ResolveEmployeeName(ctx context.Context, employeeID string) string
	ResolveServiceDescription(ctx context.Context, serviceID string) string
	// Index reads every collection once, for resolving many records.
	Index(ctx context.Context) *ReferenceIndex
}

type ReferenceResolver struct {
	clients   interfaces.IClientRepository
	cars      interfaces.ICarRepository
	employees interfaces.IEmployeeRepository
	services  interfaces.IServiceRepository
	log       *zap.Logger
}

var _ IReferenceResolver = (*ReferenceResolver)(nil)

func NewReferenceResolver(
	clients interfaces.IClientRepository,
	cars interfaces.ICarRepository,
	employees interfaces.IEmployeeRepository,
	services interfaces.IServiceRepository,
	log *zap.Logger,
) *ReferenceResolver {
	return &ReferenceResolver{clients: clients, cars: cars, employees: employees, services: services, log: orNop(log)}
}

func (r *ReferenceResolver) ResolveClientName(ctx context.Context, clientID string) string {
	clients, err := r.clients.List(ctx)
	if err != nil {
		r.log.Error("resolve client", zap.String("client_id", clientID), zap.Error(err))
		return ClientNotFoundPlaceholder
	}
	for _, c := range clients {
		if c.ID == clientID {
			return c.Name
		}
	}
	r.dangling("client_id", clientID)
	return ClientNotFoundPlaceholder
}

func (r *ReferenceResolver) ResolveCarSummary(ctx context.Context, carID string) string {
	cars, err := r.cars.List(ctx)
	if err != nil {
		r.log.Error("resolve car", zap.String("car_id", carID), zap.Error(err))
		return CarNotFoundPlaceholder
	}
	for _, c := range cars {
		if c.ID == carID {
			return c.Summary()
		}
	}
	r.dangling("car_id", carID)
	return CarNotFoundPlaceholder
}

// ResolveEmployeeName treats an empty id as "nobody assigned" without logging.
func (r *ReferenceResolver) ResolveEmployeeName(ctx context.Context, employeeID string) string {
	if employeeID == "" {
		return EmployeeNotAssigned
	}
	employees, err := r.employees.List(ctx)
	if err != nil {
		r.log.Error("resolve employee", zap.String("employee_id", employeeID), zap.Error(err))
		return EmployeeNotAssigned
	}
	for _, e := range employees {
		if e.ID == employeeID {
			return e.Name
		}
	}
	r.dangling("employee_id", employeeID)
	return EmployeeNotAssigned
}

func (r *ReferenceResolver) ResolveServiceDescription(ctx context.Context, serviceID string) string {
	services, err := r.services.List(ctx)
	if err != nil {
		r.log.Error("resolve service", zap.String("service_id", serviceID), zap.Error(err))
		return ServiceNotFoundPlaceholder
	}
	for _, s := range services {
		if s.ID == serviceID {
			return s.Description
		}
	}
	r.dangling("service_id", serviceID)
	return ServiceNotFoundPlaceholder
}

func (r *ReferenceResolver) dangling(key, id string) {
	r.log.Warn("dangling reference", zap.String(key, id))
}

func (r *ReferenceResolver) Index(ctx context.Context) *ReferenceIndex {
	clients, clientsErr := r.clients.List(ctx)
	cars, carsErr := r.cars.List(ctx)
	employees, employeesErr := r.employees.List(ctx)
	services, servicesErr := r.services.List(ctx)

	idx := NewReferenceIndex(clients, cars, employees, services, r.log)
	if clientsErr != nil {
		r.log.Error("index clients", zap.Error(clientsErr))
		idx.clients = nil
	}
	if carsErr != nil {
		r.log.Error("index cars", zap.Error(carsErr))
		idx.cars = nil
	}
	if employeesErr != nil {
		r.log.Error("index employees", zap.Error(employeesErr))
		idx.employees = nil
	}
	if servicesErr != nil {
		r.log.Error("index services", zap.Error(servicesErr))
		idx.services = nil
	}
	return idx
}

// ReferenceIndex resolves foreign keys from one snapshot of each collection
// with the same placeholders as ReferenceResolver. A collection that failed
// to load resolves everything to its placeholder.
type ReferenceIndex struct {
	clients   map[string]string
	cars      map[string]string
	employees map[string]string
	services  map[string]string
	log       *zap.Logger
}

func NewReferenceIndex(
	clients []entities.Client,
	cars []entities.Car,
	employees []entities.Employee,
	services []entities.Service,
	log *zap.Logger,
) *ReferenceIndex {
	idx := &ReferenceIndex{
		clients:   make(map[string]string, len(clients)),
		cars:      make(map[string]string, len(cars)),
		employees: make(map[string]string, len(employees)),
		services:  make(map[string]string, len(services)),
		log:       orNop(log),
	}
	for _, c := range clients {
		idx.clients[c.ID] = c.Name
	}
	for _, c := range cars {
		idx.cars[c.ID] = c.Summary()
	}
	for _, e := range employees {
		idx.employees[e.ID] = e.Name
	}
	for _, s := range services {
		idx.services[s.ID] = s.Description
	}
	return idx
}

func (x *ReferenceIndex) ClientName(id string) string {
	return x.lookup(x.clients, "client_id", id, ClientNotFoundPlaceholder)
}

func (x *ReferenceIndex) CarSummary(id string) string {
	return x.lookup(x.cars, "car_id", id, CarNotFoundPlaceholder)
}

func (x *ReferenceIndex) EmployeeName(id string) string {
	if id == "" {
		return EmployeeNotAssigned
	}
	return x.lookup(x.employees, "employee_id", id, EmployeeNotAssigned)
}

func (x *ReferenceIndex) ServiceDescription(id string) string {
	return x.lookup(x.services, "service_id", id, ServiceNotFoundPlaceholder)
}

func (x *ReferenceIndex) lookup(m map[string]string, key, id, placeholder string) string {
	if m == nil {
		return placeholder
	}
	if v, ok := m[id]; ok {
		return v
	}
	x.log.Warn("dangling reference", zap.String(key, id))
	return placeholder
}
