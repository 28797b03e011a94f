package interfaces

import (
	"context"
	"time"

	"oficina_nova_brasil/internal/domain/entities"
)

// IServiceOrderRepository owns the service_orders collection.
//
// Create and Update keep TotalValue/EstimatedTimeHours derived from the items
// and apply the status lifecycle (completion stamping). Mutate runs a
// read-modify-write of one order inside the collection lock.
type IServiceOrderRepository interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Create(ctx context.Context, draft entities.ServiceOrderDraft) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, error)
	Mutate(ctx context.Context, id string, fn ServiceOrderMutator) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}

// ServiceOrderMutator receives the stored order and the write time and
// returns its replacement. Returning an error leaves the order untouched.
type ServiceOrderMutator func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error)
