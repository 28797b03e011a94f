package repository

import (
	"context"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/domain/identity"
	"oficina_nova_brasil/internal/usecase/interfaces"
)

// ServiceOrderRepository persists orders in the "service_orders" slot.
//
// Order numbers come from identity.TimestampPrefixedID ("OS-<millis>"); a
// number already present in the slot (e.g. written by an earlier process in
// the same millisecond) is skipped.
type ServiceOrderRepository struct {
	records[entities.ServiceOrder]
	settings
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func NewServiceOrderRepository(store interfaces.IKeyValueStore, opts ...Option) *ServiceOrderRepository {
	return &ServiceOrderRepository{
		records:  newRecords(store, interfaces.SlotServiceOrders, "service order", func(o entities.ServiceOrder) string { return o.ID }),
		settings: newSettings(identity.NewTimestampPrefixedID(identity.ServiceOrderPrefix), opts),
	}
}

func (r *ServiceOrderRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.list(ctx)
}

func (r *ServiceOrderRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return r.get(ctx, id)
}

func (r *ServiceOrderRepository) Create(ctx context.Context, draft entities.ServiceOrderDraft) (entities.ServiceOrder, error) {
	return r.insert(ctx, func(existing []entities.ServiceOrder) entities.ServiceOrder {
		id := r.ids.NewID()
		for r.contains(existing, id) {
			id = r.ids.NewID()
		}
		return draft.Build(id, r.stamp())
	})
}

func (r *ServiceOrderRepository) Update(ctx context.Context, id string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, error) {
	return r.modify(ctx, id, func(o entities.ServiceOrder) entities.ServiceOrder {
		return patch.Apply(o, r.stamp())
	})
}

// Mutate rewrites one order under the collection lock. The id is kept and
// the totals are recomputed from the returned items before saving.
func (r *ServiceOrderRepository) Mutate(ctx context.Context, id string, fn interfaces.ServiceOrderMutator) (entities.ServiceOrder, error) {
	return r.mutate(ctx, id, func(o entities.ServiceOrder) (entities.ServiceOrder, error) {
		now := r.stamp()
		next, err := fn(o, now)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		next.ID = o.ID
		next.Recalculate()
		next.UpdatedAt = now
		return next, nil
	})
}

func (r *ServiceOrderRepository) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}
