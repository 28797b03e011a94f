package repository

import (
	"context"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/domain/identity"
	"oficina_nova_brasil/internal/usecase/interfaces"
)

// ServiceRepository persists the service catalog in the "services" slot.
type ServiceRepository struct {
	records[entities.Service]
	settings
}

var _ interfaces.IServiceRepository = (*ServiceRepository)(nil)

func NewServiceRepository(store interfaces.IKeyValueStore, opts ...Option) *ServiceRepository {
	return &ServiceRepository{
		records:  newRecords(store, interfaces.SlotServices, "service", func(s entities.Service) string { return s.ID }),
		settings: newSettings(identity.RandomID{}, opts),
	}
}

func (r *ServiceRepository) List(ctx context.Context) ([]entities.Service, error) {
	return r.list(ctx)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	return r.get(ctx, id)
}

func (r *ServiceRepository) Create(ctx context.Context, draft entities.ServiceDraft) (entities.Service, error) {
	return r.insert(ctx, func([]entities.Service) entities.Service {
		return draft.Build(r.ids.NewID(), r.stamp())
	})
}

func (r *ServiceRepository) Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	return r.modify(ctx, id, func(s entities.Service) entities.Service {
		return patch.Apply(s, r.stamp())
	})
}

func (r *ServiceRepository) ToggleActive(ctx context.Context, id string) (entities.Service, error) {
	return r.modify(ctx, id, func(s entities.Service) entities.Service {
		return s.Toggled(r.stamp())
	})
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}
