package repository

import (
	"context"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/domain/identity"
	"oficina_nova_brasil/internal/usecase/interfaces"
)

// ClientRepository persists clients in the "clients" slot with random ids.
type ClientRepository struct {
	records[entities.Client]
	settings
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(store interfaces.IKeyValueStore, opts ...Option) *ClientRepository {
	return &ClientRepository{
		records:  newRecords(store, interfaces.SlotClients, "client", func(c entities.Client) string { return c.ID }),
		settings: newSettings(identity.RandomID{}, opts),
	}
}

func (r *ClientRepository) List(ctx context.Context) ([]entities.Client, error) {
	return r.list(ctx)
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	return r.get(ctx, id)
}

func (r *ClientRepository) Create(ctx context.Context, draft entities.ClientDraft) (entities.Client, error) {
	return r.insert(ctx, func([]entities.Client) entities.Client {
		return draft.Build(r.ids.NewID(), r.stamp())
	})
}

func (r *ClientRepository) Update(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, error) {
	return r.modify(ctx, id, func(c entities.Client) entities.Client {
		return patch.Apply(c, r.stamp())
	})
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}
