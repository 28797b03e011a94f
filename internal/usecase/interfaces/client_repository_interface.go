package interfaces

import (
	"context"
	"oficina_nova_brasil/internal/domain/entities"
)

// IClientRepository owns the clients collection.

type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, draft entities.ClientDraft) (entities.Client, error)
	Update(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}
