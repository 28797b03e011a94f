package interfaces

import (
	"context"
	"oficina_nova_brasil/internal/domain/entities"
)

// IServiceRepository owns the service catalog.

type IServiceRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, draft entities.ServiceDraft) (entities.Service, error)
	Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error)
	ToggleActive(ctx context.Context, id string) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
