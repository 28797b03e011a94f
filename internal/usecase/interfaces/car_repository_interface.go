package interfaces

import (
	"context"
	"oficina_nova_brasil/internal/domain/entities"
)

// ICarRepository owns the cars collection. It does not check that ClientID
// points at an existing client.

type ICarRepository interface {
	List(ctx context.Context) ([]entities.Car, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Car, error)
	GetByID(ctx context.Context, id string) (entities.Car, error)
	Create(ctx context.Context, draft entities.CarDraft) (entities.Car, error)
	Update(ctx context.Context, id string, patch entities.CarPatch) (entities.Car, error)
	Delete(ctx context.Context, id string) error
}
