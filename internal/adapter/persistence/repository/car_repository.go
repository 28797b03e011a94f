package repository

import (
	"context"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/domain/identity"
	"oficina_nova_brasil/internal/usecase/interfaces"
)

// CarRepository persists cars in the "cars" slot. Plates are stored upper-cased.
type CarRepository struct {
	records[entities.Car]
	settings
}

var _ interfaces.ICarRepository = (*CarRepository)(nil)

func NewCarRepository(store interfaces.IKeyValueStore, opts ...Option) *CarRepository {
	return &CarRepository{
		records:  newRecords(store, interfaces.SlotCars, "car", func(c entities.Car) string { return c.ID }),
		settings: newSettings(identity.RandomID{}, opts),
	}
}

func (r *CarRepository) List(ctx context.Context) ([]entities.Car, error) {
	return r.list(ctx)
}

func (r *CarRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Car, error) {
	cars, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Car, 0, len(cars))
	for _, c := range cars {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (entities.Car, error) {
	return r.get(ctx, id)
}

func (r *CarRepository) Create(ctx context.Context, draft entities.CarDraft) (entities.Car, error) {
	return r.insert(ctx, func([]entities.Car) entities.Car {
		return draft.Build(r.ids.NewID(), r.stamp())
	})
}

func (r *CarRepository) Update(ctx context.Context, id string, patch entities.CarPatch) (entities.Car, error) {
	return r.modify(ctx, id, func(c entities.Car) entities.Car {
		return patch.Apply(c, r.stamp())
	})
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}
