package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// CarFilter narrows ListCars. Search matches plate, brand, model, color and
// the owner's name.
type CarFilter struct {
	Search   string
	ClientID string
}

type ICarUseCase interface {
	ListCars(ctx context.Context, filter CarFilter) ([]entities.Car, error)
	GetCar(ctx context.Context, id string) (entities.Car, error)
	CreateCar(ctx context.Context, draft entities.CarDraft) (entities.Car, error)
	UpdateCar(ctx context.Context, id string, patch entities.CarPatch) (entities.Car, error)
	DeleteCar(ctx context.Context, id string) error
}

type CarUseCase struct {
	cars    interfaces.ICarRepository
	clients interfaces.IClientRepository
	log     *zap.Logger
}

var _ ICarUseCase = (*CarUseCase)(nil)

func NewCarUseCase(cars interfaces.ICarRepository, clients interfaces.IClientRepository, log *zap.Logger) *CarUseCase {
	return &CarUseCase{cars: cars, clients: clients, log: orNop(log)}
}

func (u *CarUseCase) ListCars(ctx context.Context, filter CarFilter) ([]entities.Car, error) {
	var (
		cars []entities.Car
		err  error
	)
	if clientID := strings.TrimSpace(filter.ClientID); clientID != "" {
		cars, err = u.cars.ListByClientID(ctx, clientID)
	} else {
		cars, err = u.cars.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	needle := normalizeSearch(filter.Search)
	if needle == "" {
		return cars, nil
	}

	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	owners := make(map[string]string, len(clients))
	for _, c := range clients {
		owners[c.ID] = c.Name
	}

	out := make([]entities.Car, 0, len(cars))
	for _, c := range cars {
		if containsFold(c.Plate, needle) || containsFold(c.Brand, needle) ||
			containsFold(c.Model, needle) || containsFold(c.Color, needle) ||
			containsFold(strconv.Itoa(c.Year), needle) || containsFold(owners[c.ClientID], needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *CarUseCase) GetCar(ctx context.Context, id string) (entities.Car, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Car{}, err
	}
	c, err := u.cars.GetByID(ctx, id)
	if err != nil {
		return entities.Car{}, translateNotFound(err, ErrCarNotFound)
	}
	return c, nil
}

func (u *CarUseCase) CreateCar(ctx context.Context, draft entities.CarDraft) (entities.Car, error) {
	draft.ClientID = strings.TrimSpace(draft.ClientID)
	draft.Plate = strings.TrimSpace(draft.Plate)
	draft.Brand = strings.TrimSpace(draft.Brand)
	draft.Model = strings.TrimSpace(draft.Model)
	draft.Color = strings.TrimSpace(draft.Color)
	draft.Observations = strings.TrimSpace(draft.Observations)

	switch {
	case draft.ClientID == "":
		return entities.Car{}, requiredField("clientId")
	case draft.Plate == "":
		return entities.Car{}, requiredField("plate")
	case draft.Brand == "":
		return entities.Car{}, requiredField("brand")
	case draft.Model == "":
		return entities.Car{}, requiredField("model")
	case draft.Year <= 0:
		return entities.Car{}, ErrInvalidYear
	}
	if err := u.requireClient(ctx, draft.ClientID); err != nil {
		return entities.Car{}, err
	}

	c, err := u.cars.Create(ctx, draft)
	if err != nil {
		return entities.Car{}, err
	}
	u.log.Info("car created", zap.String("car_id", c.ID), zap.String("client_id", c.ClientID))
	return c, nil
}

func (u *CarUseCase) UpdateCar(ctx context.Context, id string, patch entities.CarPatch) (entities.Car, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Car{}, err
	}
	patch.ClientID = trimPtr(patch.ClientID)
	patch.Plate = trimPtr(patch.Plate)
	patch.Brand = trimPtr(patch.Brand)
	patch.Model = trimPtr(patch.Model)
	patch.Color = trimPtr(patch.Color)
	patch.Observations = trimPtr(patch.Observations)

	switch {
	case blankPatch(patch.ClientID):
		return entities.Car{}, requiredField("clientId")
	case blankPatch(patch.Plate):
		return entities.Car{}, requiredField("plate")
	case blankPatch(patch.Brand):
		return entities.Car{}, requiredField("brand")
	case blankPatch(patch.Model):
		return entities.Car{}, requiredField("model")
	case patch.Year != nil && *patch.Year <= 0:
		return entities.Car{}, ErrInvalidYear
	}
	if patch.ClientID != nil {
		if err := u.requireClient(ctx, *patch.ClientID); err != nil {
			return entities.Car{}, err
		}
	}

	c, err := u.cars.Update(ctx, id, patch)
	if err != nil {
		return entities.Car{}, translateNotFound(err, ErrCarNotFound)
	}
	return c, nil
}

func (u *CarUseCase) DeleteCar(ctx context.Context, id string) error {
	id, err := cleanID(id)
	if err != nil {
		return err
	}
	if err := u.cars.Delete(ctx, id); err != nil {
		return translateNotFound(err, ErrCarNotFound)
	}
	u.log.Info("car deleted", zap.String("car_id", id))
	return nil
}

func (u *CarUseCase) requireClient(ctx context.Context, clientID string) error {
	if _, err := u.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return missingReference("client", clientID)
		}
		return err
	}
	return nil
}
