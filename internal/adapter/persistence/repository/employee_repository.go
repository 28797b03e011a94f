package repository

import (
	"context"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/domain/identity"
	"oficina_nova_brasil/internal/usecase/interfaces"
)

type EmployeeRepository struct {
	records[entities.Employee]
	settings
}

var _ interfaces.IEmployeeRepository = (*EmployeeRepository)(nil)

func NewEmployeeRepository(store interfaces.IKeyValueStore, opts ...Option) *EmployeeRepository {
	return &EmployeeRepository{
		records:  newRecords(store, interfaces.SlotEmployees, "employee", func(e entities.Employee) string { return e.ID }),
		settings: newSettings(identity.RandomID{}, opts),
	}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]entities.Employee, error) {
	return r.list(ctx)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	return r.get(ctx, id)
}

func (r *EmployeeRepository) Create(ctx context.Context, draft entities.EmployeeDraft) (entities.Employee, error) {
	return r.insert(ctx, func([]entities.Employee) entities.Employee {
		return draft.Build(r.ids.NewID(), r.stamp())
	})
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, patch entities.EmployeePatch) (entities.Employee, error) {
	return r.modify(ctx, id, func(e entities.Employee) entities.Employee {
		return patch.Apply(e, r.stamp())
	})
}

func (r *EmployeeRepository) ToggleActive(ctx context.Context, id string) (entities.Employee, error) {
	return r.modify(ctx, id, func(e entities.Employee) entities.Employee {
		return e.Toggled(r.stamp())
	})
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}
