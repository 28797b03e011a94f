package interfaces

import (
	"context"
	"oficina_nova_brasil/internal/domain/entities"
)

type IEmployeeRepository interface {
	List(ctx context.Context) ([]entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	Create(ctx context.Context, draft entities.EmployeeDraft) (entities.Employee, error)
	Update(ctx context.Context, id string, patch entities.EmployeePatch) (entities.Employee, error)
	ToggleActive(ctx context.Context, id string) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
}
