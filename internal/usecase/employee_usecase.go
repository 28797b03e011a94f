package usecase

import (
	"context"
	"strings"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type IEmployeeUseCase interface {
	ListEmployees(ctx context.Context, search string) ([]entities.Employee, error)
	GetEmployee(ctx context.Context, id string) (entities.Employee, error)
	CreateEmployee(ctx context.Context, draft entities.EmployeeDraft) (entities.Employee, error)
	UpdateEmployee(ctx context.Context, id string, patch entities.EmployeePatch) (entities.Employee, error)
	ToggleEmployeeActive(ctx context.Context, id string) (entities.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
	log  *zap.Logger
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository, log *zap.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, log: orNop(log)}
}

func (u *EmployeeUseCase) ListEmployees(ctx context.Context, search string) ([]entities.Employee, error) {
	employees, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := normalizeSearch(search)
	if needle == "" {
		return employees, nil
	}
	out := make([]entities.Employee, 0, len(employees))
	for _, e := range employees {
		if containsFold(e.Name, needle) || containsFold(e.Role, needle) || containsFold(e.Phone, needle) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (u *EmployeeUseCase) GetEmployee(ctx context.Context, id string) (entities.Employee, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Employee{}, err
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, translateNotFound(err, ErrEmployeeNotFound)
	}
	return e, nil
}

func (u *EmployeeUseCase) CreateEmployee(ctx context.Context, draft entities.EmployeeDraft) (entities.Employee, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Role = strings.TrimSpace(draft.Role)
	draft.Phone = strings.TrimSpace(draft.Phone)
	switch {
	case draft.Name == "":
		return entities.Employee{}, requiredField("name")
	case draft.Role == "":
		return entities.Employee{}, requiredField("role")
	}

	e, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.Employee{}, err
	}
	u.log.Info("employee created", zap.String("employee_id", e.ID))
	return e, nil
}

func (u *EmployeeUseCase) UpdateEmployee(ctx context.Context, id string, patch entities.EmployeePatch) (entities.Employee, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Employee{}, err
	}
	patch.Name = trimPtr(patch.Name)
	patch.Role = trimPtr(patch.Role)
	patch.Phone = trimPtr(patch.Phone)
	switch {
	case blankPatch(patch.Name):
		return entities.Employee{}, requiredField("name")
	case blankPatch(patch.Role):
		return entities.Employee{}, requiredField("role")
	}

	e, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Employee{}, translateNotFound(err, ErrEmployeeNotFound)
	}
	return e, nil
}

func (u *EmployeeUseCase) ToggleEmployeeActive(ctx context.Context, id string) (entities.Employee, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Employee{}, err
	}
	e, err := u.repo.ToggleActive(ctx, id)
	if err != nil {
		return entities.Employee{}, translateNotFound(err, ErrEmployeeNotFound)
	}
	u.log.Info("employee toggled", zap.String("employee_id", e.ID), zap.Bool("active", e.IsActive))
	return e, nil
}

// DeleteEmployee leaves catalog services that name the employee untouched;
// they render as "not assigned" from then on.
func (u *EmployeeUseCase) DeleteEmployee(ctx context.Context, id string) error {
	id, err := cleanID(id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return translateNotFound(err, ErrEmployeeNotFound)
	}
	u.log.Info("employee deleted", zap.String("employee_id", id))
	return nil
}
