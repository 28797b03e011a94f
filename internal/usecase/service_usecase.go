package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ServiceFilter narrows ListServices. Category matches exactly, ignoring
// case; ActiveOnly hides deactivated catalog entries.
type ServiceFilter struct {
	Search     string
	Category   string
	ActiveOnly bool
}

// IServiceUseCase exposes the service catalog.
type IServiceUseCase interface {
	ListServices(ctx context.Context, filter ServiceFilter) ([]entities.Service, error)
	Categories() []string
	GetService(ctx context.Context, id string) (entities.Service, error)
	CreateService(ctx context.Context, draft entities.ServiceDraft) (entities.Service, error)
	UpdateService(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error)
	ToggleServiceActive(ctx context.Context, id string) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	services  interfaces.IServiceRepository
	employees interfaces.IEmployeeRepository
	log       *zap.Logger
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(services interfaces.IServiceRepository, employees interfaces.IEmployeeRepository, log *zap.Logger) *ServiceUseCase {
	return &ServiceUseCase{services: services, employees: employees, log: orNop(log)}
}

func (u *ServiceUseCase) ListServices(ctx context.Context, filter ServiceFilter) ([]entities.Service, error) {
	services, err := u.services.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := normalizeSearch(filter.Search)
	category := strings.TrimSpace(filter.Category)

	out := make([]entities.Service, 0, len(services))
	for _, s := range services {
		if filter.ActiveOnly && !s.IsActive {
			continue
		}
		if category != "" && !strings.EqualFold(s.Category, category) {
			continue
		}
		if needle != "" && !containsFold(s.Description, needle) && !containsFold(s.Category, needle) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (u *ServiceUseCase) Categories() []string {
	return append([]string(nil), entities.ServiceCategories...)
}

func (u *ServiceUseCase) GetService(ctx context.Context, id string) (entities.Service, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Service{}, err
	}
	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, translateNotFound(err, ErrServiceNotFound)
	}
	return s, nil
}

func (u *ServiceUseCase) CreateService(ctx context.Context, draft entities.ServiceDraft) (entities.Service, error) {
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Category = strings.TrimSpace(draft.Category)
	draft.ResponsibleEmployeeID = strings.TrimSpace(draft.ResponsibleEmployeeID)

	switch {
	case draft.Description == "":
		return entities.Service{}, requiredField("description")
	case draft.Category == "":
		return entities.Service{}, requiredField("category")
	case draft.Value.IsNegative() || draft.EstimatedTimeHours < 0:
		return entities.Service{}, ErrInvalidValue
	}
	if err := u.requireActiveEmployee(ctx, draft.ResponsibleEmployeeID); err != nil {
		return entities.Service{}, err
	}

	s, err := u.services.Create(ctx, draft)
	if err != nil {
		return entities.Service{}, err
	}
	u.log.Info("service created", zap.String("service_id", s.ID), zap.String("category", s.Category))
	return s, nil
}

func (u *ServiceUseCase) UpdateService(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Service{}, err
	}
	patch.Description = trimPtr(patch.Description)
	patch.Category = trimPtr(patch.Category)
	patch.ResponsibleEmployeeID = trimPtr(patch.ResponsibleEmployeeID)

	switch {
	case blankPatch(patch.Description):
		return entities.Service{}, requiredField("description")
	case blankPatch(patch.Category):
		return entities.Service{}, requiredField("category")
	case patch.Value != nil && patch.Value.IsNegative():
		return entities.Service{}, ErrInvalidValue
	case patch.EstimatedTimeHours != nil && *patch.EstimatedTimeHours < 0:
		return entities.Service{}, ErrInvalidValue
	}
	if patch.ResponsibleEmployeeID != nil {
		if err := u.requireActiveEmployee(ctx, *patch.ResponsibleEmployeeID); err != nil {
			return entities.Service{}, err
		}
	}

	s, err := u.services.Update(ctx, id, patch)
	if err != nil {
		return entities.Service{}, translateNotFound(err, ErrServiceNotFound)
	}
	return s, nil
}

func (u *ServiceUseCase) ToggleServiceActive(ctx context.Context, id string) (entities.Service, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Service{}, err
	}
	s, err := u.services.ToggleActive(ctx, id)
	if err != nil {
		return entities.Service{}, translateNotFound(err, ErrServiceNotFound)
	}
	u.log.Info("service toggled", zap.String("service_id", s.ID), zap.Bool("active", s.IsActive))
	return s, nil
}

// DeleteService keeps orders that reference the service intact; their items
// carry the unit value snapshot.
func (u *ServiceUseCase) DeleteService(ctx context.Context, id string) error {
	id, err := cleanID(id)
	if err != nil {
		return err
	}
	if err := u.services.Delete(ctx, id); err != nil {
		return translateNotFound(err, ErrServiceNotFound)
	}
	u.log.Info("service deleted", zap.String("service_id", id))
	return nil
}

// requireActiveEmployee accepts an empty id (no one assigned).
func (u *ServiceUseCase) requireActiveEmployee(ctx context.Context, employeeID string) error {
	if employeeID == "" {
		return nil
	}
	e, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return missingReference("employee", employeeID)
		}
		return err
	}
	if !e.IsActive {
		return ErrEmployeeInactive
	}
	return nil
}
