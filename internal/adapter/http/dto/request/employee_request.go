package request

import "oficina_nova_brasil/internal/domain/entities"

// EmployeeRequest registers a staff member. IsActive defaults to true.
type EmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"isActive"`
}

func (r EmployeeRequest) ToDraft() entities.EmployeeDraft {
	return entities.EmployeeDraft{
		Name:     r.Name,
		Role:     r.Role,
		Phone:    r.Phone,
		IsActive: boolOr(r.IsActive, true),
	}
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

func (r UpdateEmployeeRequest) ToPatch() entities.EmployeePatch {
	return entities.EmployeePatch{
		Name:     r.Name,
		Role:     r.Role,
		Phone:    r.Phone,
		IsActive: r.IsActive,
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
