package entities

import "time"

// Employee is a staff member. Only active employees can be assigned as the
// responsible party of a catalog Service.
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type EmployeeDraft struct {
	Name     string
	Role     string
	Phone    string
	IsActive bool
}

func (d EmployeeDraft) Build(id string, now time.Time) Employee {
	return Employee{
		ID:        id,
		Name:      d.Name,
		Role:      d.Role,
		Phone:     d.Phone,
		IsActive:  d.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type EmployeePatch struct {
	Name     *string
	Role     *string
	Phone    *string
	IsActive *bool
}

func (p EmployeePatch) Apply(e Employee, now time.Time) Employee {
	setString(&e.Name, p.Name)
	setString(&e.Role, p.Role)
	setString(&e.Phone, p.Phone)
	setBool(&e.IsActive, p.IsActive)
	e.UpdatedAt = now
	return e
}

func (e Employee) Toggled(now time.Time) Employee {
	e.IsActive = !e.IsActive
	e.UpdatedAt = now
	return e
}
