package dto

import "time"

// CreateEmployeeRequest alta de empleado. Role es texto libre.
type CreateEmployeeRequest struct {
	Name   string `json:"name"` // requerido
	Role   string `json:"role"` // requerido
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"` // por defecto ACTIVE
}

// UpdateEmployeeRequest edición parcial de empleado.
type UpdateEmployeeRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

// EmployeeResponse empleado persistido.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
