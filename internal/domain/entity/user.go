package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleOperator   = "OPERATOR"
)

// User usuario de la aplicación (login del dashboard).
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string // ADMIN | SUPERVISOR | OPERATOR
	PasswordHash string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
