package dto

import "time"

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Email    string `json:"email"`    // requerido
	Password string `json:"password"` // requerido
	Name     string `json:"name"`
	Role     string `json:"role"` // por defecto OPERATOR
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin el hash de contraseña.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token firmado más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
