package dto

import "time"

// CreateHospitalRequest alta de hospital.
type CreateHospitalRequest struct {
	Name          string `json:"name"` // requerido
	Location      string `json:"location"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Status        string `json:"status"` // por defecto ACTIVE
}

// UpdateHospitalRequest edición parcial de hospital.
type UpdateHospitalRequest struct {
	Name          *string `json:"name"`
	Location      *string `json:"location"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Status        *string `json:"status"`
}

// HospitalResponse hospital persistido.
type HospitalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
