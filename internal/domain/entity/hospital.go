package entity

import "time"

// LifecycleStatus estado de alta/baja de entidades de referencia.
type LifecycleStatus string

const (
	StatusActive   LifecycleStatus = "ACTIVE"
	StatusInactive LifecycleStatus = "INACTIVE"
)

// Hospital destino de producción. Un registro de producción sin hospital
// apunta a stock de bodega.
type Hospital struct {
	ID            string
	Name          string
	Location      string
	ContactPerson string
	Phone         string
	Email         string
	Status        LifecycleStatus
	CreatedAt     time.Time
}
