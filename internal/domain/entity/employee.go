package entity

import "time"

// Employee operario o supervisor de planta. Role es texto libre
// (Operator, Line Leader, Quality Inspector, ...).
type Employee struct {
	ID        string
	Name      string
	Role      string
	Email     string
	Phone     string
	Status    LifecycleStatus
	CreatedAt time.Time
}
