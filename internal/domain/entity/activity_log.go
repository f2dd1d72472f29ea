package entity

import (
	"encoding/json"
	"time"
)

// ActionType tipo de mutación registrada en la bitácora.
type ActionType string

const (
	ActionCreate ActionType = "CREATE"
	ActionUpdate ActionType = "UPDATE"
	ActionDelete ActionType = "DELETE"
)

// EntityKind entidades cuyas mutaciones se auditan.
type EntityKind string

const (
	KindEntry    EntityKind = "ENTRY"
	KindEmployee EntityKind = "EMPLOYEE"
	KindHospital EntityKind = "HOSPITAL"
	KindCategory EntityKind = "CATEGORY"
	KindProduct  EntityKind = "PRODUCT"
)

// ActivityLog fila de bitácora. Cada mutación sobre una entidad auditada
// produce exactamente una fila, en modo best-effort: el fallo al escribirla
// nunca aborta la operación que la originó.
type ActivityLog struct {
	ID         string
	UserID     *string // nil si la mutación no tiene usuario asociado
	ActionType ActionType
	EntityType EntityKind
	EntityID   *string
	Details    json.RawMessage
	CreatedAt  time.Time
}
