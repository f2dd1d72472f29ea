package dto

import (
	"encoding/json"
	"time"
)

// ActivityLogDTO fila de la bitácora de actividad.
type ActivityLogDTO struct {
	ID         string          `json:"id"`
	UserID     *string         `json:"user_id"`
	ActionType string          `json:"action_type"`
	EntityType string          `json:"entity_type"`
	EntityID   *string         `json:"entity_id"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ActivityListResponse actividad reciente, más nueva primero.
type ActivityListResponse struct {
	Items []ActivityLogDTO `json:"items"`
}
