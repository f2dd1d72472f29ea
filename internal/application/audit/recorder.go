// Package audit registra la bitácora de actividad en modo best-effort: una
// fila por mutación, y el fallo al escribirla jamás aborta la operación que
// la originó.
package audit

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// Recorder escribe filas de bitácora. Todas las rutas de escritura comparten
// esta instancia.
type Recorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewRecorder crea el recorder de auditoría.
func NewRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record inserta una fila de bitácora. Cualquier error (serialización o
// persistencia) se degrada a un warn en el log y NO se propaga: la mutación
// principal ya se completó y no debe revertirse por la auditoría.
func (r *Recorder) Record(
	ctx context.Context,
	userID *string,
	action entity.ActionType,
	kind entity.EntityKind,
	entityID *string,
	details any,
) {
	var raw json.RawMessage
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			r.log.Warn().Err(err).
				Str("action", string(action)).
				Str("entity_type", string(kind)).
				Msg("audit: no se pudo serializar details, se registra sin payload")
		} else {
			raw = b
		}
	}

	logRow := &entity.ActivityLog{
		UserID:     userID,
		ActionType: action,
		EntityType: kind,
		EntityID:   entityID,
		Details:    raw,
	}

	if err := r.repo.Create(ctx, logRow); err != nil {
		r.log.Warn().Err(err).
			Str("action", string(action)).
			Str("entity_type", string(kind)).
			Msg("audit: fallo al escribir la bitácora, se continúa")
	}
}
