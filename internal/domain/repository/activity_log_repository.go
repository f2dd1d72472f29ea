package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ActivityLogRepository puerto de persistencia para la bitácora de actividad.
// Solo inserción y lectura reciente; las filas nunca se modifican.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	// ListRecent devuelve las últimas filas ordenadas por created_at descendente.
	ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
}
