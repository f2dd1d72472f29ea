package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre PostgreSQL.
// La bitácora es append-only: no hay update ni delete.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador de persistencia para la bitácora.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create inserta una fila de bitácora. ID y created_at se asignan aquí si
// vienen vacíos, para que el caller solo aporte el contenido.
func (r *ActivityLogRepo) Create(ctx context.Context, l *entity.ActivityLog) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO activity_logs (id, user_id, action_type, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.UserID, l.ActionType, l.EntityType, l.EntityID, l.Details, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas filas, más nueva primero.
func (r *ActivityLogRepo) ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, action_type, entity_type, entity_id, details, created_at
		FROM activity_logs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.ActionType, &l.EntityType, &l.EntityID, &l.Details, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
