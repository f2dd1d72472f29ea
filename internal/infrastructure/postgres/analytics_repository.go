package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura del motor de agregación.
// Devuelve filas crudas con joins resueltos; toda la reducción ocurre en
// memoria en el caso de uso.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de lectura analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// Columnas y joins compartidos por ambas consultas. COALESCE normaliza NULL a
// cero/cadena vacía para que la proyección sea siempre tipada.
const entryViewSelect = `
	SELECT pe.id,
	       pe.date,
	       COALESCE(pe.shift, ''),
	       COALESCE(pe.production_category, ''),
	       pe.hospital_id,
	       COALESCE(h.name, ''),
	       pe.product_id,
	       COALESCE(p.name, ''),
	       pe.employee_id,
	       COALESCE(e.name, ''),
	       COALESCE(e.role, ''),
	       COALESCE(pe.planned_qty, 0),
	       COALESCE(pe.actual_qty, 0),
	       COALESCE(pe.rejected_qty, 0),
	       COALESCE(pe.efficiency, 0),
	       COALESCE(pe.discipline_score, 0),
	       COALESCE(pe.status, '')
	FROM production_entries pe
	LEFT JOIN hospitals h ON h.id = pe.hospital_id
	LEFT JOIN products p  ON p.id = pe.product_id
	LEFT JOIN employees e ON e.id = pe.employee_id`

// ListEntries devuelve los registros con date en [start, end], ambos inclusive.
// Incluye TODOS los estados. El ORDER BY fija un orden de filas determinista
// para que dos corridas sobre los mismos datos produzcan la misma salida.
func (r *AnalyticsRepo) ListEntries(ctx context.Context, start, end time.Time) ([]repository.ProductionEntryView, error) {
	query := entryViewSelect + `
	WHERE pe.date >= $1 AND pe.date <= $2
	ORDER BY pe.date ASC, pe.created_at ASC, pe.id ASC`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	return scanEntryViews(rows)
}

// ListEmployeeEntries igual que ListEntries pero solo filas con employee_id no
// nulo, para el ranking de empleados.
func (r *AnalyticsRepo) ListEmployeeEntries(ctx context.Context, start, end time.Time) ([]repository.ProductionEntryView, error) {
	query := entryViewSelect + `
	WHERE pe.date >= $1 AND pe.date <= $2 AND pe.employee_id IS NOT NULL
	ORDER BY pe.date ASC, pe.created_at ASC, pe.id ASC`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list employee entries: %w", err)
	}
	defer rows.Close()
	return scanEntryViews(rows)
}

func scanEntryViews(rows pgx.Rows) ([]repository.ProductionEntryView, error) {
	var list []repository.ProductionEntryView
	for rows.Next() {
		var v repository.ProductionEntryView
		if err := rows.Scan(
			&v.ID, &v.Date, &v.Shift, &v.ProductionCategory,
			&v.HospitalID, &v.HospitalName,
			&v.ProductID, &v.ProductName,
			&v.EmployeeID, &v.EmployeeName, &v.EmployeeRole,
			&v.PlannedQty, &v.ActualQty, &v.RejectedQty,
			&v.Efficiency, &v.DisciplineScore, &v.Status,
		); err != nil {
			return nil, fmt.Errorf("scan entry view: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
