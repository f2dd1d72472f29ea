package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ProductionEntryRepository = (*ProductionEntryRepo)(nil)

// ProductionEntryRepo implementación del puerto ProductionEntryRepository sobre PostgreSQL.
type ProductionEntryRepo struct {
	q Querier
}

// NewProductionEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionEntryRepository(q Querier) *ProductionEntryRepo {
	return &ProductionEntryRepo{q: q}
}

// Create persiste un nuevo registro de producción.
func (r *ProductionEntryRepo) Create(ctx context.Context, e *entity.ProductionEntry) error {
	query := `
		INSERT INTO production_entries (id, date, shift, hospital_id, production_category, product_id, category_id, employee_id, start_time, end_time, planned_qty, actual_qty, rejected_qty, efficiency, discipline_score, checklist_data, remarks, additional_notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.Shift, e.HospitalID, e.ProductionCategory,
		e.ProductID, e.CategoryID, e.EmployeeID, e.StartTime, e.EndTime,
		e.PlannedQty, e.ActualQty, e.RejectedQty, e.Efficiency, e.DisciplineScore,
		e.ChecklistData, e.Remarks, e.AdditionalNotes, e.Status, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production entry: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *ProductionEntryRepo) GetByID(ctx context.Context, id string) (*entity.ProductionEntry, error) {
	query := `
		SELECT id, date, COALESCE(shift, ''), hospital_id, COALESCE(production_category, ''), product_id, category_id, employee_id, start_time, end_time,
		       COALESCE(planned_qty, 0), COALESCE(actual_qty, 0), COALESCE(rejected_qty, 0), COALESCE(efficiency, 0), COALESCE(discipline_score, 0),
		       checklist_data, COALESCE(remarks, ''), COALESCE(additional_notes, ''), COALESCE(status, ''), created_at
		FROM production_entries WHERE id = $1`
	var e entity.ProductionEntry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Date, &e.Shift, &e.HospitalID, &e.ProductionCategory,
		&e.ProductID, &e.CategoryID, &e.EmployeeID, &e.StartTime, &e.EndTime,
		&e.PlannedQty, &e.ActualQty, &e.RejectedQty, &e.Efficiency, &e.DisciplineScore,
		&e.ChecklistData, &e.Remarks, &e.AdditionalNotes, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production entry: %w", err)
	}
	return &e, nil
}

// List lista registros con joins resueltos, filtros opcionales y orden
// created_at descendente (lo más reciente primero).
func (r *ProductionEntryRepo) List(ctx context.Context, filters repository.EntryFilters) ([]repository.ProductionEntryView, error) {
	query := entryViewSelect + `
	WHERE ($1 = '' OR pe.date = $1::date)
	  AND ($2 = '' OR pe.shift = $2)
	  AND ($3 = '' OR pe.hospital_id = $3::uuid)
	  AND ($4 = '' OR pe.production_category = $4)
	ORDER BY pe.created_at DESC`

	rows, err := r.q.Query(ctx, query,
		filters.Date, filters.Shift, filters.HospitalID, filters.ProductionCategory,
	)
	if err != nil {
		return nil, fmt.Errorf("list production entries: %w", err)
	}
	defer rows.Close()
	return scanEntryViews(rows)
}

// Update actualiza un registro existente. created_at nunca se toca.
func (r *ProductionEntryRepo) Update(ctx context.Context, e *entity.ProductionEntry) error {
	query := `
		UPDATE production_entries
		SET date = $2, shift = $3, hospital_id = $4, production_category = $5, product_id = $6, category_id = $7, employee_id = $8,
		    start_time = $9, end_time = $10, planned_qty = $11, actual_qty = $12, rejected_qty = $13, efficiency = $14,
		    discipline_score = $15, checklist_data = $16, remarks = $17, additional_notes = $18, status = $19
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.Shift, e.HospitalID, e.ProductionCategory,
		e.ProductID, e.CategoryID, e.EmployeeID, e.StartTime, e.EndTime,
		e.PlannedQty, e.ActualQty, e.RejectedQty, e.Efficiency, e.DisciplineScore,
		e.ChecklistData, e.Remarks, e.AdditionalNotes, e.Status,
	)
	if err != nil {
		return fmt.Errorf("update production entry: %w", err)
	}
	return nil
}

// Delete elimina un registro por ID.
func (r *ProductionEntryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM production_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production entry: %w", err)
	}
	return nil
}
