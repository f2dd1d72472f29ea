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

var _ repository.HospitalRepository = (*HospitalRepo)(nil)

// HospitalRepo implementación del puerto HospitalRepository sobre PostgreSQL.
type HospitalRepo struct {
	q Querier
}

// NewHospitalRepository construye el adaptador de persistencia para hospitales.
func NewHospitalRepository(q Querier) *HospitalRepo {
	return &HospitalRepo{q: q}
}

const hospitalColumns = `id, name, COALESCE(location, ''), COALESCE(contact_person, ''), COALESCE(phone, ''), COALESCE(email, ''), status, created_at`

// Create persiste un nuevo hospital.
func (r *HospitalRepo) Create(ctx context.Context, h *entity.Hospital) error {
	query := `
		INSERT INTO hospitals (id, name, location, contact_person, phone, email, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.Name, h.Location, h.ContactPerson, h.Phone, h.Email, h.Status, h.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

// GetByID obtiene un hospital por ID.
func (r *HospitalRepo) GetByID(ctx context.Context, id string) (*entity.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1`
	var h entity.Hospital
	err := r.q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Location, &h.ContactPerson, &h.Phone, &h.Email, &h.Status, &h.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital: %w", err)
	}
	return &h, nil
}

// ListAll lista todos los hospitales ordenados por nombre.
func (r *HospitalRepo) ListAll(ctx context.Context) ([]*entity.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Hospital
	for rows.Next() {
		var h entity.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &h.ContactPerson, &h.Phone, &h.Email, &h.Status, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Update actualiza un hospital existente.
func (r *HospitalRepo) Update(ctx context.Context, h *entity.Hospital) error {
	query := `
		UPDATE hospitals SET name = $2, location = $3, contact_person = $4, phone = $5, email = $6, status = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.Name, h.Location, h.ContactPerson, h.Phone, h.Email, h.Status,
	)
	if err != nil {
		return fmt.Errorf("update hospital: %w", err)
	}
	return nil
}

// Delete elimina un hospital por ID.
func (r *HospitalRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM hospitals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hospital: %w", err)
	}
	return nil
}
