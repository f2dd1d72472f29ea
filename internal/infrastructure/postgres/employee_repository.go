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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, name, role, COALESCE(email, ''), COALESCE(phone, ''), status, created_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, role, email, phone, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, e.ID, e.Name, e.Role, e.Email, e.Phone, e.Status, e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Role, &e.Email, &e.Phone, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// ListAll lista todos los empleados ordenados por nombre.
func (r *EmployeeRepo) ListAll(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.Phone, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado existente.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, role = $3, email = $4, phone = $5, status = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, e.ID, e.Name, e.Role, e.Email, e.Phone, e.Status)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
