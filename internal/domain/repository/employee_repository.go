package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	ListAll(ctx context.Context) ([]*entity.Employee, error) // ordenado por nombre
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id string) error
}
