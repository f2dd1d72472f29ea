package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// HospitalRepository puerto de persistencia para Hospital.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *entity.Hospital) error
	GetByID(ctx context.Context, id string) (*entity.Hospital, error)
	ListAll(ctx context.Context) ([]*entity.Hospital, error) // ordenado por nombre
	Update(ctx context.Context, hospital *entity.Hospital) error
	Delete(ctx context.Context, id string) error
}
