package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// EntryFilters filtros opcionales para listar registros de producción.
// Los campos vacíos/nil no filtran.
type EntryFilters struct {
	Date               string // YYYY-MM-DD
	Shift              string // A | B | C
	HospitalID         string
	ProductionCategory string
}

// ProductionEntryRepository puerto de persistencia para ProductionEntry.
type ProductionEntryRepository interface {
	Create(ctx context.Context, entry *entity.ProductionEntry) error
	GetByID(ctx context.Context, id string) (*entity.ProductionEntry, error)
	// List devuelve registros ordenados por created_at descendente,
	// con joins resueltos para la vista de listado.
	List(ctx context.Context, filters EntryFilters) ([]ProductionEntryView, error)
	Update(ctx context.Context, entry *entity.ProductionEntry) error
	Delete(ctx context.Context, id string) error
}
