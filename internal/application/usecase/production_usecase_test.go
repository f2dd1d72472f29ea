package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/audit"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeEntryRepo struct {
	stored  *entity.ProductionEntry
	created *entity.ProductionEntry
	updated *entity.ProductionEntry
	deleted []string
}

var _ repository.ProductionEntryRepository = (*fakeEntryRepo)(nil)

func (f *fakeEntryRepo) Create(_ context.Context, entry *entity.ProductionEntry) error {
	f.created = entry
	return nil
}

func (f *fakeEntryRepo) GetByID(_ context.Context, _ string) (*entity.ProductionEntry, error) {
	return f.stored, nil
}

func (f *fakeEntryRepo) List(_ context.Context, _ repository.EntryFilters) ([]repository.ProductionEntryView, error) {
	return nil, nil
}

func (f *fakeEntryRepo) Update(_ context.Context, entry *entity.ProductionEntry) error {
	f.updated = entry
	return nil
}

func (f *fakeEntryRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeActivityRepo struct {
	rows []*entity.ActivityLog
}

func (f *fakeActivityRepo) Create(_ context.Context, log *entity.ActivityLog) error {
	f.rows = append(f.rows, log)
	return nil
}

func (f *fakeActivityRepo) ListRecent(_ context.Context, _ int) ([]*entity.ActivityLog, error) {
	return f.rows, nil
}

func newProductionUC(repo *fakeEntryRepo, activity *fakeActivityRepo) *usecase.ProductionUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return usecase.NewProductionUseCase(repo, audit.NewRecorder(activity, log))
}

func sptr(s string) *string { return &s }
func iptr(n int64) *int64   { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductionCreate_DerivaEficienciaYDefaults(t *testing.T) {
	repo := &fakeEntryRepo{}
	activity := &fakeActivityRepo{}
	uc := newProductionUC(repo, activity)

	out, err := uc.Create(context.Background(), sptr("user-1"), dto.CreateEntryRequest{
		Date:       "2025-03-10",
		Shift:      "A",
		PlannedQty: 80,
		ActualQty:  72,
	})
	require.NoError(t, err)

	assert.True(t, out.Efficiency.Equal(decimal.NewFromInt(90)),
		"la eficiencia se deriva 72/80*100, obtenido %s", out.Efficiency)
	assert.Equal(t, "DRAFT", out.Status, "estado por defecto")
	assert.Nil(t, out.HospitalID, "sin destino explícito va a bodega")
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.Efficiency.Equal(decimal.NewFromInt(90)),
		"la fila persistida lleva la eficiencia derivada")

	require.Len(t, activity.rows, 1, "el alta deja exactamente una fila de bitácora")
	assert.Equal(t, entity.ActionCreate, activity.rows[0].ActionType)
	assert.Equal(t, entity.KindEntry, activity.rows[0].EntityType)
	assert.Equal(t, "user-1", *activity.rows[0].UserID)
}

func TestProductionCreate_DestinoHospitalExigeHospitalID(t *testing.T) {
	uc := newProductionUC(&fakeEntryRepo{}, &fakeActivityRepo{})

	_, err := uc.Create(context.Background(), nil, dto.CreateEntryRequest{
		Date:            "2025-03-10",
		Shift:           "B",
		DestinationType: "HOSPITAL",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionCreate_ValidaTurnoYFecha(t *testing.T) {
	uc := newProductionUC(&fakeEntryRepo{}, &fakeActivityRepo{})
	ctx := context.Background()

	_, err := uc.Create(ctx, nil, dto.CreateEntryRequest{Date: "2025-03-10", Shift: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "turno fuera de A/B/C")

	_, err = uc.Create(ctx, nil, dto.CreateEntryRequest{Date: "10-03-2025", Shift: "A"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha malformada")

	_, err = uc.Create(ctx, nil, dto.CreateEntryRequest{Date: "2025-03-10", Shift: "A", PlannedQty: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidades negativas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductionUpdate_RecalculaEficienciaSiempre(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 8, 0, 0, 0, time.Local)
	repo := &fakeEntryRepo{stored: &entity.ProductionEntry{
		ID:         "entry-1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		Shift:      entity.ShiftA,
		PlannedQty: 100,
		ActualQty:  90,
		Efficiency: decimal.NewFromInt(50), // valor obsoleto a propósito
		Status:     entity.StatusDraft,
		CreatedAt:  createdAt,
	}}
	uc := newProductionUC(repo, &fakeActivityRepo{})

	// Editar solo las observaciones también recalcula la eficiencia: la columna
	// persistida nunca queda obsoleta.
	out, err := uc.Update(context.Background(), nil, "entry-1", dto.UpdateEntryRequest{
		Remarks: sptr("lote revisado"),
	})
	require.NoError(t, err)
	assert.True(t, out.Efficiency.Equal(decimal.NewFromInt(90)),
		"90/100*100, obtenido %s", out.Efficiency)
	assert.Equal(t, createdAt, repo.updated.CreatedAt, "created_at es inmutable")

	// Cambiar las cantidades rehace la derivación con los valores resultantes.
	out, err = uc.Update(context.Background(), nil, "entry-1", dto.UpdateEntryRequest{
		PlannedQty: iptr(60),
	})
	require.NoError(t, err)
	assert.True(t, out.Efficiency.Equal(decimal.NewFromInt(150)),
		"90/60*100, obtenido %s", out.Efficiency)
}

func TestProductionUpdate_NoEncontradoDevuelveNil(t *testing.T) {
	uc := newProductionUC(&fakeEntryRepo{stored: nil}, &fakeActivityRepo{})

	out, err := uc.Update(context.Background(), nil, "no-existe", dto.UpdateEntryRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductionDelete_RegistraBitacora(t *testing.T) {
	repo := &fakeEntryRepo{}
	activity := &fakeActivityRepo{}
	uc := newProductionUC(repo, activity)

	require.NoError(t, uc.Delete(context.Background(), sptr("user-2"), "entry-7"))

	assert.Equal(t, []string{"entry-7"}, repo.deleted)
	require.Len(t, activity.rows, 1)
	assert.Equal(t, entity.ActionDelete, activity.rows[0].ActionType)
	assert.Equal(t, "entry-7", *activity.rows[0].EntityID)
}
