package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/audit"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// fakeActivityRepo captura las filas creadas; con err simula una bitácora caída.
type fakeActivityRepo struct {
	rows []*entity.ActivityLog
	err  error
}

func (f *fakeActivityRepo) Create(_ context.Context, log *entity.ActivityLog) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, log)
	return nil
}

func (f *fakeActivityRepo) ListRecent(_ context.Context, _ int) ([]*entity.ActivityLog, error) {
	return f.rows, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestRecord_PersisteLaFila(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := audit.NewRecorder(repo, testLogger())

	userID := "user-1"
	entityID := "entry-9"
	rec.Record(context.Background(), &userID, entity.ActionCreate, entity.KindEntry, &entityID, map[string]any{
		"planned_qty": 100,
	})

	require.Len(t, repo.rows, 1)
	row := repo.rows[0]
	assert.Equal(t, entity.ActionCreate, row.ActionType)
	assert.Equal(t, entity.KindEntry, row.EntityType)
	assert.Equal(t, "user-1", *row.UserID)
	assert.Equal(t, "entry-9", *row.EntityID)
	assert.JSONEq(t, `{"planned_qty":100}`, string(row.Details))
}

func TestRecord_FalloDePersistenciaNoSePropaga(t *testing.T) {
	repo := &fakeActivityRepo{err: errors.New("bitácora caída")}
	rec := audit.NewRecorder(repo, testLogger())

	// La operación principal ya se completó: Record no debe entrar en pánico
	// ni devolver nada; simplemente degrada a un warn.
	assert.NotPanics(t, func() {
		rec.Record(context.Background(), nil, entity.ActionDelete, entity.KindHospital, nil, nil)
	})
	assert.Empty(t, repo.rows)
}

func TestRecord_DetailsNoSerializableRegistraSinPayload(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := audit.NewRecorder(repo, testLogger())

	// Un canal no es serializable a JSON: la fila se registra sin payload.
	rec.Record(context.Background(), nil, entity.ActionUpdate, entity.KindProduct, nil, make(chan int))

	require.Len(t, repo.rows, 1)
	assert.Empty(t, repo.rows[0].Details)
}
