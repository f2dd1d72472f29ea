package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/analytics"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Fakes internos para el tablero: el reloj del caso de uso es inyectable solo
// dentro del paquete.

type stubAnalyticsRepo struct {
	entries []repository.ProductionEntryView
	err     error
}

func (s *stubAnalyticsRepo) ListEntries(_ context.Context, start, end time.Time) ([]repository.ProductionEntryView, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []repository.ProductionEntryView
	for _, e := range s.entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubAnalyticsRepo) ListEmployeeEntries(ctx context.Context, start, end time.Time) ([]repository.ProductionEntryView, error) {
	return s.ListEntries(ctx, start, end)
}

type stubActivityRepo struct {
	rows []*entity.ActivityLog
	err  error
}

func (s *stubActivityRepo) Create(_ context.Context, log *entity.ActivityLog) error {
	s.rows = append(s.rows, log)
	return nil
}

func (s *stubActivityRepo) ListRecent(_ context.Context, limit int) ([]*entity.ActivityLog, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.rows) > limit {
		return s.rows[:limit], nil
	}
	return s.rows, nil
}

func TestDashboardGetSummary_ComponeElTablero(t *testing.T) {
	day := time.Date(2025, 3, 13, 0, 0, 0, 0, time.Local)
	analyticsRepo := &stubAnalyticsRepo{entries: []repository.ProductionEntryView{{
		ID:                 "e-1",
		Date:               day,
		Shift:              "A",
		ProductionCategory: "NUTRICION",
		PlannedQty:         100,
		ActualQty:          95,
		Efficiency:         decimal.NewFromInt(95),
	}}}
	activityRepo := &stubActivityRepo{rows: []*entity.ActivityLog{
		{ID: "log-1", ActionType: entity.ActionCreate, EntityType: entity.KindEntry},
		{ID: "log-2", ActionType: entity.ActionUpdate, EntityType: entity.KindEntry},
	}}

	uc := NewDashboardUseCase(analytics.NewAnalyticsUseCase(analyticsRepo), NewActivityUseCase(activityRepo))
	uc.now = func() time.Time { return time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local) }

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-03-09", out.Period.StartDate, "últimos 7 días incluyendo hoy")
	assert.Equal(t, "2025-03-15", out.Period.EndDate)
	assert.Equal(t, int64(95), out.Summary.TotalActual)
	assert.Len(t, out.Weekly, 7, "la serie semanal siempre trae 7 puntos")
	require.Len(t, out.ByCategory, 1)
	assert.Equal(t, "NUTRICION", out.ByCategory[0].Name)
	assert.Len(t, out.RecentActivity, 2)
}

func TestDashboardGetSummary_PropagaErroresDeFetch(t *testing.T) {
	analyticsRepo := &stubAnalyticsRepo{err: errors.New("db caída")}
	activityRepo := &stubActivityRepo{}

	uc := NewDashboardUseCase(analytics.NewAnalyticsUseCase(analyticsRepo), NewActivityUseCase(activityRepo))

	_, err := uc.GetSummary(context.Background())
	assert.Error(t, err, "a diferencia de los insights, el tablero no degrada")
}
