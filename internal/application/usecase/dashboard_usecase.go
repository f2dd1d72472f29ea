package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Produccion-api/internal/application/analytics"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// DashboardUseCase compone la vista principal del tablero: resumen de los
// últimos 7 días, serie semanal, desglose por categoría y actividad reciente.
type DashboardUseCase struct {
	analytics *analytics.AnalyticsUseCase
	activity  *ActivityUseCase
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(an *analytics.AnalyticsUseCase, activity *ActivityUseCase) *DashboardUseCase {
	return &DashboardUseCase{analytics: an, activity: activity, now: time.Now}
}

// GetSummary arma el tablero lanzando las cuatro consultas en paralelo.
// El período es fijo: los últimos 7 días calendario incluyendo hoy.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	end := uc.now()
	start := end.AddDate(0, 0, -6)
	startDate := start.Format(dateLayout)
	endDate := end.Format(dateLayout)

	type summaryResult struct {
		summary *dto.ProductionSummaryDTO
		err     error
	}
	type weeklyResult struct {
		points []dto.WeeklyPointDTO
		err    error
	}
	type groupsResult struct {
		groups []dto.GroupStatDTO
		err    error
	}
	type activityResult struct {
		activity *dto.ActivityListResponse
		err      error
	}

	sumCh := make(chan summaryResult, 1)
	weekCh := make(chan weeklyResult, 1)
	catCh := make(chan groupsResult, 1)
	actCh := make(chan activityResult, 1)

	go func() {
		s, err := uc.analytics.GetProductionSummary(ctx, startDate, endDate)
		sumCh <- summaryResult{s, err}
	}()
	go func() {
		w, err := uc.analytics.GetWeeklyStats(ctx)
		weekCh <- weeklyResult{w, err}
	}()
	go func() {
		g, err := uc.analytics.GetStatsByCategory(ctx, startDate, endDate)
		catCh <- groupsResult{g, err}
	}()
	go func() {
		a, err := uc.activity.GetRecent(ctx, 10)
		actCh <- activityResult{a, err}
	}()

	sum := <-sumCh
	week := <-weekCh
	cat := <-catCh
	act := <-actCh

	if sum.err != nil {
		return nil, sum.err
	}
	if week.err != nil {
		return nil, week.err
	}
	if cat.err != nil {
		return nil, cat.err
	}
	if act.err != nil {
		return nil, act.err
	}

	return &dto.DashboardSummaryDTO{
		Period:         dto.PeriodDTO{StartDate: startDate, EndDate: endDate},
		Summary:        *sum.summary,
		Weekly:         week.points,
		ByCategory:     cat.groups,
		RecentActivity: act.activity.Items,
	}, nil
}
