package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Produccion-api/internal/application/analytics"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// ProductionReportGenerator puerto de generación del PDF del reporte.
type ProductionReportGenerator interface {
	GenerateProductionReport(
		ctx context.Context,
		period dto.PeriodDTO,
		summary *dto.ProductionSummaryDTO,
		byCategory []dto.GroupStatDTO,
		rankings []dto.EmployeeRankingDTO,
	) ([]byte, error)
}

// ReportUseCase arma el reporte de producción del período y lo exporta a PDF.
type ReportUseCase struct {
	analytics *analytics.AnalyticsUseCase
	generator ProductionReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(an *analytics.AnalyticsUseCase, gen ProductionReportGenerator) *ReportUseCase {
	return &ReportUseCase{analytics: an, generator: gen, now: time.Now}
}

// GeneratePDF resuelve el período (por defecto los últimos 7 días), lanza las
// tres consultas en paralelo y genera el documento.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, startDate, endDate string) ([]byte, error) {
	if endDate == "" {
		endDate = uc.now().Format(dateLayout)
	}
	if startDate == "" {
		end, err := time.Parse(dateLayout, endDate)
		if err == nil {
			startDate = end.AddDate(0, 0, -6).Format(dateLayout)
		}
	}

	type summaryResult struct {
		summary *dto.ProductionSummaryDTO
		err     error
	}
	type groupsResult struct {
		groups []dto.GroupStatDTO
		err    error
	}
	type rankingsResult struct {
		rankings []dto.EmployeeRankingDTO
		err      error
	}

	sumCh := make(chan summaryResult, 1)
	catCh := make(chan groupsResult, 1)
	rankCh := make(chan rankingsResult, 1)

	go func() {
		s, err := uc.analytics.GetProductionSummary(ctx, startDate, endDate)
		sumCh <- summaryResult{s, err}
	}()
	go func() {
		g, err := uc.analytics.GetStatsByCategory(ctx, startDate, endDate)
		catCh <- groupsResult{g, err}
	}()
	go func() {
		r, err := uc.analytics.GetEmployeeRankings(ctx, startDate, endDate)
		rankCh <- rankingsResult{r, err}
	}()

	sum := <-sumCh
	cat := <-catCh
	rank := <-rankCh

	if sum.err != nil {
		return nil, sum.err
	}
	if cat.err != nil {
		return nil, cat.err
	}
	if rank.err != nil {
		return nil, rank.err
	}

	period := dto.PeriodDTO{StartDate: startDate, EndDate: endDate}
	return uc.generator.GenerateProductionReport(ctx, period, sum.summary, cat.groups, rank.rankings)
}
