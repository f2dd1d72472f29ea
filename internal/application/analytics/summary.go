package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// GetProductionSummary calcula totales y promedios de los registros cuya fecha
// cae en [start, end] inclusive. Sin filas devuelve ceros (nunca error).
func (uc *AnalyticsUseCase) GetProductionSummary(
	ctx context.Context,
	startDate, endDate string,
) (*dto.ProductionSummaryDTO, error) {
	start, end, err := uc.parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	entries, err := uc.repo.ListEntries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics: resumen: %w", err)
	}

	summary := reduceSummary(entries)
	return &summary, nil
}

// reduceSummary reduce las filas a totales y promedios. Pura: misma entrada,
// misma salida. Los promedios son la media simple sobre el número de filas.
func reduceSummary(entries []repository.ProductionEntryView) dto.ProductionSummaryDTO {
	var s dto.ProductionSummaryDTO
	var effSum, discSum decimal.Decimal

	for _, e := range entries {
		s.TotalPlanned += e.PlannedQty
		s.TotalActual += e.ActualQty
		s.TotalRejected += e.RejectedQty
		effSum = effSum.Add(e.Efficiency)
		discSum = discSum.Add(e.DisciplineScore)
	}

	s.EntriesCount = len(entries)
	s.AverageEfficiency = mean(effSum, s.EntriesCount, 2)
	s.AverageDiscipline = mean(discSum, s.EntriesCount, 2)
	return s
}
