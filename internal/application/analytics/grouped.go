package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Buckets para valores de dimensión ausentes.
const (
	bucketUnknown       = "Unknown"
	bucketUncategorized = "Uncategorized"
)

// GetStatsByCategory agrupa los registros del período por categoría de
// producción. Las filas sin categoría caen en el bucket Uncategorized.
func (uc *AnalyticsUseCase) GetStatsByCategory(
	ctx context.Context,
	startDate, endDate string,
) ([]dto.GroupStatDTO, error) {
	start, end, err := uc.parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	entries, err := uc.repo.ListEntries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics: por categoría: %w", err)
	}
	return reduceGroups(entries, keyByCategory), nil
}

// GetDeepAnalysisReport calcula los tres desgloses (turno, hospital y
// producto) sobre UN único fetch, de modo que los tres reflejan exactamente el
// mismo conjunto de filas y la suma de counts de cada desglose coincide con
// TotalEntries.
func (uc *AnalyticsUseCase) GetDeepAnalysisReport(
	ctx context.Context,
	startDate, endDate string,
) (*dto.DeepAnalysisReportDTO, error) {
	start, end, err := uc.parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	entries, err := uc.repo.ListEntries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics: reporte profundo: %w", err)
	}

	return &dto.DeepAnalysisReportDTO{
		ByShift:      reduceGroups(entries, keyByShift),
		ByHospital:   reduceGroups(entries, keyByHospital),
		ByProduct:    reduceGroups(entries, keyByProduct),
		TotalEntries: len(entries),
	}, nil
}

// ── Reducer genérico ─────────────────────────────────────────────────────────

func keyByCategory(e repository.ProductionEntryView) string {
	if e.ProductionCategory == "" {
		return bucketUncategorized
	}
	return e.ProductionCategory
}

func keyByShift(e repository.ProductionEntryView) string {
	if e.Shift == "" {
		return bucketUnknown
	}
	return e.Shift
}

func keyByHospital(e repository.ProductionEntryView) string {
	if e.HospitalName == "" {
		return bucketUnknown
	}
	return e.HospitalName
}

func keyByProduct(e repository.ProductionEntryView) string {
	if e.ProductName == "" {
		return bucketUnknown
	}
	return e.ProductName
}

// reduceGroups acumula por la dimensión que produce keyFn y deriva eficiencia
// media (1 decimal) y tasa de rechazo (2 decimales) por grupo. El orden de
// salida es el de primera aparición de cada grupo: determinista para que dos
// corridas sobre los mismos datos produzcan salidas idénticas.
//
// RejectedQty > ActualQty no se valida en escritura, así que la tasa de
// rechazo puede superar el 100%; se calcula igual, sin error.
func reduceGroups(
	entries []repository.ProductionEntryView,
	keyFn func(repository.ProductionEntryView) string,
) []dto.GroupStatDTO {
	type acc struct {
		actual   int64
		planned  int64
		rejected int64
		effSum   decimal.Decimal
		count    int
	}

	index := make(map[string]*acc)
	order := make([]string, 0)

	for _, e := range entries {
		key := keyFn(e)
		a := index[key]
		if a == nil {
			a = &acc{}
			index[key] = a
			order = append(order, key)
		}
		a.actual += e.ActualQty
		a.planned += e.PlannedQty
		a.rejected += e.RejectedQty
		a.effSum = a.effSum.Add(e.Efficiency)
		a.count++
	}

	groups := make([]dto.GroupStatDTO, 0, len(order))
	for _, key := range order {
		a := index[key]
		groups = append(groups, dto.GroupStatDTO{
			Name:          key,
			Actual:        a.actual,
			Planned:       a.planned,
			Rejected:      a.rejected,
			Count:         a.count,
			Efficiency:    mean(a.effSum, a.count, 1),
			RejectionRate: ratePct(a.rejected, a.actual, 2),
		})
	}
	return groups
}
