package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// GetWeeklyStats produce la serie de los últimos 7 días calendario incluyendo
// hoy: exactamente 7 puntos, del más antiguo al más reciente. Los días sin
// registros aparecen igualmente con valores en cero.
//
// Los buckets se indexan por fecha absoluta, nunca por nombre de día: dos
// fechas distintas que caen en el mismo día de la semana jamás colisionan.
// El nombre corto del día es únicamente presentación.
func (uc *AnalyticsUseCase) GetWeeklyStats(ctx context.Context) ([]dto.WeeklyPointDTO, error) {
	end := dateOnly(uc.now())
	start := end.AddDate(0, 0, -6)

	entries, err := uc.repo.ListEntries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics: serie semanal: %w", err)
	}

	type bucket struct {
		planned int64
		actual  int64
		effSum  decimal.Decimal
		count   int
	}
	byDate := make(map[string]*bucket, 7)
	for _, e := range entries {
		key := e.Date.Format(dateLayout)
		b := byDate[key]
		if b == nil {
			b = &bucket{}
			byDate[key] = b
		}
		b.planned += e.PlannedQty
		b.actual += e.ActualQty
		b.effSum = b.effSum.Add(e.Efficiency)
		b.count++
	}

	points := make([]dto.WeeklyPointDTO, 0, 7)
	for i := 6; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		key := day.Format(dateLayout)

		point := dto.WeeklyPointDTO{
			Name: day.Weekday().String()[:3], // Mon, Tue, ...
			Date: key,
			Eff:  decimal.Zero,
		}
		if b := byDate[key]; b != nil {
			point.Planned = b.planned
			point.Actual = b.actual
			point.Eff = mean(b.effSum, b.count, 2)
		}
		points = append(points, point)
	}
	return points, nil
}
