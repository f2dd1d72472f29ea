// Package analytics implementa el motor de agregación del dashboard de
// producción: resúmenes por rango de fechas, series semanales, agrupaciones
// por dimensión, comparativos período contra período, ranking de empleados e
// insights heurísticos.
//
// El motor consume filas tipadas (ProductionEntryView) a través del puerto
// AnalyticsRepository y hace toda la reducción en memoria. No excluye ningún
// estado: DRAFT, COMPLETED y APPROVED cuentan por igual.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// AnalyticsUseCase orquesta las consultas de agregación del dashboard.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
	now  func() time.Time // inyectable en tests
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, now: time.Now}
}

// parsePeriod convierte los strings YYYY-MM-DD en fechas; aplica defaults si
// están vacíos (end = hoy, start = hace 6 días). El rango es inclusive en
// ambos extremos.
func (uc *AnalyticsUseCase) parsePeriod(startStr, endStr string) (start, end time.Time, err error) {
	today := dateOnly(uc.now())

	if endStr == "" {
		end = today
	} else {
		end, err = time.ParseInLocation(dateLayout, endStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date inválido: %w", domain.ErrInvalidInput)
		}
	}

	if startStr == "" {
		start = end.AddDate(0, 0, -6)
	} else {
		start, err = time.ParseInLocation(dateLayout, startStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date inválido: %w", domain.ErrInvalidInput)
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date posterior a end_date: %w", domain.ErrInvalidInput)
	}
	return start, end, nil
}

// dateOnly trunca un instante a su fecha calendario local.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarDays cuenta los días calendario entre dos fechas (end - start).
// Normaliza ambas a medianoche UTC antes de restar: en zonas con horario de
// verano un día del rango puede durar 23 o 25 horas y la división por 24
// truncaría un día completo.
func calendarDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// mean devuelve sum/count redondeado a places decimales; cero con count == 0.
func mean(sum decimal.Decimal, count int, places int32) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count))).Round(places)
}

// ratePct devuelve part/total*100 redondeado a places decimales; cero con total == 0.
func ratePct(part, total int64, places int32) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).
		Div(decimal.NewFromInt(total)).
		Mul(hundred).
		Round(places)
}
