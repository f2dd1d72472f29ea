package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// GetEmployeeRankings acumula el desempeño por empleado en el período y
// devuelve el ranking ordenado por eficiencia promedio descendente. El empate
// se resuelve por producción total descendente (orden estable). Rank es la
// posición 1-based en la salida ordenada.
func (uc *AnalyticsUseCase) GetEmployeeRankings(
	ctx context.Context,
	startDate, endDate string,
) ([]dto.EmployeeRankingDTO, error) {
	start, end, err := uc.parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	entries, err := uc.repo.ListEmployeeEntries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics: ranking de empleados: %w", err)
	}

	type acc struct {
		name          string
		role          string
		totalActual   int64
		totalPlanned  int64
		totalRejected int64
		effSum        decimal.Decimal
		entryCount    int
	}

	index := make(map[string]*acc)
	order := make([]string, 0)

	for _, e := range entries {
		if e.EmployeeID == nil {
			continue // defensa: el repo ya filtra employee_id nulo
		}
		id := *e.EmployeeID
		a := index[id]
		if a == nil {
			name := e.EmployeeName
			if name == "" {
				name = bucketUnknown
			}
			role := e.EmployeeRole
			if role == "" {
				role = "N/A"
			}
			a = &acc{name: name, role: role}
			index[id] = a
			order = append(order, id)
		}
		a.totalActual += e.ActualQty
		a.totalPlanned += e.PlannedQty
		a.totalRejected += e.RejectedQty
		a.effSum = a.effSum.Add(e.Efficiency)
		a.entryCount++
	}

	rankings := make([]dto.EmployeeRankingDTO, 0, len(order))
	for _, id := range order {
		a := index[id]
		rankings = append(rankings, dto.EmployeeRankingDTO{
			EmployeeID:        id,
			Name:              a.name,
			Role:              a.role,
			TotalProduction:   a.totalActual,
			TotalPlanned:      a.totalPlanned,
			TotalRejected:     a.totalRejected,
			AverageEfficiency: mean(a.effSum, a.entryCount, 1),
			RejectionRate:     ratePct(a.totalRejected, a.totalActual, 2),
			ShiftsWorked:      a.entryCount,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if !rankings[i].AverageEfficiency.Equal(rankings[j].AverageEfficiency) {
			return rankings[i].AverageEfficiency.GreaterThan(rankings[j].AverageEfficiency)
		}
		return rankings[i].TotalProduction > rankings[j].TotalProduction
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings, nil
}
