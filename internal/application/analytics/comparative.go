package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// GetComparativeSummary compara el período [start, end] con el período
// inmediatamente anterior de la misma longitud, que termina el día antes de
// start. Ambos fetches se lanzan en paralelo; cada resumen se reduce sobre su
// propio conjunto de filas.
func (uc *AnalyticsUseCase) GetComparativeSummary(
	ctx context.Context,
	startDate, endDate string,
) (*dto.ComparativeSummaryDTO, error) {
	start, end, err := uc.parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	// Ventana anterior: misma cantidad de días calendario, terminando el día
	// antes de start. Se cuenta en días calendario y no en horas/24 para que
	// un cambio de horario de verano dentro del rango no acorte la ventana.
	daysDiff := calendarDays(start, end)
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -daysDiff)

	type fetchResult struct {
		rows []repository.ProductionEntryView
		err  error
	}
	currCh := make(chan fetchResult, 1)
	prevCh := make(chan fetchResult, 1)

	go func() {
		rows, err := uc.repo.ListEntries(ctx, start, end)
		currCh <- fetchResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ListEntries(ctx, prevStart, prevEnd)
		prevCh <- fetchResult{rows, err}
	}()

	curr := <-currCh
	prev := <-prevCh

	if curr.err != nil {
		return nil, fmt.Errorf("analytics: período actual: %w", curr.err)
	}
	if prev.err != nil {
		return nil, fmt.Errorf("analytics: período anterior: %w", prev.err)
	}

	current := reduceSummary(curr.rows)
	previous := reduceSummary(prev.rows)

	return &dto.ComparativeSummaryDTO{
		Current:  current,
		Previous: previous,
		Changes: dto.ComparativeChangesDTO{
			Production: calcChange(decimal.NewFromInt(current.TotalActual), decimal.NewFromInt(previous.TotalActual)),
			Efficiency: calcChange(current.AverageEfficiency, previous.AverageEfficiency),
			Rejections: calcChange(decimal.NewFromInt(current.TotalRejected), decimal.NewFromInt(previous.TotalRejected)),
			Discipline: calcChange(current.AverageDiscipline, previous.AverageDiscipline),
		},
	}, nil
}

// calcChange variación porcentual con la convención del dashboard:
// prev == 0 -> 100 si curr > 0, si no 0; en otro caso (curr-prev)/prev*100
// con 1 decimal.
func calcChange(curr, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if curr.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return curr.Sub(prev).Div(prev).Mul(hundred).Round(1)
}
