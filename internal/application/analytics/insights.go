package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// Umbrales de las reglas heurísticas (variaciones en puntos porcentuales).
var (
	effUpThreshold   = decimal.NewFromInt(5)
	effDownThreshold = decimal.NewFromInt(-5)
	prodUpThreshold  = decimal.NewFromInt(10)
	rejUpThreshold   = decimal.NewFromInt(15)
	rejDownThreshold = decimal.NewFromInt(-10)
	peakEfficiency   = decimal.NewFromInt(90)
	lowEfficiency    = decimal.NewFromInt(70)
)

// defaultInsight mensaje único cuando ninguna regla dispara o el fetch falla.
const defaultInsight = "Analizando datos de producción..."

// GetInsights evalúa reglas de umbral fijas, en orden fijo, sobre el resumen,
// el comparativo y el ranking del período, y devuelve mensajes legibles. Las
// reglas son independientes salvo los pares subió/cayó, que son excluyentes.
//
// Degradación: si cualquier consulta subyacente falla, nunca se propaga el
// error; se devuelve la lista con el mensaje por defecto.
func (uc *AnalyticsUseCase) GetInsights(ctx context.Context, startDate, endDate string) []string {
	type summaryResult struct {
		summary *dto.ProductionSummaryDTO
		err     error
	}
	type comparativeResult struct {
		comparative *dto.ComparativeSummaryDTO
		err         error
	}
	type rankingsResult struct {
		rankings []dto.EmployeeRankingDTO
		err      error
	}

	sumCh := make(chan summaryResult, 1)
	cmpCh := make(chan comparativeResult, 1)
	rankCh := make(chan rankingsResult, 1)

	go func() {
		s, err := uc.GetProductionSummary(ctx, startDate, endDate)
		sumCh <- summaryResult{s, err}
	}()
	go func() {
		c, err := uc.GetComparativeSummary(ctx, startDate, endDate)
		cmpCh <- comparativeResult{c, err}
	}()
	go func() {
		r, err := uc.GetEmployeeRankings(ctx, startDate, endDate)
		rankCh <- rankingsResult{r, err}
	}()

	sum := <-sumCh
	cmp := <-cmpCh
	rank := <-rankCh

	if sum.err != nil || cmp.err != nil || rank.err != nil {
		return []string{defaultInsight}
	}

	insights := buildInsights(sum.summary, cmp.comparative, rank.rankings)
	if len(insights) == 0 {
		return []string{defaultInsight}
	}
	return insights
}

// buildInsights aplica las reglas en orden fijo. Pura y determinista.
func buildInsights(
	summary *dto.ProductionSummaryDTO,
	comparative *dto.ComparativeSummaryDTO,
	rankings []dto.EmployeeRankingDTO,
) []string {
	var insights []string
	changes := comparative.Changes

	// Eficiencia: par excluyente subió/cayó.
	switch {
	case changes.Efficiency.GreaterThan(effUpThreshold):
		insights = append(insights, fmt.Sprintf(
			"La eficiencia subió %s%% respecto al período anterior", changes.Efficiency))
	case changes.Efficiency.LessThan(effDownThreshold):
		insights = append(insights, fmt.Sprintf(
			"La eficiencia cayó %s%%; conviene revisar la línea", changes.Efficiency.Abs()))
	}

	// Volumen de producción.
	if changes.Production.GreaterThan(prodUpThreshold) {
		insights = append(insights, fmt.Sprintf(
			"El volumen de producción creció %s%%", changes.Production))
	}

	// Calidad: par excluyente empeora/mejora.
	switch {
	case changes.Rejections.GreaterThan(rejUpThreshold):
		insights = append(insights, fmt.Sprintf(
			"La tasa de rechazos va en aumento: +%s%%", changes.Rejections))
	case changes.Rejections.LessThan(rejDownThreshold):
		insights = append(insights, fmt.Sprintf(
			"La calidad mejora: los rechazos bajaron %s%%", changes.Rejections.Abs()))
	}

	// Mejor desempeño del período.
	if len(rankings) > 0 {
		top := rankings[0]
		insights = append(insights, fmt.Sprintf(
			"Mejor desempeño: %s con %s%% de eficiencia promedio", top.Name, top.AverageEfficiency))
	}

	// Salud global: par excluyente máximo/bajo meta.
	avgEff := summary.AverageEfficiency.Round(1)
	switch {
	case summary.AverageEfficiency.GreaterThanOrEqual(peakEfficiency):
		insights = append(insights, fmt.Sprintf(
			"El sistema opera a rendimiento máximo (%s%% de eficiencia)", avgEff))
	case summary.AverageEfficiency.LessThan(lowEfficiency):
		insights = append(insights, fmt.Sprintf(
			"La eficiencia del sistema está bajo la meta: %s%%", avgEff))
	}

	return insights
}
