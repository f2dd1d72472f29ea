package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAnalyticsRepo repositorio en memoria: filtra por rango de fechas igual
// que la consulta SQL real (inclusive en ambos extremos) y registra cada
// llamada para poder verificar los rangos calculados.
type fakeAnalyticsRepo struct {
	mu      sync.Mutex
	entries []repository.ProductionEntryView
	err     error
	calls   [][2]time.Time
}

var _ repository.AnalyticsRepository = (*fakeAnalyticsRepo)(nil)

func (f *fakeAnalyticsRepo) ListEntries(_ context.Context, start, end time.Time) ([]repository.ProductionEntryView, error) {
	f.mu.Lock()
	f.calls = append(f.calls, [2]time.Time{start, end})
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	var out []repository.ProductionEntryView
	for _, e := range f.entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) ListEmployeeEntries(ctx context.Context, start, end time.Time) ([]repository.ProductionEntryView, error) {
	rows, err := f.ListEntries(ctx, start, end)
	if err != nil {
		return nil, err
	}
	var out []repository.ProductionEntryView
	for _, e := range rows {
		if e.EmployeeID != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// newTestUC construye el caso de uso con el reloj congelado en el día indicado.
func newTestUC(t *testing.T, repo repository.AnalyticsRepository, today string) *AnalyticsUseCase {
	t.Helper()
	day, err := time.ParseInLocation(dateLayout, today, time.Local)
	require.NoError(t, err)

	uc := NewAnalyticsUseCase(repo)
	uc.now = func() time.Time { return day.Add(10 * time.Hour) }
	return uc
}

// viewOn construye una fila de producción con la fecha dada.
func viewOn(date string, planned, actual, rejected int64, eff float64) repository.ProductionEntryView {
	d, _ := time.ParseInLocation(dateLayout, date, time.Local)
	return repository.ProductionEntryView{
		ID:          date + "-" + time.Now().Format("150405.000000000"),
		Date:        d,
		PlannedQty:  planned,
		ActualQty:   actual,
		RejectedQty: rejected,
		Efficiency:  decimal.NewFromFloat(eff),
	}
}

func strPtr(s string) *string { return &s }

// assertDec compara decimales por valor, no por representación.
func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"%s: esperado %s, obtenido %s", msg, want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen de producción
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProductionSummary_TotalesYPromedios(t *testing.T) {
	e1 := viewOn("2025-03-10", 100, 90, 5, 90) // 90/100 -> 90%
	e1.DisciplineScore = decimal.NewFromInt(80)
	e2 := viewOn("2025-03-12", 50, 50, 0, 100) // 50/50 -> 100%
	e2.DisciplineScore = decimal.NewFromInt(90)

	repo := &fakeAnalyticsRepo{entries: []repository.ProductionEntryView{e1, e2}}
	uc := newTestUC(t, repo, "2025-03-15")

	out, err := uc.GetProductionSummary(context.Background(), "2025-03-08", "2025-03-14")
	require.NoError(t, err)

	assert.Equal(t, int64(150), out.TotalPlanned, "planeado total")
	assert.Equal(t, int64(140), out.TotalActual, "producido total")
	assert.Equal(t, int64(5), out.TotalRejected, "rechazado total")
	assert.Equal(t, 2, out.EntriesCount)
	assertDec(t, "95", out.AverageEfficiency, "eficiencia promedio (90+100)/2")
	assertDec(t, "85", out.AverageDiscipline, "disciplina promedio (80+90)/2")
}

func TestGetProductionSummary_PeriodoVacioDevuelveCeros(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := newTestUC(t, repo, "2025-03-15")

	out, err := uc.GetProductionSummary(context.Background(), "2025-03-01", "2025-03-07")
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.TotalPlanned)
	assert.Equal(t, int64(0), out.TotalActual)
	assert.Equal(t, int64(0), out.TotalRejected)
	assert.Equal(t, 0, out.EntriesCount)
	assert.True(t, out.AverageEfficiency.IsZero(), "sin filas la eficiencia promedio es cero")
	assert.True(t, out.AverageDiscipline.IsZero(), "sin filas la disciplina promedio es cero")
}

func TestGetProductionSummary_DefaultsUltimosSieteDias(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := newTestUC(t, repo, "2025-03-15")

	_, err := uc.GetProductionSummary(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, repo.calls, 1)
	assert.Equal(t, "2025-03-09", repo.calls[0][0].Format(dateLayout), "start por defecto = hoy - 6 días")
	assert.Equal(t, "2025-03-15", repo.calls[0][1].Format(dateLayout), "end por defecto = hoy")
}

func TestParsePeriod_FechasInvalidas(t *testing.T) {
	uc := newTestUC(t, &fakeAnalyticsRepo{}, "2025-03-15")
	ctx := context.Background()

	_, err := uc.GetProductionSummary(ctx, "no-es-fecha", "2025-03-14")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "start_date malformado debe ser error de validación")

	_, err = uc.GetProductionSummary(ctx, "2025-03-08", "14/03/2025")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "end_date malformado debe ser error de validación")

	_, err = uc.GetProductionSummary(ctx, "2025-03-20", "2025-03-14")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "start posterior a end debe ser error de validación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Comparativo período contra período
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcChange_Convenciones(t *testing.T) {
	cases := []struct {
		name string
		curr string
		prev string
		want string
	}{
		{"previo cero y actual positivo", "50", "0", "100"},
		{"previo cero y actual cero", "0", "0", "0"},
		{"subida simple", "106", "100", "6"},
		{"bajada simple", "94", "100", "-6"},
		{"redondeo a un decimal", "1", "3", "-66.7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calcChange(decimal.RequireFromString(tc.curr), decimal.RequireFromString(tc.prev))
			assertDec(t, tc.want, got, "variación porcentual")
		})
	}
}

func TestGetComparativeSummary_VentanasYCambios(t *testing.T) {
	// Período actual: 2025-03-08 .. 2025-03-14. Anterior: 2025-03-01 .. 2025-03-07.
	curr := viewOn("2025-03-10", 100, 90, 2, 90)
	prev := viewOn("2025-03-05", 100, 80, 4, 80)
	repo := &fakeAnalyticsRepo{entries: []repository.ProductionEntryView{curr, prev}}
	uc := newTestUC(t, repo, "2025-03-15")

	out, err := uc.GetComparativeSummary(context.Background(), "2025-03-08", "2025-03-14")
	require.NoError(t, err)

	assert.Equal(t, int64(90), out.Current.TotalActual, "el actual solo ve su ventana")
	assert.Equal(t, int64(80), out.Previous.TotalActual, "el anterior solo ve la ventana previa")
	assertDec(t, "12.5", out.Changes.Production, "(90-80)/80*100")
	assertDec(t, "12.5", out.Changes.Efficiency, "(90-80)/80*100")
	assertDec(t, "-50", out.Changes.Rejections, "(2-4)/4*100")
}

func TestCalendarDays_CruceDeHorarioDeVerano(t *testing.T) {
	// En América/New_York el 2026-03-08 el reloj salta una hora: el rango
	// 07..14 de marzo dura 167 horas pero sigue siendo 7 días calendario.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	end := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)

	assert.Equal(t, 7, calendarDays(start, end),
		"el conteo es por días calendario, no por horas/24")
}

func TestGetComparativeSummary_VentanasDeIgualLongitud(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := newTestUC(t, repo, "2025-03-15")

	_, err := uc.GetComparativeSummary(context.Background(), "2025-03-07", "2025-03-14")
	require.NoError(t, err)
	require.Len(t, repo.calls, 2)

	// Las dos consultas salen en paralelo: identificar cada ventana por fecha.
	var current, previous [2]time.Time
	for _, call := range repo.calls {
		if call[1].Format(dateLayout) == "2025-03-14" {
			current = call
		} else {
			previous = call
		}
	}

	assert.Equal(t, "2025-03-07", current[0].Format(dateLayout))
	assert.Equal(t, "2025-02-27", previous[0].Format(dateLayout),
		"la ventana anterior abarca los mismos 8 días de fecha")
	assert.Equal(t, "2025-03-06", previous[1].Format(dateLayout),
		"la ventana anterior termina el día antes de start")
	assert.Equal(t, calendarDays(current[0], current[1]), calendarDays(previous[0], previous[1]),
		"ambas ventanas abarcan la misma cantidad de días")
}

func TestGetComparativeSummary_PrevioCeroProduccionCien(t *testing.T) {
	repo := &fakeAnalyticsRepo{entries: []repository.ProductionEntryView{
		viewOn("2025-03-10", 60, 50, 0, 83.33),
	}}
	uc := newTestUC(t, repo, "2025-03-15")

	out, err := uc.GetComparativeSummary(context.Background(), "2025-03-08", "2025-03-14")
	require.NoError(t, err)

	assert.Equal(t, int64(50), out.Current.TotalActual)
	assert.Equal(t, int64(0), out.Previous.TotalActual)
	assertDec(t, "100", out.Changes.Production, "previo cero y actual positivo")
	assertDec(t, "0", out.Changes.Rejections, "previo cero y actual cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie semanal
// ──────────────────────────────────────────────────────────────────────────────

func TestGetWeeklyStats_SieteDiasConRelleno(t *testing.T) {
	// Hoy congelado en sábado 2025-03-15: la serie va del domingo 09 al sábado 15.
	repo := &fakeAnalyticsRepo{entries: []repository.ProductionEntryView{
		viewOn("2025-03-12", 50, 45, 1, 90),
		viewOn("2025-03-15", 40, 40, 0, 100),
		viewOn("2025-03-15", 60, 51, 2, 85),
	}}
	uc := newTestUC(t, repo, "2025-03-15")

	points, err := uc.GetWeeklyStats(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 7, "la serie siempre tiene exactamente 7 puntos")

	assert.Equal(t, "2025-03-09", points[0].Date, "primer punto = el más antiguo")
	assert.Equal(t, "2025-03-15", points[6].Date, "último punto = hoy")
	assert.Equal(t, "Sun", points[0].Name)
	assert.Equal(t, "Sat", points[6].Name)

	// Día sin registros: presente y en cero.
	assert.Equal(t, int64(0), points[1].Planned, "día sin datos queda en cero")
	assert.Equal(t, int64(0), points[1].Actual)
	assert.True(t, points[1].Eff.IsZero())

	// Miércoles 12: un registro.
	assert.Equal(t, "2025-03-12", points[3].Date)
	assert.Equal(t, int64(50), points[3].Planned)
	assert.Equal(t, int64(45), points[3].Actual)
	assertDec(t, "90", points[3].Eff, "eficiencia del día con un registro")

	// Sábado 15: dos registros agregados.
	assert.Equal(t, int64(100), points[6].Planned)
	assert.Equal(t, int64(91), points[6].Actual)
	assertDec(t, "92.5", points[6].Eff, "media del día (100+85)/2")
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupaciones y reporte profundo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStatsByCategory_OrdenPrimeraAparicionYBuckets(t *testing.T) {
	e1 := viewOn("2025-03-10", 100, 90, 0, 90)
	e1.ProductionCategory = "NUTRICION"
	e2 := viewOn("2025-03-11", 50, 40, 0, 80)
	e2.ProductionCategory = "" // sin categoría
	e3 := viewOn("2025-03-12", 80, 72, 0, 90)
	e3.ProductionCategory = "FORMULAS"
	e4 := viewOn("2025-03-13", 20, 19, 0, 95)
	e4.ProductionCategory = "NUTRICION"

	repo := &fakeAnalyticsRepo{entries: []repository.ProductionEntryView{e1, e2, e3, e4}}
	uc := newTestUC(t, repo, "2025-03-15")

	groups, err := uc.GetStatsByCategory(context.Background(), "2025-03-08", "2025-03-14")
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "NUTRICION", groups[0].Name, "orden de primera aparición")
	assert.Equal(t, "Uncategorized", groups[1].Name, "sin categoría cae en Uncategorized")
	assert.Equal(t, "FORMULAS", groups[2].Name)

	assert.Equal(t, int64(109), groups[0].Actual, "90+19")
	assert.Equal(t, 2, groups[0].Count)
	assertDec(t, "92.5", groups[0].Efficiency, "media del grupo (90+95)/2 a 1 decimal")
}

func TestReduceGroups_TasaRechazoMayorAlCien(t *testing.T) {
	// rejected > actual no se valida en escritura: la tasa supera el 100%.
	e := viewOn("2025-03-10", 100, 10, 15, 10)
	e.Shift = "A"

	groups := reduceGroups([]repository.ProductionEntryView{e}, keyByShift)
	require.Len(t, groups, 1)
	assertDec(t, "150", groups[0].RejectionRate, "15/10*100")
}

func TestReduceGroups_TasaRechazoCeroSinProduccion(t *testing.T) {
	e := viewOn("2025-03-10", 100, 0, 5, 0)
	e.Shift = "B"

	groups := reduceGroups([]repository.ProductionEntryView{e}, keyByShift)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].RejectionRate.IsZero(), "actual==0 implica tasa de rechazo cero")
}

func TestGetDeepAnalysisReport_ConsistenciaDeCounts(t *testing.T) {
	e1 := viewOn("2025-03-10", 100, 90, 1, 90)
	e1.Shift, e1.HospitalName, e1.ProductName = "A", "Hospital Central", "Fórmula 1"
	e2 := viewOn("2025-03-11", 50, 40, 0, 80)
	e2.Shift, e2.HospitalName, e2.ProductName = "B", "", "Fórmula 2"
	e3 := viewOn("2025-03-12", 80, 72, 2, 90)
	e3.Shift, e3.HospitalName, e3.ProductName = "A", "Hospital Central", ""

	repo := &fakeAnalyticsRepo{entries: []repository.ProductionEntryView{e1, e2, e3}}
	uc := newTestUC(t, repo, "2025-03-15")

	out, err := uc.GetDeepAnalysisReport(context.Background(), "2025-03-08", "2025-03-14")
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalEntries)
	sumCounts := func(groups []dto.GroupStatDTO) int {
		total := 0
		for _, g := range groups {
			total += g.Count
		}
		return total
	}
	assert.Equal(t, out.TotalEntries, sumCounts(out.ByShift), "Σ counts por turno")
	assert.Equal(t, out.TotalEntries, sumCounts(out.ByHospital), "Σ counts por hospital")
	assert.Equal(t, out.TotalEntries, sumCounts(out.ByProduct), "Σ counts por producto")

	// Dimensiones ausentes caen en Unknown.
	assert.Equal(t, "Unknown", out.ByHospital[1].Name)
	assert.Equal(t, "Unknown", out.ByProduct[2].Name)
}

func TestGetDeepAnalysisReport_Idempotente(t *testing.T) {
	e1 := viewOn("2025-03-10", 100, 90, 1, 90)
	e1.Shift = "A"
	e2 := viewOn("2025-03-11", 50, 40, 0, 80)
	e2.Shift = "C"

	repo := &fakeAnalyticsRepo{entries: []repository.ProductionEntryView{e1, e2}}
	uc := newTestUC(t, repo, "2025-03-15")

	first, err := uc.GetDeepAnalysisReport(context.Background(), "2025-03-08", "2025-03-14")
	require.NoError(t, err)
	second, err := uc.GetDeepAnalysisReport(context.Background(), "2025-03-08", "2025-03-14")
	require.NoError(t, err)

	assert.Equal(t, first, second, "dos corridas sobre los mismos datos producen salidas idénticas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ranking de empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestGetEmployeeRankings_OrdenYDesempate(t *testing.T) {
	// Luis: dos turnos con eficiencia 90, producción total 100.
	l1 := viewOn("2025-03-10", 60, 55, 2, 90)
	l1.EmployeeID, l1.EmployeeName, l1.EmployeeRole = strPtr("emp-luis"), "Luis Mora", "OPERATOR"
	l2 := viewOn("2025-03-11", 50, 45, 2, 90)
	l2.EmployeeID, l2.EmployeeName, l2.EmployeeRole = strPtr("emp-luis"), "Luis Mora", "OPERATOR"

	// Ana: un turno con eficiencia 90, producción total 120 (gana el desempate).
	a1 := viewOn("2025-03-12", 130, 120, 0, 90)
	a1.EmployeeID, a1.EmployeeName, a1.EmployeeRole = strPtr("emp-ana"), "Ana Gómez", "OPERATOR"

	// Carlos: eficiencia 95 (mejor promedio).
	c1 := viewOn("2025-03-13", 84, 80, 1, 95)
	c1.EmployeeID, c1.EmployeeName, c1.EmployeeRole = strPtr("emp-carlos"), "Carlos Pérez", "SUPERVISOR"

	// Fila sin empleado: no debe aparecer en el ranking.
	anon := viewOn("2025-03-13", 10, 10, 0, 100)

	repo := &fakeAnalyticsRepo{entries: []repository.ProductionEntryView{l1, l2, a1, c1, anon}}
	uc := newTestUC(t, repo, "2025-03-15")

	rankings, err := uc.GetEmployeeRankings(context.Background(), "2025-03-08", "2025-03-14")
	require.NoError(t, err)
	require.Len(t, rankings, 3, "solo filas con empleado")

	assert.Equal(t, "Carlos Pérez", rankings[0].Name, "mejor eficiencia promedio primero")
	assert.Equal(t, 1, rankings[0].Rank)
	assertDec(t, "95", rankings[0].AverageEfficiency, "promedio de Carlos")

	assert.Equal(t, "Ana Gómez", rankings[1].Name, "empate a 90 se resuelve por producción total")
	assert.Equal(t, 2, rankings[1].Rank)
	assert.Equal(t, int64(120), rankings[1].TotalProduction)

	assert.Equal(t, "Luis Mora", rankings[2].Name)
	assert.Equal(t, 3, rankings[2].Rank)
	assert.Equal(t, int64(100), rankings[2].TotalProduction)
	assert.Equal(t, 2, rankings[2].ShiftsWorked, "Luis trabajó dos turnos")
	assertDec(t, "4", rankings[2].RejectionRate, "4 rechazos sobre 100 producidos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Insights
// ──────────────────────────────────────────────────────────────────────────────

func TestGetInsights_ErrorDeFetchDegradaAlMensajePorDefecto(t *testing.T) {
	repo := &fakeAnalyticsRepo{err: errors.New("conexión caída")}
	uc := newTestUC(t, repo, "2025-03-15")

	insights := uc.GetInsights(context.Background(), "2025-03-08", "2025-03-14")
	assert.Equal(t, []string{defaultInsight}, insights, "el error nunca se propaga")
}

func TestGetInsights_SinReglasDevuelveDefault(t *testing.T) {
	// Mismos números en ambas ventanas: todas las variaciones en cero,
	// eficiencia 80 (entre 70 y 90) y sin empleados: ninguna regla dispara.
	repo := &fakeAnalyticsRepo{entries: []repository.ProductionEntryView{
		viewOn("2025-03-10", 100, 80, 0, 80),
		viewOn("2025-03-03", 100, 80, 0, 80),
	}}
	uc := newTestUC(t, repo, "2025-03-15")

	insights := uc.GetInsights(context.Background(), "2025-03-08", "2025-03-14")
	assert.Equal(t, []string{defaultInsight}, insights)
}

func TestBuildInsights_UmbralDeEficiencia(t *testing.T) {
	base := func(effChange string) (*dto.ProductionSummaryDTO, *dto.ComparativeSummaryDTO) {
		summary := &dto.ProductionSummaryDTO{AverageEfficiency: decimal.NewFromInt(80)}
		comparative := &dto.ComparativeSummaryDTO{
			Changes: dto.ComparativeChangesDTO{Efficiency: decimal.RequireFromString(effChange)},
		}
		return summary, comparative
	}

	// +6% supera el umbral de +5: exactamente un mensaje con el valor.
	summary, comparative := base("6")
	insights := buildInsights(summary, comparative, nil)
	require.Len(t, insights, 1)
	assert.Contains(t, insights[0], "subió 6%", "el mensaje incluye la variación")

	// +3% no supera el umbral: ningún mensaje de eficiencia.
	summary, comparative = base("3")
	insights = buildInsights(summary, comparative, nil)
	assert.Empty(t, insights, "variación bajo el umbral no dispara reglas")

	// -6% dispara el mensaje de caída con el valor absoluto.
	summary, comparative = base("-6")
	insights = buildInsights(summary, comparative, nil)
	require.Len(t, insights, 1)
	assert.Contains(t, insights[0], "cayó 6%")
}

func TestBuildInsights_ReglasIndependientesEnOrdenFijo(t *testing.T) {
	summary := &dto.ProductionSummaryDTO{AverageEfficiency: decimal.NewFromInt(92)}
	comparative := &dto.ComparativeSummaryDTO{
		Changes: dto.ComparativeChangesDTO{
			Efficiency: decimal.NewFromInt(8),
			Production: decimal.NewFromInt(15),
			Rejections: decimal.NewFromInt(-20),
		},
	}
	rankings := []dto.EmployeeRankingDTO{{
		Rank: 1, Name: "Carlos Pérez", AverageEfficiency: decimal.RequireFromString("95.5"),
	}}

	insights := buildInsights(summary, comparative, rankings)
	require.Len(t, insights, 5)
	assert.Contains(t, insights[0], "eficiencia subió")
	assert.Contains(t, insights[1], "volumen de producción creció")
	assert.Contains(t, insights[2], "calidad mejora")
	assert.Contains(t, insights[3], "Carlos Pérez")
	assert.Contains(t, insights[4], "rendimiento máximo")
}

func TestBuildInsights_EficienciaBajoMeta(t *testing.T) {
	summary := &dto.ProductionSummaryDTO{AverageEfficiency: decimal.RequireFromString("64.38")}
	comparative := &dto.ComparativeSummaryDTO{}

	insights := buildInsights(summary, comparative, nil)
	require.Len(t, insights, 1)
	assert.Contains(t, insights[0], "bajo la meta", "eficiencia < 70 dispara la alerta")
	assert.Contains(t, insights[0], "64.4", "el valor se muestra redondeado a 1 decimal")
}
