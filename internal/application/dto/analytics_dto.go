package dto

import "github.com/shopspring/decimal"

// ── Resumen de producción ─────────────────────────────────────────────────────

// ProductionSummaryDTO totales y promedios de un rango de fechas.
// Incluye TODOS los estados (DRAFT, COMPLETED, APPROVED).
type ProductionSummaryDTO struct {
	TotalPlanned      int64           `json:"total_planned"`
	TotalActual       int64           `json:"total_actual"`
	TotalRejected     int64           `json:"total_rejected"`
	AverageEfficiency decimal.Decimal `json:"average_efficiency"` // media de efficiency; 0 sin filas
	AverageDiscipline decimal.Decimal `json:"average_discipline"` // media de discipline_score; 0 sin filas
	EntriesCount      int             `json:"entries_count"`
}

// ── Serie semanal ─────────────────────────────────────────────────────────────

// WeeklyPointDTO un día de la serie de los últimos 7 días.
// Name es solo presentación (Mon, Tue, ...); la identidad del bucket es la fecha.
type WeeklyPointDTO struct {
	Name    string          `json:"name"`
	Date    string          `json:"date"` // YYYY-MM-DD
	Planned int64           `json:"planned"`
	Actual  int64           `json:"actual"`
	Eff     decimal.Decimal `json:"eff"` // media del día, 2 decimales
}

// ── Agrupaciones ──────────────────────────────────────────────────────────────

// GroupStatDTO acumulado por una dimensión (categoría, turno, hospital o producto).
// La colección resultante no tiene orden garantizado; el consumidor ordena.
type GroupStatDTO struct {
	Name          string          `json:"name"`
	Actual        int64           `json:"actual"`
	Planned       int64           `json:"planned"`
	Rejected      int64           `json:"rejected"`
	Count         int             `json:"count"`
	Efficiency    decimal.Decimal `json:"efficiency"`     // media del grupo, 1 decimal
	RejectionRate decimal.Decimal `json:"rejection_rate"` // rejected/actual*100, 2 decimales; 0 si actual==0
}

// ── Comparativo período contra período ───────────────────────────────────────

// ComparativeChangesDTO variación porcentual de las cuatro métricas.
// Regla: prev==0 -> (curr>0 ? 100 : 0); si no, (curr-prev)/prev*100 con 1 decimal.
type ComparativeChangesDTO struct {
	Production decimal.Decimal `json:"production"` // sobre total_actual
	Efficiency decimal.Decimal `json:"efficiency"` // sobre average_efficiency
	Rejections decimal.Decimal `json:"rejections"` // sobre total_rejected
	Discipline decimal.Decimal `json:"discipline"` // sobre average_discipline
}

// ComparativeSummaryDTO resumen actual, resumen del período anterior de igual
// longitud (termina el día antes del inicio actual) y variaciones.
type ComparativeSummaryDTO struct {
	Current  ProductionSummaryDTO  `json:"current"`
	Previous ProductionSummaryDTO  `json:"previous"`
	Changes  ComparativeChangesDTO `json:"changes"`
}

// ── Ranking de empleados ─────────────────────────────────────────────────────

// EmployeeRankingDTO desempeño acumulado de un empleado en el período.
// Rank es posicional (1 = mejor eficiencia promedio), nunca un campo almacenado.
type EmployeeRankingDTO struct {
	Rank              int             `json:"rank"`
	EmployeeID        string          `json:"employee_id"`
	Name              string          `json:"name"`
	Role              string          `json:"role"`
	TotalProduction   int64           `json:"total_production"` // suma de actual_qty
	TotalPlanned      int64           `json:"total_planned"`
	TotalRejected     int64           `json:"total_rejected"`
	AverageEfficiency decimal.Decimal `json:"average_efficiency"` // 1 decimal
	RejectionRate     decimal.Decimal `json:"rejection_rate"`     // 2 decimales; 0 si no produjo
	ShiftsWorked      int             `json:"shifts_worked"`      // número de registros
}

// ── Reporte profundo ─────────────────────────────────────────────────────────

// DeepAnalysisReportDTO tres desgloses calculados sobre UN solo fetch, de modo
// que byShift, byHospital y byProduct reflejan exactamente el mismo conjunto de
// filas: la suma de counts de cada desglose es igual a TotalEntries.
type DeepAnalysisReportDTO struct {
	ByShift      []GroupStatDTO `json:"by_shift"`
	ByHospital   []GroupStatDTO `json:"by_hospital"`
	ByProduct    []GroupStatDTO `json:"by_product"`
	TotalEntries int            `json:"total_entries"`
}

// ── Insights ─────────────────────────────────────────────────────────────────

// InsightsDTO lista finita de mensajes heurísticos legibles por humanos.
type InsightsDTO struct {
	Insights []string `json:"insights"`
}

// ── Dashboard ────────────────────────────────────────────────────────────────

// DashboardSummaryDTO composición del tablero: resumen de los últimos 7 días,
// serie semanal, desglose por categoría y actividad reciente.
type DashboardSummaryDTO struct {
	Period         PeriodDTO            `json:"period"`
	Summary        ProductionSummaryDTO `json:"summary"`
	Weekly         []WeeklyPointDTO     `json:"weekly"`
	ByCategory     []GroupStatDTO       `json:"by_category"`
	RecentActivity []ActivityLogDTO     `json:"recent_activity"`
}
