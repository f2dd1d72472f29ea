package dto

// DateRangeRequest rango de fechas inclusive para reportes (YYYY-MM-DD).
type DateRangeRequest struct {
	StartDate string `query:"start_date"` // por defecto: hace 6 días
	EndDate   string `query:"end_date"`   // por defecto: hoy
}

// PeriodDTO rango de fechas de un reporte, tal como se resolvió.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
