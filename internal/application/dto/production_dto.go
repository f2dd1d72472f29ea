package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateEntryRequest alta de un registro de producción.
// Efficiency no se acepta del cliente: siempre se deriva de las cantidades.
type CreateEntryRequest struct {
	Date               string          `json:"date"`  // YYYY-MM-DD, requerido
	Shift              string          `json:"shift"` // A | B | C
	DestinationType    string          `json:"destination_type"` // HOSPITAL | WAREHOUSE
	HospitalID         *string         `json:"hospital_id"`      // requerido si destino HOSPITAL
	ProductionCategory string          `json:"production_category"`
	ProductID          *string         `json:"product_id"`
	CategoryID         *string         `json:"category_id"`
	EmployeeID         *string         `json:"employee_id"`
	StartTime          *string         `json:"start_time"`
	EndTime            *string         `json:"end_time"`
	PlannedQty         int64           `json:"planned_qty"`
	ActualQty          int64           `json:"actual_qty"`
	RejectedQty        int64           `json:"rejected_qty"`
	DisciplineScore    decimal.Decimal `json:"discipline_score"`
	ChecklistData      json.RawMessage `json:"checklist_data"`
	Remarks            string          `json:"remarks"`
	AdditionalNotes    string          `json:"additional_notes"`
	Status             string          `json:"status"` // por defecto DRAFT
}

// UpdateEntryRequest edición parcial. Los punteros nil no modifican el campo.
type UpdateEntryRequest struct {
	Date               *string          `json:"date"`
	Shift              *string          `json:"shift"`
	HospitalID         *string          `json:"hospital_id"`
	ProductionCategory *string          `json:"production_category"`
	ProductID          *string          `json:"product_id"`
	CategoryID         *string          `json:"category_id"`
	EmployeeID         *string          `json:"employee_id"`
	StartTime          *string          `json:"start_time"`
	EndTime            *string          `json:"end_time"`
	PlannedQty         *int64           `json:"planned_qty"`
	ActualQty          *int64           `json:"actual_qty"`
	RejectedQty        *int64           `json:"rejected_qty"`
	DisciplineScore    *decimal.Decimal `json:"discipline_score"`
	ChecklistData      json.RawMessage  `json:"checklist_data"`
	Remarks            *string          `json:"remarks"`
	AdditionalNotes    *string          `json:"additional_notes"`
	Status             *string          `json:"status"`
}

// EntryFiltersRequest filtros de listado (todos opcionales).
type EntryFiltersRequest struct {
	Date               string `query:"date"`
	Shift              string `query:"shift"`
	HospitalID         string `query:"hospital_id"`
	ProductionCategory string `query:"production_category"`
}

// EntryResponse registro de producción persistido.
type EntryResponse struct {
	ID                 string          `json:"id"`
	Date               string          `json:"date"`
	Shift              string          `json:"shift"`
	HospitalID         *string         `json:"hospital_id"`
	ProductionCategory string          `json:"production_category"`
	ProductID          *string         `json:"product_id"`
	CategoryID         *string         `json:"category_id"`
	EmployeeID         *string         `json:"employee_id"`
	StartTime          *string         `json:"start_time"`
	EndTime            *string         `json:"end_time"`
	PlannedQty         int64           `json:"planned_qty"`
	ActualQty          int64           `json:"actual_qty"`
	RejectedQty        int64           `json:"rejected_qty"`
	Efficiency         decimal.Decimal `json:"efficiency"`
	DisciplineScore    decimal.Decimal `json:"discipline_score"`
	ChecklistData      json.RawMessage `json:"checklist_data,omitempty"`
	Remarks            string          `json:"remarks,omitempty"`
	AdditionalNotes    string          `json:"additional_notes,omitempty"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
}

// EntryViewResponse fila de listado con nombres de relaciones resueltos.
type EntryViewResponse struct {
	ID                 string          `json:"id"`
	Date               string          `json:"date"`
	Shift              string          `json:"shift"`
	ProductionCategory string          `json:"production_category"`
	HospitalID         *string         `json:"hospital_id"`
	HospitalName       string          `json:"hospital_name,omitempty"`
	ProductID          *string         `json:"product_id"`
	ProductName        string          `json:"product_name,omitempty"`
	EmployeeID         *string         `json:"employee_id"`
	EmployeeName       string          `json:"employee_name,omitempty"`
	PlannedQty         int64           `json:"planned_qty"`
	ActualQty          int64           `json:"actual_qty"`
	RejectedQty        int64           `json:"rejected_qty"`
	Efficiency         decimal.Decimal `json:"efficiency"`
	DisciplineScore    decimal.Decimal `json:"discipline_score"`
	Status             string          `json:"status"`
}

// EntryListResponse respuesta de listado.
type EntryListResponse struct {
	Items []EntryViewResponse `json:"items"`
	Total int                 `json:"total"`
}
