package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Shift turno de producción.
type Shift string

const (
	ShiftA Shift = "A"
	ShiftB Shift = "B"
	ShiftC Shift = "C"
)

// Valid indica si el turno es uno de los tres definidos.
func (s Shift) Valid() bool {
	return s == ShiftA || s == ShiftB || s == ShiftC
}

// EntryStatus estado del registro de producción.
type EntryStatus string

const (
	StatusDraft     EntryStatus = "DRAFT"
	StatusCompleted EntryStatus = "COMPLETED"
	StatusApproved  EntryStatus = "APPROVED"
)

// Valid indica si el estado es uno de los definidos.
func (s EntryStatus) Valid() bool {
	return s == StatusDraft || s == StatusCompleted || s == StatusApproved
}

// ProductionEntry registro de producción de un turno: cantidades planeadas,
// producidas y rechazadas para un producto con destino hospital o bodega.
//
// HospitalID nulo significa que la producción va a stock de bodega (destino
// WAREHOUSE); no nulo, que va a un hospital concreto.
type ProductionEntry struct {
	ID                 string
	Date               time.Time // fecha calendario (sin hora)
	Shift              Shift
	HospitalID         *string // nil = destino bodega
	ProductionCategory string  // etiqueta libre (Assembly, Packaging, ...)
	ProductID          *string
	CategoryID         *string
	EmployeeID         *string
	StartTime          *string // "HH:MM", opcional
	EndTime            *string
	PlannedQty         int64
	ActualQty          int64
	RejectedQty        int64 // no se valida RejectedQty <= ActualQty (ver docs)
	Efficiency         decimal.Decimal
	DisciplineScore    decimal.Decimal // 0–100, métrica manual de disciplina
	ChecklistData      json.RawMessage
	Remarks            string
	AdditionalNotes    string
	Status             EntryStatus
	CreatedAt          time.Time // inmutable
}

// ComputeEfficiency deriva la eficiencia como actual/planeado*100 con 2 decimales.
// La eficiencia nunca es un valor libre: se recalcula en cada escritura.
// Con PlannedQty == 0 la razón no está definida y se devuelve cero.
func ComputeEfficiency(plannedQty, actualQty int64) decimal.Decimal {
	if plannedQty <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(actualQty).
		Div(decimal.NewFromInt(plannedQty)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
