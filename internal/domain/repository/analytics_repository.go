package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductionEntryView proyección tipada de un registro de producción con los
// joins ya resueltos (nombres de hospital, producto y empleado). Es la única
// forma en que el motor de agregación consume filas: nunca accede a campos
// opcionales sin tipar.
//
// Los nombres vacíos significan "sin relación" y el motor los agrupa bajo
// Unknown/Uncategorized según la dimensión.
type ProductionEntryView struct {
	ID                 string
	Date               time.Time
	Shift              string
	ProductionCategory string
	HospitalID         *string
	HospitalName       string
	ProductID          *string
	ProductName        string
	EmployeeID         *string
	EmployeeName       string
	EmployeeRole       string
	PlannedQty         int64
	ActualQty          int64
	RejectedQty        int64
	Efficiency         decimal.Decimal // almacenada; NULL en DB se lee como cero
	DisciplineScore    decimal.Decimal
	Status             string
}

// AnalyticsRepository define las consultas de lectura del motor de agregación.
// Las implementaciones son read-only; devuelven filas crudas y toda la
// reducción ocurre en memoria en el caso de uso.
type AnalyticsRepository interface {
	// ListEntries devuelve los registros con date en [start, end] (ambos
	// inclusive), con joins resueltos. Incluye TODOS los estados
	// (DRAFT, COMPLETED y APPROVED); es una decisión de diseño explícita.
	ListEntries(ctx context.Context, start, end time.Time) ([]ProductionEntryView, error)

	// ListEmployeeEntries igual que ListEntries pero solo filas con
	// employee_id no nulo, para el ranking de empleados.
	ListEmployeeEntries(ctx context.Context, start, end time.Time) ([]ProductionEntryView, error)
}
