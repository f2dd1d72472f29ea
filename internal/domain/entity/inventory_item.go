package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType clase de artículo de inventario.
type ItemType string

const (
	ItemRawMaterial ItemType = "RAW_MATERIAL"
	ItemAncillary   ItemType = "ANCILLARY"
)

// InventoryItem materia prima o insumo auxiliar de planta.
// CurrentStock solo se modifica vía StockTransaction (nunca por update directo).
type InventoryItem struct {
	ID           string
	Name         string
	ItemType     ItemType
	CategoryID   *string
	SKU          string
	Unit         string // kg, m, unidad, ...
	CurrentStock decimal.Decimal
	MinimumStock decimal.Decimal
	UnitCost     decimal.Decimal
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TransactionType dirección del movimiento de stock.
type TransactionType string

const (
	TransactionIn  TransactionType = "IN"
	TransactionOut TransactionType = "OUT"
)

// StockTransaction movimiento de entrada o salida sobre un InventoryItem.
type StockTransaction struct {
	ID              string
	ItemID          string
	TransactionType TransactionType
	Quantity        decimal.Decimal // siempre positiva; el signo lo da TransactionType
	ReferenceType   string          // PURCHASE | USAGE | ADJUSTMENT
	Notes           string
	TransactionDate time.Time
	CreatedAt       time.Time
}
