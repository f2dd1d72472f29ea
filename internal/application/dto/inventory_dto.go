package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest alta de artículo de inventario.
type CreateItemRequest struct {
	Name         string          `json:"name"`      // requerido
	ItemType     string          `json:"item_type"` // RAW_MATERIAL | ANCILLARY
	CategoryID   *string         `json:"category_id"`
	SKU          string          `json:"sku"`
	Unit         string          `json:"unit"` // por defecto "kg"
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Description  string          `json:"description"`
}

// UpdateItemRequest edición parcial. CurrentStock no es editable: solo se
// modifica mediante transacciones de stock.
type UpdateItemRequest struct {
	Name         *string          `json:"name"`
	CategoryID   *string          `json:"category_id"`
	SKU          *string          `json:"sku"`
	Unit         *string          `json:"unit"`
	MinimumStock *decimal.Decimal `json:"minimum_stock"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	Description  *string          `json:"description"`
}

// ItemResponse artículo persistido. BelowMinimum marca stock bajo mínimo.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	ItemType     string          `json:"item_type"`
	CategoryID   *string         `json:"category_id"`
	SKU          string          `json:"sku,omitempty"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Description  string          `json:"description,omitempty"`
	BelowMinimum bool            `json:"below_minimum"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateTransactionRequest movimiento de stock sobre un artículo.
type CreateTransactionRequest struct {
	TransactionType string          `json:"transaction_type"` // IN | OUT
	Quantity        decimal.Decimal `json:"quantity"`         // > 0
	ReferenceType   string          `json:"reference_type"`   // PURCHASE | USAGE | ADJUSTMENT
	Notes           string          `json:"notes"`
	TransactionDate string          `json:"transaction_date"` // YYYY-MM-DD, por defecto hoy
}

// TransactionResponse movimiento persistido.
type TransactionResponse struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	TransactionType string          `json:"transaction_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	ReferenceType   string          `json:"reference_type"`
	Notes           string          `json:"notes,omitempty"`
	TransactionDate string          `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}
