package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// InventoryItemRepository puerto de persistencia para InventoryItem.
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	ListByType(ctx context.Context, itemType entity.ItemType) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	// AdjustStock suma delta (negativo para salidas) a current_stock.
	AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

// StockTransactionRepository puerto de persistencia para StockTransaction.
type StockTransactionRepository interface {
	Create(ctx context.Context, txn *entity.StockTransaction) error
	// ListByItem devuelve el historial del artículo, más reciente primero.
	ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.StockTransaction, error)
}
