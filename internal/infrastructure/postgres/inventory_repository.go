package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)
var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const inventoryItemColumns = `id, name, item_type, category_id, COALESCE(sku, ''), unit, COALESCE(current_stock, 0), COALESCE(minimum_stock, 0), COALESCE(unit_cost, 0), COALESCE(description, ''), created_at, updated_at`

// Create persiste un nuevo artículo de inventario.
func (r *InventoryItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, item_type, category_id, sku, unit, current_stock, minimum_stock, unit_cost, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.Name, it.ItemType, it.CategoryID, it.SKU, it.Unit,
		it.CurrentStock, it.MinimumStock, it.UnitCost, it.Description,
		it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + ` FROM inventory_items WHERE id = $1`
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.ItemType, &it.CategoryID, &it.SKU, &it.Unit,
		&it.CurrentStock, &it.MinimumStock, &it.UnitCost, &it.Description,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// ListByType lista los artículos de un tipo ordenados por nombre.
func (r *InventoryItemRepo) ListByType(ctx context.Context, itemType entity.ItemType) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + ` FROM inventory_items WHERE item_type = $1 ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, itemType)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.ItemType, &it.CategoryID, &it.SKU, &it.Unit,
			&it.CurrentStock, &it.MinimumStock, &it.UnitCost, &it.Description,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un artículo. current_stock no se toca aquí: solo AdjustStock.
func (r *InventoryItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $2, category_id = $3, sku = $4, unit = $5, minimum_stock = $6, unit_cost = $7, description = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.Name, it.CategoryID, it.SKU, it.Unit, it.MinimumStock, it.UnitCost, it.Description, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// AdjustStock suma delta (negativo para salidas) a current_stock.
func (r *InventoryItemRepo) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory_items SET current_stock = current_stock + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

// StockTransactionRepo implementación del puerto StockTransactionRepository
// sobre PostgreSQL (usable con pool o tx).
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockTransactionRepo) Create(ctx context.Context, t *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, item_id, transaction_type, quantity, reference_type, notes, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ItemID, t.TransactionType, t.Quantity, t.ReferenceType, t.Notes, t.TransactionDate, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// ListByItem devuelve el historial del artículo, más reciente primero.
func (r *StockTransactionRepo) ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, item_id, transaction_type, quantity, COALESCE(reference_type, ''), COALESCE(notes, ''), transaction_date, created_at
		FROM stock_transactions WHERE item_id = $1 ORDER BY transaction_date DESC, created_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.ItemID, &t.TransactionType, &t.Quantity, &t.ReferenceType, &t.Notes, &t.TransactionDate, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
