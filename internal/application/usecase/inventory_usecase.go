package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// InventoryTxRunner ejecuta el callback dentro de una transacción: el
// movimiento y el ajuste de stock se confirman o revierten juntos.
type InventoryTxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		txnRepo repository.StockTransactionRepository,
	) error) error
}

// InventoryUseCase artículos de inventario y sus movimientos de stock.
// CurrentStock solo cambia vía RegisterTransaction, nunca por Update.
type InventoryUseCase struct {
	itemRepo repository.InventoryItemRepository
	txnRepo  repository.StockTransactionRepository
	txRunner InventoryTxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	itemRepo repository.InventoryItemRepository,
	txnRepo repository.StockTransactionRepository,
	txRunner InventoryTxRunner,
) *InventoryUseCase {
	return &InventoryUseCase{itemRepo: itemRepo, txnRepo: txnRepo, txRunner: txRunner}
}

// CreateItem crea un artículo con stock inicial cero.
func (uc *InventoryUseCase) CreateItem(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	itemType := entity.ItemType(in.ItemType)
	if itemType != entity.ItemRawMaterial && itemType != entity.ItemAncillary {
		return nil, domain.ErrInvalidInput
	}
	if in.MinimumStock.IsNegative() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "kg"
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		ItemType:     itemType,
		CategoryID:   in.CategoryID,
		SKU:          in.SKU,
		Unit:         unit,
		CurrentStock: decimal.Zero,
		MinimumStock: in.MinimumStock,
		UnitCost:     in.UnitCost,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetItem obtiene un artículo por ID.
func (uc *InventoryUseCase) GetItem(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// ListItems lista los artículos de un tipo dado.
func (uc *InventoryUseCase) ListItems(ctx context.Context, itemType string) ([]dto.ItemResponse, error) {
	t := entity.ItemType(itemType)
	if t != entity.ItemRawMaterial && t != entity.ItemAncillary {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.itemRepo.ListByType(ctx, t)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return items, nil
}

// UpdateItem edición parcial. El stock actual no se toca aquí.
func (uc *InventoryUseCase) UpdateItem(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.CategoryID != nil {
		if *in.CategoryID == "" {
			item.CategoryID = nil
		} else {
			item.CategoryID = in.CategoryID
		}
	}
	if in.SKU != nil {
		item.SKU = *in.SKU
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinimumStock != nil {
		if in.MinimumStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.MinimumStock = *in.MinimumStock
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitCost = *in.UnitCost
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// DeleteItem elimina un artículo por ID.
func (uc *InventoryUseCase) DeleteItem(ctx context.Context, id string) error {
	return uc.itemRepo.Delete(ctx, id)
}

// RegisterTransaction registra un movimiento IN u OUT y ajusta el stock del
// artículo en la misma transacción. Un OUT que dejaría el stock negativo
// falla con ErrInsufficientStock y no persiste nada.
func (uc *InventoryUseCase) RegisterTransaction(ctx context.Context, itemID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	txType := entity.TransactionType(in.TransactionType)
	if txType != entity.TransactionIn && txType != entity.TransactionOut {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	txDate := time.Now()
	if in.TransactionDate != "" {
		parsed, err := time.Parse(dateLayout, in.TransactionDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		txDate = parsed
	}

	txn := &entity.StockTransaction{
		ID:              uuid.New().String(),
		ItemID:          itemID,
		TransactionType: txType,
		Quantity:        in.Quantity,
		ReferenceType:   in.ReferenceType,
		Notes:           in.Notes,
		TransactionDate: txDate,
		CreatedAt:       time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		txnRepo repository.StockTransactionRepository,
	) error {
		item, err := itemRepo.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		delta := in.Quantity
		if txType == entity.TransactionOut {
			if item.CurrentStock.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
			delta = in.Quantity.Neg()
		}

		if err := txnRepo.Create(ctx, txn); err != nil {
			return err
		}
		return itemRepo.AdjustStock(ctx, itemID, delta)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(txn), nil
}

// ListTransactions historial de movimientos del artículo, más reciente primero.
func (uc *InventoryUseCase) ListTransactions(ctx context.Context, itemID string, limit int) ([]dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	list, err := uc.txnRepo.ListByItem(ctx, itemID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return items, nil
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		ItemType:     string(it.ItemType),
		CategoryID:   it.CategoryID,
		SKU:          it.SKU,
		Unit:         it.Unit,
		CurrentStock: it.CurrentStock,
		MinimumStock: it.MinimumStock,
		UnitCost:     it.UnitCost,
		Description:  it.Description,
		BelowMinimum: it.CurrentStock.LessThan(it.MinimumStock),
		CreatedAt:    it.CreatedAt,
	}
}

func toTransactionResponse(t *entity.StockTransaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:              t.ID,
		ItemID:          t.ItemID,
		TransactionType: string(t.TransactionType),
		Quantity:        t.Quantity,
		ReferenceType:   t.ReferenceType,
		Notes:           t.Notes,
		TransactionDate: t.TransactionDate.Format(dateLayout),
		CreatedAt:       t.CreatedAt,
	}
}
