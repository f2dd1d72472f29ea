package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

// InventoryHandler maneja artículos de inventario y movimientos de stock (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreateItem godoc
// @Summary      Crear artículo de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateItem(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name e item_type válidos son requeridos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "SKU ya existe"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetItem godoc
// @Summary      Obtener artículo por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.uc.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar artículos por tipo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  true  "RAW_MATERIAL | ANCILLARY"
// @Success      200   {array}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Context(), c.Query("type"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser RAW_MATERIAL o ANCILLARY"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar artículo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar artículo
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID del artículo"
// @Success      204
// @Router       /api/inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateTransaction godoc
// @Summary      Registrar movimiento de stock (IN/OUT)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.CreateTransactionRequest  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/transactions [post]
func (h *InventoryHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterTransaction(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "transaction_type y quantity válidos son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Historial de movimientos de un artículo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del artículo"
// @Param        limit  query  int     false  "Límite"  default(50)
// @Success      200    {array}  dto.TransactionResponse
// @Router       /api/inventory/items/{id}/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	out, err := h.uc.ListTransactions(c.Context(), c.Params("id"), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
