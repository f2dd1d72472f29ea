package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

// ProductionHandler maneja las peticiones HTTP para registros de producción (protegido).
type ProductionHandler struct {
	uc *usecase.ProductionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro de producción
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "Datos del registro"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production-entries [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), userIDPtr(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date, shift y cantidades válidas son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro por ID
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.EntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-entries/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar registros de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        date                 query  string  false  "Fecha (YYYY-MM-DD)"
// @Param        shift                query  string  false  "Turno (A|B|C)"
// @Param        hospital_id          query  string  false  "ID de hospital"
// @Param        production_category  query  string  false  "Categoría de producción"
// @Success      200  {object}  dto.EntryListResponse
// @Router       /api/production-entries [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	var in dto.EntryFiltersRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar registro de producción
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateEntryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production-entries/{id} [put]
func (h *ProductionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), userIDPtr(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de producción
// @Tags         production
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Router       /api/production-entries/{id} [delete]
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), userIDPtr(c), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
