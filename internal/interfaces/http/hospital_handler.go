package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

// HospitalHandler maneja las peticiones HTTP para hospitales (protegido).
type HospitalHandler struct {
	uc *usecase.HospitalUseCase
}

// NewHospitalHandler construye el handler.
func NewHospitalHandler(uc *usecase.HospitalUseCase) *HospitalHandler {
	return &HospitalHandler{uc: uc}
}

// Create godoc
// @Summary      Crear hospital
// @Tags         hospitals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHospitalRequest  true  "Datos del hospital"
// @Success      201   {object}  dto.HospitalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hospitals [post]
func (h *HospitalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHospitalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), userIDPtr(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener hospital por ID
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del hospital"
// @Success      200  {object}  dto.HospitalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hospitals/{id} [get]
func (h *HospitalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "hospital no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar hospitales
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.HospitalResponse
// @Router       /api/hospitals [get]
func (h *HospitalHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar hospital
// @Tags         hospitals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del hospital"
// @Param        body  body  dto.UpdateHospitalRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.HospitalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hospitals/{id} [put]
func (h *HospitalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateHospitalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), userIDPtr(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "hospital no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar hospital
// @Tags         hospitals
// @Security     Bearer
// @Param        id  path  string  true  "ID del hospital"
// @Success      204
// @Router       /api/hospitals/{id} [delete]
func (h *HospitalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), userIDPtr(c), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
