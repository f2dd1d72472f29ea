package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

// EmployeeHandler maneja las peticiones HTTP para empleados (protegido).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), userIDPtr(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y role son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empleado"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Security     Bearer
// @Param        id  path  string  true  "ID del empleado"
// @Success      204
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), userIDPtr(c), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
