package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// DashboardHandler expone la composición del tablero (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Vista principal del tablero (últimos 7 días)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
