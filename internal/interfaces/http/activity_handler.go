package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// ActivityHandler expone la bitácora de actividad (protegido).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Recent godoc
// @Summary      Actividad reciente
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200    {object}  dto.ActivityListResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	out, err := h.uc.GetRecent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
