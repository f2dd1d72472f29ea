package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/analytics"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

// AnalyticsHandler expone el motor de agregación (protegido).
type AnalyticsHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func analyticsError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Summary godoc
// @Summary      Resumen de producción del período
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD (por defecto hace 6 días)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.ProductionSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetProductionSummary(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(out)
}

// Weekly godoc
// @Summary      Serie de los últimos 7 días
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WeeklyPointDTO
// @Router       /api/analytics/weekly [get]
func (h *AnalyticsHandler) Weekly(c *fiber.Ctx) error {
	out, err := h.uc.GetWeeklyStats(c.Context())
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(out)
}

// ByCategory godoc
// @Summary      Producción agrupada por categoría
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.GroupStatDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/by-category [get]
func (h *AnalyticsHandler) ByCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetStatsByCategory(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(out)
}

// Comparative godoc
// @Summary      Comparativo período contra período anterior
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ComparativeSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/comparative [get]
func (h *AnalyticsHandler) Comparative(c *fiber.Ctx) error {
	out, err := h.uc.GetComparativeSummary(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(out)
}

// Rankings godoc
// @Summary      Ranking de empleados del período
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.EmployeeRankingDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/rankings [get]
func (h *AnalyticsHandler) Rankings(c *fiber.Ctx) error {
	out, err := h.uc.GetEmployeeRankings(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(out)
}

// DeepReport godoc
// @Summary      Reporte profundo: desgloses por turno, hospital y producto
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.DeepAnalysisReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/deep-report [get]
func (h *AnalyticsHandler) DeepReport(c *fiber.Ctx) error {
	out, err := h.uc.GetDeepAnalysisReport(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return analyticsError(c, err)
	}
	return c.JSON(out)
}

// Insights godoc
// @Summary      Mensajes heurísticos del período
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.InsightsDTO
// @Router       /api/analytics/insights [get]
func (h *AnalyticsHandler) Insights(c *fiber.Ctx) error {
	insights := h.uc.GetInsights(c.Context(), c.Query("start_date"), c.Query("end_date"))
	return c.JSON(dto.InsightsDTO{Insights: insights})
}
