package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

// ReportHandler exporta el reporte de producción en PDF (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ProductionPDF godoc
// @Summary      Exportar reporte de producción en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/production.pdf [get]
func (h *ReportHandler) ProductionPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GeneratePDF(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="reporte-produccion.pdf"`)
	return c.Send(pdfBytes)
}
