// Package pdf implementa la generación del reporte de producción en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Período (start — end)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: planeado / producido / rechazado / eficiencia      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producción por categoría                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ranking de empleados                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator genera el reporte de producción usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProductionReport genera el PDF del período y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProductionReport(
	_ context.Context,
	period dto.PeriodDTO,
	summary *dto.ProductionSummaryDTO,
	byCategory []dto.GroupStatDTO,
	rankings []dto.EmployeeRankingDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Producción", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("PRODUCCIÓN POR CATEGORÍA"))
	m.AddRows(categoryHeaderRow())
	for _, r := range categoryRows(byCategory) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("RANKING DE EMPLEADOS"))
	m.AddRows(rankingHeaderRow())
	for _, r := range rankingRows(rankings) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período del reporte (der).
func headerRow(period dto.PeriodDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Planta de manufactura hospitalaria", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period.StartDate+" — "+period.EndDate, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: los totales y promedios del período en una banda.
func summaryRow(s *dto.ProductionSummaryDTO) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(15).Add(
		metric("PLANEADO", fmt.Sprintf("%d", s.TotalPlanned)),
		metric("PRODUCIDO", fmt.Sprintf("%d", s.TotalActual)),
		metric("RECHAZADO", fmt.Sprintf("%d", s.TotalRejected)),
		metric("EFICIENCIA PROM.", s.AverageEfficiency.StringFixed(2)+"%"),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// categoryHeaderRow: cabecera de la tabla por categoría.
func categoryHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Categoría", 4, align.Left),
		h("Planeado", 2, align.Right),
		h("Producido", 2, align.Right),
		h("Rechazado", 2, align.Right),
		h("Eficiencia", 2, align.Right),
	)
}

func categoryRows(groups []dto.GroupStatDTO) []core.Row {
	result := make([]core.Row, 0, len(groups))
	for _, g := range groups {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(g.Name, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", g.Planned), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", g.Actual), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", g.Rejected), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(g.Efficiency.StringFixed(1)+"%", props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

// rankingHeaderRow: cabecera de la tabla de ranking.
func rankingHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("#", 1, align.Center),
		h("Empleado", 4, align.Left),
		h("Rol", 2, align.Left),
		h("Producido", 2, align.Right),
		h("Turnos", 1, align.Right),
		h("Eficiencia", 2, align.Right),
	)
}

func rankingRows(rankings []dto.EmployeeRankingDTO) []core.Row {
	result := make([]core.Row, 0, len(rankings))
	for _, r := range rankings {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Rank), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(r.Name, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(2).Add(text.New(r.Role, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", r.TotalProduction), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.ShiftsWorked), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(r.AverageEfficiency.StringFixed(1)+"%", props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}
