package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
)

func TestGenerateProductionReport_ProduceUnPDF(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	out, err := gen.GenerateProductionReport(
		context.Background(),
		dto.PeriodDTO{StartDate: "2025-03-09", EndDate: "2025-03-15"},
		&dto.ProductionSummaryDTO{
			TotalPlanned:      150,
			TotalActual:       140,
			TotalRejected:     5,
			AverageEfficiency: decimal.NewFromInt(95),
			EntriesCount:      2,
		},
		[]dto.GroupStatDTO{
			{Name: "NUTRICION", Planned: 100, Actual: 95, Count: 1, Efficiency: decimal.NewFromInt(95)},
		},
		[]dto.EmployeeRankingDTO{
			{Rank: 1, Name: "Carlos Pérez", Role: "SUPERVISOR", TotalProduction: 95, ShiftsWorked: 1, AverageEfficiency: decimal.NewFromInt(95)},
		},
	)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "los bytes deben ser un documento PDF")
}

func TestGenerateProductionReport_PeriodoSinDatos(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	out, err := gen.GenerateProductionReport(
		context.Background(),
		dto.PeriodDTO{StartDate: "2025-03-01", EndDate: "2025-03-07"},
		&dto.ProductionSummaryDTO{},
		nil,
		nil,
	)
	require.NoError(t, err)
	assert.NotEmpty(t, out, "un período vacío igual produce documento")
}
