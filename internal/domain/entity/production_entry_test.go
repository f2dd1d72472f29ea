package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

func TestComputeEfficiency(t *testing.T) {
	cases := []struct {
		name    string
		planned int64
		actual  int64
		want    string
	}{
		{"razón exacta", 100, 90, "90"},
		{"cien por ciento", 50, 50, "100"},
		{"sobreproducción supera el cien", 50, 60, "120"},
		{"redondeo a dos decimales", 3, 1, "33.33"},
		{"redondeo hacia arriba", 3, 2, "66.67"},
		{"planeado cero devuelve cero", 0, 40, "0"},
		{"planeado negativo devuelve cero", -5, 40, "0"},
		{"actual cero", 100, 0, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := entity.ComputeEfficiency(tc.planned, tc.actual)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"esperado %s, obtenido %s", tc.want, got)
		})
	}
}

func TestShiftValid(t *testing.T) {
	assert.True(t, entity.ShiftA.Valid())
	assert.True(t, entity.ShiftB.Valid())
	assert.True(t, entity.ShiftC.Valid())
	assert.False(t, entity.Shift("D").Valid())
	assert.False(t, entity.Shift("").Valid())
}

func TestEntryStatusValid(t *testing.T) {
	assert.True(t, entity.StatusDraft.Valid())
	assert.True(t, entity.StatusCompleted.Valid())
	assert.True(t, entity.StatusApproved.Valid())
	assert.False(t, entity.EntryStatus("PENDING").Valid())
}
