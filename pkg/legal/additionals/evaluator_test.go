package additionals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateWorks(t *testing.T) {
	tests := []struct {
		name       string
		additional int64
		allowed    bool
		approvedBy string
	}{
		{"within 15 percent", 150_000, true, "Titular de la Entidad"},
		{"between 15 and 50 percent", 400_000, true, "Contraloría General de la República (autorización previa)"},
		{"above 50 percent", 600_000, false, ""},
	}

	original := decimal.NewFromInt(1_000_000)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Evaluate(original, decimal.NewFromInt(tt.additional), KindObras)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, r.Allowed)
			assert.Equal(t, tt.approvedBy, r.ApprovedBy)
			assert.Equal(t, "Art. 50 de la Ley 32069", r.Citation)
		})
	}
}

func TestEvaluateGoodsServices(t *testing.T) {
	original := decimal.NewFromInt(200_000)

	r, err := Evaluate(original, decimal.NewFromInt(50_000), KindBienesServicios)
	require.NoError(t, err)
	assert.True(t, r.Allowed)
	assert.Equal(t, "25", r.Percent.String())

	r, err = Evaluate(original, decimal.NewFromInt(60_000), KindBienesServicios)
	require.NoError(t, err)
	assert.False(t, r.Allowed)
}

func TestEvaluateDeductives(t *testing.T) {
	original := decimal.NewFromInt(100_000)

	r, err := Evaluate(original, decimal.NewFromInt(40_000), KindDeductivoVinculado)
	require.NoError(t, err)
	assert.True(t, r.Allowed)

	r, err = Evaluate(original, decimal.NewFromInt(40_000), KindDeductivoNoVinculado)
	require.NoError(t, err)
	assert.False(t, r.Allowed)
}

func TestEvaluateRejectsInvalidInput(t *testing.T) {
	_, err := Evaluate(decimal.Zero, decimal.NewFromInt(10), KindObras)
	assert.Error(t, err)

	_, err = Evaluate(decimal.NewFromInt(100), decimal.NewFromInt(-10), KindObras)
	assert.Error(t, err)

	_, err = Evaluate(decimal.NewFromInt(100), decimal.NewFromInt(10), "reduccion")
	assert.Error(t, err)
}

func TestProbeEvaluatesPercentage(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("¿Puedo aprobar un adicional de obra del 20%?")
	require.True(t, ok)
	assert.Contains(t, answer, "procedente")
	assert.Contains(t, answer, "Contraloría")
}

func TestProbeEvaluatesTwoAmounts(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("Adicional de obra por 150,000 sobre un contrato de 1,000,000")
	require.True(t, ok)
	assert.Contains(t, answer, "15%")
	assert.Contains(t, answer, "Titular de la Entidad")
}

func TestProbeDeclines(t *testing.T) {
	p := NewProbe()

	_, ok := p.Detect("¿Qué es una prestación adicional según el artículo 50?")
	assert.False(t, ok)

	_, ok = p.Detect("Quiero tramitar un adicional de obra")
	assert.False(t, ok)
}
