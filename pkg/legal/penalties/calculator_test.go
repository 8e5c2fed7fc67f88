package penalties

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactor(t *testing.T) {
	assert.True(t, Factor("obras", 30).Equal(decimal.NewFromFloat(0.40)))
	assert.True(t, Factor("servicios", 60).Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, Factor("servicios", 61).Equal(decimal.NewFromFloat(0.40)))
	assert.True(t, Factor("bienes", 90).Equal(decimal.NewFromFloat(0.40)))
}

func TestCalculate(t *testing.T) {
	// Contrato de S/ 500,000 a 90 días con 15 días de atraso:
	// diaria = (0.10 × 500,000) / (0.40 × 90) ≈ 1,388.89
	r, err := Calculate(decimal.NewFromInt(500_000), 90, 15, "servicios")
	require.NoError(t, err)

	assert.Equal(t, "1388.89", r.DailyPenalty.String())
	// 20,833.33, not 15 × 1,388.89: the rounding happens once, at the end.
	assert.Equal(t, "20833.33", r.Accumulated.String())
	assert.Equal(t, "50000", r.Cap.String())
	assert.False(t, r.CapReached)
	assert.False(t, r.WarrantsTermination)
}

func TestCalculateCapReached(t *testing.T) {
	// 40 días de atraso superan el tope del 10%.
	r, err := Calculate(decimal.NewFromInt(500_000), 90, 40, "servicios")
	require.NoError(t, err)

	assert.True(t, r.CapReached)
	assert.True(t, r.WarrantsTermination)
	assert.Equal(t, "50000", r.Accumulated.String())
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	_, err := Calculate(decimal.Zero, 90, 5, "servicios")
	assert.Error(t, err)

	_, err = Calculate(decimal.NewFromInt(100_000), 0, 5, "servicios")
	assert.Error(t, err)

	_, err = Calculate(decimal.NewFromInt(100_000), 90, -1, "servicios")
	assert.Error(t, err)

	_, err = Calculate(decimal.NewFromInt(100_000), 90, 5, "alquiler")
	assert.Error(t, err)
}

func TestProbeAnswersScenario(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("Penalidad por 15 días de atraso, contrato de S/ 500,000 a 90 días")
	require.True(t, ok)
	assert.Contains(t, answer, "S/ 1,388.89")
	assert.Contains(t, answer, "tope")
}

func TestProbeDeclinesConceptualQuestions(t *testing.T) {
	p := NewProbe()

	_, ok := p.Detect("¿Qué es la penalidad por mora y cómo se aplica el artículo 162?")
	assert.False(t, ok)

	// With fewer than three numbers the probe lets the query fall through.
	_, ok = p.Detect("Tengo una penalidad en un contrato de 500,000")
	assert.False(t, ok)
}
