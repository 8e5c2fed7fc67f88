package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmounts(t *testing.T) {
	amounts := ExtractAmounts("Contrato de S/ 500,000 a 90 días con 15 días de atraso")
	require.Len(t, amounts, 3)
	assert.Equal(t, 500000.0, amounts[0])
	assert.Equal(t, 90.0, amounts[1])
	assert.Equal(t, 15.0, amounts[2])
}

func TestExtractAmountsMasksDates(t *testing.T) {
	// The date must not leak day/month/year as amounts.
	amounts := ExtractAmounts("Me notificaron el 29/04/2026 una penalidad de S/ 1,500.50")
	require.Len(t, amounts, 1)
	assert.Equal(t, 1500.50, amounts[0])

	assert.Empty(t, ExtractAmounts("Me notificaron el 2026-04-29"))
}

func TestExtractDates(t *testing.T) {
	dates := ExtractDates("Notificado el 29/04/2026, consentido el 2026-05-15")
	require.Len(t, dates, 2)
	assert.Equal(t, "29/04/2026", dates[0])
	assert.Equal(t, "2026-05-15", dates[1])

	assert.Empty(t, ExtractDates("sin fechas"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "que procedimiento corresponde", Normalize("  Qué   PROCEDIMIENTO\tcorresponde "))
}

func TestBypassed(t *testing.T) {
	bypass := []string{"que es", "explica"}
	assert.True(t, Bypassed("que es la penalidad", bypass))
	assert.False(t, Bypassed("calcula la penalidad", bypass))
}

func TestFuncAdapter(t *testing.T) {
	p := Func{ProbeName: "demo", DetectFn: func(string) (string, bool) { return "ok", true }}
	assert.Equal(t, "demo", p.Name())

	answer, ok := p.Detect("cualquier cosa")
	assert.True(t, ok)
	assert.Equal(t, "ok", answer)
}
