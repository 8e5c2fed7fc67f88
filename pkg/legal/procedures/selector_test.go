package procedures

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		objectType string
		procedure  string
		citation   string
	}{
		{"minor procurement at limit", 44_000, "bienes", "Contratación menor a 8 UIT", "Art. 55 de la Ley 32069"},
		{"goods below tender threshold", 50_000, "bienes", "Licitación Pública Abreviada", "Art. 54"},
		{"goods at tender threshold", 485_000, "bienes", "Licitación Pública", "Art. 53 de la Ley 32069"},
		{"services above threshold", 600_000, "servicios", "Concurso Público", "Art. 53 de la Ley 32069"},
		{"services intermediate", 200_000, "consultoria", "Concurso Público Abreviado", "Art. 54"},
		{"works intermediate", 2_000_000, "obras", "Licitación Pública Abreviada (Obras)", "Art. 54"},
		{"works at tender threshold", 5_000_000, "obras", "Licitación Pública (Obras)", "Art. 53 de la Ley 32069"},
		{"works international", 80_000_000, "obras", "Licitación Pública Internacional", "Art. 53 de la Ley 32069"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Select(decimal.NewFromFloat(tt.amount), tt.objectType)
			require.NoError(t, err)
			assert.Equal(t, tt.procedure, d.Procedure)
			assert.Equal(t, tt.citation, d.Citation)
		})
	}
}

func TestSelectRejectsInvalidInput(t *testing.T) {
	_, err := Select(decimal.NewFromInt(-1), "bienes")
	assert.Error(t, err)

	_, err = Select(decimal.NewFromInt(50_000), "suministros")
	assert.Error(t, err)
}

func TestSelectOffersPriceComparisonAlternative(t *testing.T) {
	d, err := Select(decimal.NewFromInt(90_000), "bienes")
	require.NoError(t, err)
	require.NotEmpty(t, d.Alternatives)
	assert.Contains(t, d.Alternatives[0], "Comparación de Precios")

	d, err = Select(decimal.NewFromInt(150_000), "bienes")
	require.NoError(t, err)
	for _, alt := range d.Alternatives {
		assert.NotContains(t, alt, "Comparación de Precios")
	}
}

func TestProbeAnswersScenario(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("¿Qué procedimiento corresponde para bienes por S/ 50,000?")
	require.True(t, ok)
	assert.Contains(t, answer, "Licitación Pública Abreviada")
	assert.Contains(t, answer, "Art. 54")
}

func TestProbeDeclines(t *testing.T) {
	p := NewProbe()

	// Conceptual questions bypass the calculator even with a number present.
	_, ok := p.Detect("¿Qué es la licitación pública según el artículo 53? Por ejemplo 50,000")
	assert.False(t, ok)

	// No amount: nothing to compute.
	_, ok = p.Detect("¿Qué procedimiento corresponde para la compra de laptops?")
	assert.False(t, ok)
}

func TestFormatMarkdownIncludesRange(t *testing.T) {
	amount := decimal.NewFromInt(50_000)
	d, err := Select(amount, "bienes")
	require.NoError(t, err)

	md := FormatMarkdown(amount, "bienes", d)
	assert.True(t, strings.Contains(md, "S/ 50,000.00"))
	assert.True(t, strings.Contains(md, d.Procedure))
}
