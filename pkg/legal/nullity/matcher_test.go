package nullity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCausals(t *testing.T) {
	matches := MatchCausals("Detectaron un certificado falsificado y además hubo fraccionamiento para eludir la licitación")
	require.Len(t, matches, 2)

	// Catalog order: trasgresión (2) before documentación falsa (3).
	assert.Equal(t, 2, matches[0].Causal.Ordinal)
	assert.Contains(t, matches[0].MatchedKeywords, "fraccionamiento")
	assert.Equal(t, 3, matches[1].Causal.Ordinal)
	assert.Contains(t, matches[1].MatchedKeywords, "falsificado")
}

func TestMatchCausalsNoHit(t *testing.T) {
	assert.Empty(t, MatchCausals("El contrato se ejecutó sin incidencias"))
}

func TestComputePrescription(t *testing.T) {
	consent := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	p := ComputePrescription(consent, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2027, time.March, 10, 0, 0, 0, 0, time.UTC), p.Deadline)
	assert.False(t, p.Expired)

	p = ComputePrescription(consent, time.Date(2027, time.March, 11, 0, 0, 0, 0, time.UTC))
	assert.True(t, p.Expired)
}

func TestFormatMarkdownListsCausalsOnNoMatch(t *testing.T) {
	md := FormatMarkdown(nil, nil)
	assert.Contains(t, md, "No se identificó ninguna causal")
	assert.Contains(t, md, "Documentación falsa o inexacta")
}

func TestProbe(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("¿Se puede declarar la nulidad? Presentaron un documento falso después de la buena pro")
	require.True(t, ok)
	assert.Contains(t, answer, "Causal 3")

	// Trigger without a recognizable causal falls through to retrieval.
	_, ok = p.Detect("¿Procede la nulidad en este caso?")
	assert.False(t, ok)

	_, ok = p.Detect("¿Qué es la nulidad de oficio?")
	assert.False(t, ok)
}
