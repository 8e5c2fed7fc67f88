package vices

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeExperienceScenario(t *testing.T) {
	report := Analyze(basesExperiencia, nil, ExtractReferenceValue(basesExperiencia))

	require.Len(t, report.Observations, 1)
	obs := report.Observations[0]
	// The proposed wording caps experience at 80% of the reference value.
	assert.Contains(t, obs.Proposal.DebeDecir, "S/ 400,000.00")
	assert.NotEmpty(t, obs.Jurisprudence)

	assert.Equal(t, 1, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.HighViability)
	assert.True(t, report.Summary.RecommendFiling)
}

func TestSynthesizeObservationsSkipsLowProbability(t *testing.T) {
	detected := []DetectedVice{
		{Type: "x", Description: "hallazgo débil", Probability: 0.35},
		{Type: "y", Description: "hallazgo firme", Probability: 0.80},
	}

	obs := SynthesizeObservations(detected, decimal.Zero)
	require.Len(t, obs, 1)
	assert.Equal(t, 1, obs[0].Number)
	assert.Equal(t, "hallazgo firme", obs[0].Foundation)
}

func TestSummarizeTiers(t *testing.T) {
	s := Summarize([]DetectedVice{
		{Probability: 0.80},
		{Probability: 0.65},
		{Probability: 0.40},
	})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.HighViability)
	assert.Equal(t, 1, s.MediumViability)
	assert.Equal(t, 1, s.LowViability)
	assert.True(t, s.RecommendFiling)

	s = Summarize([]DetectedVice{{Probability: 0.65}})
	assert.False(t, s.RecommendFiling)
}

func TestFormatMarkdownFullReport(t *testing.T) {
	report := Analyze(basesExperiencia, nil, ExtractReferenceValue(basesExperiencia))

	md := FormatMarkdown(report)
	assert.Contains(t, md, "ALTA")
	assert.Contains(t, md, "Observaciones sugeridas")
	assert.Contains(t, md, "DEBE DECIR")
	assert.Contains(t, md, "presentar observaciones")
}

func TestProbe(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("Revisa estas bases: exigen experiencia mínima de S/ 900,000 " +
		"y el valor de referencia es S/ 500,000. ¿Hay vicios?")
	require.True(t, ok)
	assert.Contains(t, answer, "1.8")

	_, ok = p.Detect("¿Qué es un vicio en las bases?")
	assert.False(t, ok)

	// Trigger without detectable findings declines.
	_, ok = p.Detect("¿Estas bases tienen vicios? El objeto es la compra de útiles")
	assert.False(t, ok)
}
