package vices

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asesor-legal-be/pkg/legal/catalog"
)

const basesExperiencia = "Las bases exigen experiencia mínima de S/ 900,000. " +
	"El valor de referencia asciende a S/ 500,000."

func TestExtractReferenceValue(t *testing.T) {
	rv := ExtractReferenceValue(basesExperiencia)
	assert.Equal(t, "500000", rv.String())

	assert.True(t, ExtractReferenceValue("texto sin montos").IsZero())
}

func TestDetectByRulesBrand(t *testing.T) {
	vices := DetectByRules("El equipo debe ser marca Epson modelo X500", decimal.Zero)
	require.Len(t, vices, 1)
	assert.Equal(t, catalog.ViceMarcaSinEquivalente, vices[0].Type)
	assert.Equal(t, SeverityAlta, vices[0].Severity)

	// The "o equivalente" formula cures the brand reference.
	vices = DetectByRules("El equipo debe ser marca Epson o equivalente", decimal.Zero)
	assert.Empty(t, vices)
}

func TestDetectByRulesTermAndPenalty(t *testing.T) {
	vices := DetectByRules("El plazo de ejecución es de 10 días. Se aplicará una penalidad diaria del 2%", decimal.Zero)
	require.Len(t, vices, 2)

	assert.Equal(t, catalog.VicePlazoInsuficiente, vices[0].Type)
	assert.Equal(t, SeverityAlta, vices[0].Severity)

	assert.Equal(t, catalog.VicePenalidadExcesiva, vices[1].Type)
	assert.True(t, vices[1].LimitExceeded)
}

func TestValidateExperienceRatio(t *testing.T) {
	detected := Detect(basesExperiencia, nil, ExtractReferenceValue(basesExperiencia))
	require.Len(t, detected, 1)

	v := detected[0]
	assert.Equal(t, catalog.ViceExperienciaExcesiva, v.Type)
	assert.Equal(t, SeverityAlta, v.Severity)
	assert.True(t, v.LimitExceeded)
	assert.True(t, v.ValidatedByRules)
	assert.Equal(t, "1.8", v.Extra["ratio"])
	assert.GreaterOrEqual(t, v.Probability, 0.75)
	assert.LessOrEqual(t, v.Probability, 0.95)
}

func TestParseAICandidates(t *testing.T) {
	analysis := map[string]any{
		"posibles_vicios": []any{
			map[string]any{"tipo": "plazo irreal", "descripcion": "plazo incompatible", "severidad": "ALTA"},
			map[string]any{"tipo": "otro hallazgo", "descripcion": "requisito dudoso"},
			"malformed entry",
		},
	}

	candidates := ParseAICandidates(analysis)
	require.Len(t, candidates, 2)
	assert.Equal(t, catalog.VicePlazoInsuficiente, candidates[0].Type)
	assert.Equal(t, SeverityAlta, candidates[0].Severity)
	assert.Equal(t, SeverityMedia, candidates[1].Severity)

	assert.Nil(t, ParseAICandidates(nil))
	assert.Nil(t, ParseAICandidates(map[string]any{"otra_clave": 1}))
}

func TestFuseRulesWinOnOverlap(t *testing.T) {
	rules := []DetectedVice{{Type: catalog.VicePlazoInsuficiente, Source: SourceRules}}
	ai := []DetectedVice{
		{Type: catalog.VicePlazoInsuficiente, Source: SourceAI},
		{Type: catalog.ViceRequisitoRestrictivo, Source: SourceAI},
	}

	fused := Fuse(rules, ai)
	require.Len(t, fused, 2)
	assert.Equal(t, SourceRules, fused[0].Source)
	assert.Equal(t, catalog.ViceRequisitoRestrictivo, fused[1].Type)
}

func TestScoreMonotonicity(t *testing.T) {
	base := DetectedVice{Severity: SeverityMedia, Source: SourceAI}
	validated := base
	validated.ValidatedByRules = true

	assert.Greater(t, score(validated), score(base))

	exceeded := validated
	exceeded.LimitExceeded = true
	assert.Greater(t, score(exceeded), score(validated))

	// Bounded regardless of how many factors stack.
	maxed := DetectedVice{
		Severity: SeverityAlta, Source: SourceRules,
		ValidatedByRules: true, LimitExceeded: true,
		Jurisprudence: []string{"Resolución 0874-2023-TCE-S1"},
	}
	assert.LessOrEqual(t, score(maxed), 0.95)
}
