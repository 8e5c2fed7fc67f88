package extensions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	matched := Classify("Las lluvias extraordinarias paralizaron la obra dos semanas", KindAmpliacion)
	require.Len(t, matched, 1)
	assert.Equal(t, "atraso_no_imputable", matched[0].Key)

	matched = Classify("El contratista abandonó la obra y no cumple pese al requerimiento", KindResolucion)
	require.NotEmpty(t, matched)
	assert.Equal(t, "incumplimiento_contratista", matched[0].Key)

	// Kind filters the catalog: an Entity delay is not a termination causal.
	assert.Empty(t, Classify("La entidad no entregó el terreno", KindResolucion))
}

func TestCausalsFor(t *testing.T) {
	assert.Len(t, CausalsFor(KindAmpliacion), 3)
	assert.Len(t, CausalsFor(KindResolucion), 3)
}

func TestFormatMarkdownComputesDeadline(t *testing.T) {
	matched := Classify("huelga de transportistas", KindAmpliacion)
	require.NotEmpty(t, matched)

	eventEnd := time.Date(2026, time.April, 29, 0, 0, 0, 0, time.UTC)
	md := FormatMarkdown(KindAmpliacion, matched, &eventEnd)

	// 8 días hábiles from 29/04/2026.
	assert.Contains(t, md, "12/05/2026")
	assert.Contains(t, md, "Art. 158 del Reglamento de la Ley 32069")
}

func TestFormatMarkdownListsCatalogOnNoMatch(t *testing.T) {
	md := FormatMarkdown(KindResolucion, nil, nil)
	assert.Contains(t, md, "Resolución de contrato")
	assert.Contains(t, md, "Acumulación del monto máximo de penalidad")
}

func TestProbe(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("Quiero una ampliación de plazo porque la lluvia paralizó la obra")
	require.True(t, ok)
	assert.Contains(t, answer, "Ampliación de plazo")
	assert.Contains(t, answer, "ruta crítica")

	answer, ok = p.Detect("¿Cómo puedo resolver el contrato? El contratista no cumple")
	require.True(t, ok)
	assert.Contains(t, answer, "Resolución de contrato")
	assert.Contains(t, answer, "carta notarial")

	_, ok = p.Detect("¿Qué es una ampliación de plazo?")
	assert.False(t, ok)

	_, ok = p.Detect("Necesito ayuda con mi contrato")
	assert.False(t, ok)
}
