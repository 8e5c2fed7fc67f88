package impediments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRole(t *testing.T) {
	// Currently serving.
	v, err := VerifyRole("alcalde", -1)
	require.NoError(t, err)
	assert.True(t, v.Impeded)
	assert.True(t, v.CurrentlyServes)

	// Ceased 6 months ago: 6 of the 12 post-term months remain.
	v, err = VerifyRole("regidor", 6)
	require.NoError(t, err)
	assert.True(t, v.Impeded)
	assert.Equal(t, 6, v.RemainingMonths)

	// Ceased 13 months ago: impediment expired.
	v, err = VerifyRole("ministro", 13)
	require.NoError(t, err)
	assert.False(t, v.Impeded)
}

func TestVerifyRoleResolvesFreeText(t *testing.T) {
	v, err := VerifyRole("fue alcalde de la municipalidad", -1)
	require.NoError(t, err)
	assert.Equal(t, "alcalde", v.Impediment.RoleKey)

	_, err = VerifyRole("astronauta", -1)
	assert.Error(t, err)
}

func TestVerifyKinship(t *testing.T) {
	// Cuñado is second degree by affinity: impeded.
	v, err := VerifyKinship("cuñado", "alcalde")
	require.NoError(t, err)
	assert.True(t, v.Impeded)
	assert.Equal(t, 2, v.Kinship.Degree)
	assert.Contains(t, v.Reason, "Art. 11 inc. k")

	// Primo is fourth degree: outside the rule.
	v, err = VerifyKinship("primo", "alcalde")
	require.NoError(t, err)
	assert.False(t, v.Impeded)

	_, err = VerifyKinship("vecino", "alcalde")
	assert.Error(t, err)
}

func TestProbeAnswersKinshipScenario(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("¿El cuñado de un alcalde puede contratar con el Estado?")
	require.True(t, ok)
	assert.Contains(t, answer, "IMPEDIDO")
	assert.Contains(t, answer, "Art. 11 inc. k")
	assert.Contains(t, answer, "cuñado")
}

func TestProbeAnswersRoleWithCease(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("Un regidor que cesó hace 6 meses, ¿está impedido de contratar?")
	require.True(t, ok)
	assert.Contains(t, answer, "IMPEDIDO")
	assert.Contains(t, answer, "6")
}

func TestProbeDeclines(t *testing.T) {
	p := NewProbe()

	_, ok := p.Detect("¿Cuáles son los impedimentos del artículo 11?")
	assert.False(t, ok)

	_, ok = p.Detect("¿Mi empresa puede contratar con el Estado?")
	assert.False(t, ok)
}
