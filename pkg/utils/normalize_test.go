package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAccents(t *testing.T) {
	assert.Equal(t, "articulo", StripAccents("artículo"))
	assert.Equal(t, "penalidad", StripAccents("penalidad"))
	assert.Equal(t, "cunado", StripAccents("cuñado"))
	assert.Equal(t, "EJECUCION", StripAccents("EJECUCIÓN"))
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "que procedimiento corresponde",
		NormalizeQuery("  Qué   PROCEDIMIENTO\n corresponde "))
	assert.Equal(t, "", NormalizeQuery("   "))
}
