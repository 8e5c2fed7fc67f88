package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameInstance(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("s1")
	a.Append("user", "hola")

	b := repo.GetOrCreate("s1")
	assert.Same(t, a, b)
	assert.Equal(t, 1, b.Len())

	// A different ID gets its own history.
	c := repo.GetOrCreate("s2")
	assert.Equal(t, 0, c.Len())
}

func TestGetMiss(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("desconocida")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	repo := NewSessionRepository()

	repo.GetOrCreate("s1").Append("user", "hola")
	repo.Delete("s1")

	_, found := repo.Get("s1")
	require.False(t, found)
	assert.Equal(t, 0, repo.GetOrCreate("s1").Len())
}
