package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAppendAndHistory(t *testing.T) {
	s := NewSession("abc")
	assert.Equal(t, 0, s.Len())

	s.Append("user", "¿Cuál es el tope de penalidad?")
	s.Append("model", "El 10% del monto contractual vigente.")

	require.Equal(t, 2, s.Len())
	history := s.History()
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "model", history[1].Role)
}

func TestSessionHistoryReturnsCopy(t *testing.T) {
	s := NewSession("abc")
	s.Append("user", "hola")

	history := s.History()
	history[0].Content = "mutated"

	assert.Equal(t, "hola", s.History()[0].Content)
}

func TestSessionConcurrentAppend(t *testing.T) {
	s := NewSession("abc")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Append("user", fmt.Sprintf("mensaje %d", n))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
