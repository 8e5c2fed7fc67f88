package router

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asesor-legal-be/internal/repository/memory"
	"asesor-legal-be/pkg/llm"
)

type fakeProvider struct {
	reply       string
	err         error
	lastHistory []llm.Message
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.lastHistory = history
	return f.reply, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}})
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newEngine(provider llm.LLMProvider) (*Engine, *memory.SessionRepository) {
	sessions := memory.NewSessionRepository()
	return NewEngine(Probes(), nil, provider, sessions, nopLogger{}, 15), sessions
}

func TestProbesOrder(t *testing.T) {
	names := make([]string, 0, len(Probes()))
	for _, p := range Probes() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{
		"procedures", "penalties", "deadlines", "appeals", "additionals",
		"impediments", "nullity", "extensions", "observations", "evaluation",
	}, names)
}

func TestAnswerRapidLookup(t *testing.T) {
	e, sessions := newEngine(nil)

	answer := e.Answer(context.Background(), "hola", "s1")
	assert.Contains(t, answer, "Ley 32069")

	history := sessions.GetOrCreate("s1").History()
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "model", history[1].Role)
}

func TestAnswerProbeShortCircuit(t *testing.T) {
	provider := &fakeProvider{reply: "no debería llamarse"}
	e, _ := newEngine(provider)

	answer := e.Answer(context.Background(),
		"¿El cuñado de un alcalde puede contratar con el Estado?", "s1")
	assert.Contains(t, answer, "IMPEDIDO")
	assert.Nil(t, provider.lastHistory)
}

func TestAnswerWithoutProvider(t *testing.T) {
	e, _ := newEngine(nil)

	answer := e.Answer(context.Background(), "¿Qué opinas de la nueva directiva del OECE?", "s1")
	assert.Contains(t, answer, "Servicio de IA no configurado")
}

func TestAnswerGenerativeSeedsSystemPrompt(t *testing.T) {
	provider := &fakeProvider{reply: "respuesta generada"}
	e, sessions := newEngine(provider)

	answer := e.Answer(context.Background(), "¿Qué opinas de la nueva directiva del OECE?", "s1")
	assert.Equal(t, "respuesta generada", answer)

	// First generative turn seeds the system prompt before the user message.
	require.NotEmpty(t, provider.lastHistory)
	assert.Equal(t, "system", provider.lastHistory[0].Role)

	history := sessions.GetOrCreate("s1").History()
	require.Len(t, history, 3)
	assert.Equal(t, "system", history[0].Role)
	assert.Equal(t, "user", history[1].Role)
	assert.Equal(t, "model", history[2].Role)
}

func TestAnswerSeedsSystemPromptAfterRapidTurn(t *testing.T) {
	provider := &fakeProvider{reply: "respuesta generada"}
	e, sessions := newEngine(provider)

	// A greeting populates the history without touching the generative layer.
	e.Answer(context.Background(), "hola", "s1")
	require.Equal(t, 2, sessions.GetOrCreate("s1").Len())

	e.Answer(context.Background(), "¿Qué opinas de la nueva directiva del OECE?", "s1")

	var seeded bool
	for _, m := range provider.lastHistory {
		if m.Role == "system" {
			seeded = true
		}
	}
	assert.True(t, seeded)

	// The prompt is seeded once, not on every generative turn.
	e.Answer(context.Background(), "¿Y sobre los convenios marco?", "s1")
	count := 0
	for _, m := range sessions.GetOrCreate("s1").History() {
		if m.Role == "system" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAnswerClassifiesProviderErrors(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("google: API key not valid"), "Servicio de IA no configurado"},
		{fmt.Errorf("unexpected status 429: RESOURCE_EXHAUSTED"), "Cuota del modelo agotada"},
		{fmt.Errorf("connection reset by peer"), "Ocurrió un error"},
	}

	for _, tc := range cases {
		e, _ := newEngine(&fakeProvider{err: tc.err})
		answer := e.Answer(context.Background(), "consulta libre sobre la directiva", "s1")
		assert.Contains(t, answer, tc.want)
	}
}

func TestClearSession(t *testing.T) {
	e, sessions := newEngine(nil)

	e.Answer(context.Background(), "hola", "s1")
	require.Equal(t, 2, sessions.GetOrCreate("s1").Len())

	e.ClearSession("s1")
	assert.Equal(t, 0, sessions.GetOrCreate("s1").Len())
}
