// Package router implements the hybrid conversation engine: rapid lookup,
// deterministic calculator probes, retrieval context and the generative
// fallback, strictly in that order.
package router

import (
	"context"
	"fmt"
	"strings"

	"asesor-legal-be/internal/constant"
	"asesor-legal-be/internal/pkg/logger"
	"asesor-legal-be/internal/repository/memory"
	"asesor-legal-be/pkg/legal/additionals"
	"asesor-legal-be/pkg/legal/appeals"
	"asesor-legal-be/pkg/legal/deadlines"
	"asesor-legal-be/pkg/legal/evaluation"
	"asesor-legal-be/pkg/legal/extensions"
	"asesor-legal-be/pkg/legal/impediments"
	"asesor-legal-be/pkg/legal/nullity"
	"asesor-legal-be/pkg/legal/penalties"
	"asesor-legal-be/pkg/legal/probe"
	"asesor-legal-be/pkg/legal/procedures"
	"asesor-legal-be/pkg/legal/rapid"
	"asesor-legal-be/pkg/legal/vices"
	"asesor-legal-be/pkg/llm"
	"asesor-legal-be/pkg/rag"
	"asesor-legal-be/pkg/store"
)

// Probes returns the deterministic calculators in their fixed priority order.
// The first probe that answers short-circuits the rest of the pipeline.
func Probes() []probe.Probe {
	return []probe.Probe{
		procedures.NewProbe(),
		penalties.NewProbe(),
		deadlines.NewProbe(),
		appeals.NewProbe(),
		additionals.NewProbe(),
		impediments.NewProbe(),
		nullity.NewProbe(),
		extensions.NewProbe(),
		vices.NewProbe(),
		evaluation.NewProbe(),
	}
}

// Engine answers user messages. Answer never returns an error: every failure
// mode degrades to a user-visible Markdown advisory.
type Engine struct {
	probes    []probe.Probe
	retriever *rag.Retriever
	provider  llm.LLMProvider
	sessions  *memory.SessionRepository
	logger    logger.ILogger
	topK      int
}

func NewEngine(
	probes []probe.Probe,
	retriever *rag.Retriever,
	provider llm.LLMProvider,
	sessions *memory.SessionRepository,
	log logger.ILogger,
	topK int,
) *Engine {
	return &Engine{
		probes:    probes,
		retriever: retriever,
		provider:  provider,
		sessions:  sessions,
		logger:    log,
		topK:      topK,
	}
}

const (
	errNoCredential = "⚠️ **Servicio de IA no configurado.** Falta la credencial del modelo generativo " +
		"(GOOGLE_GEMINI_API_KEY). Las calculadoras determinísticas siguen disponibles."
	errQuota = "⚠️ **Cuota del modelo agotada.** Intenta nuevamente en unos minutos; " +
		"mientras tanto las calculadoras determinísticas siguen disponibles."
	errGeneric = "⚠️ Ocurrió un error al procesar tu consulta. Intenta reformularla o " +
		"consulta una de las funciones del menú (escribe \"ayuda\")."
)

// Answer routes one message through the layered pipeline and appends the
// exchange to the session history.
func (e *Engine) Answer(ctx context.Context, message, sessionID string) string {
	reply := e.resolve(ctx, message, sessionID)

	session := e.sessions.GetOrCreate(sessionID)
	session.Append("user", message)
	session.Append("model", reply)

	return reply
}

func (e *Engine) resolve(ctx context.Context, message, sessionID string) string {
	// 1. Rapid lookup.
	if answer, ok := rapid.Lookup(message); ok {
		return answer
	}

	// 2. Calculator probes, fixed priority order.
	for _, p := range e.probes {
		if answer, ok := p.Detect(message); ok {
			e.logger.Info("router", "probe answered", map[string]interface{}{
				"probe":   p.Name(),
				"session": sessionID,
			})
			return answer
		}
	}

	// 3+4. Retrieval context and generative fallback.
	return e.generate(ctx, message, sessionID)
}

func (e *Engine) generate(ctx context.Context, message, sessionID string) string {
	if e.provider == nil {
		return errNoCredential
	}

	// Queries that reach this layer feed the rapid-table curation backlog.
	e.logger.Info("learning", "generative fallback", map[string]interface{}{
		"session": sessionID,
		"query":   message,
	})

	prompt := message
	if e.retriever != nil {
		fragments := e.retriever.Search(ctx, message, e.topK)
		if len(fragments) > 0 {
			prompt = fmt.Sprintf(constant.AdvisorContextPromptFormat,
				strings.Join(fragments, "\n\n---\n\n"), message)
		}
	}

	// Rapid and probe turns also land in the history, so emptiness is not a
	// reliable first-turn signal; seed whenever no system message exists yet.
	session := e.sessions.GetOrCreate(sessionID)
	if !hasSystemTurn(session) {
		session.Append("system", constant.AdvisorSystemPrompt)
	}
	history := append(session.History(), llm.Message{Role: "user", Content: prompt})

	reply, err := e.provider.Chat(ctx, history)
	if err != nil {
		e.logger.Error("router", "generative call failed", map[string]interface{}{
			"session": sessionID,
			"error":   err.Error(),
		})
		return classifyProviderError(err)
	}
	return reply
}

func hasSystemTurn(session *store.Session) bool {
	for _, m := range session.History() {
		if m.Role == "system" {
			return true
		}
	}
	return false
}

// classifyProviderError maps provider failures to user-visible advisories.
func classifyProviderError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") ||
		strings.Contains(msg, "status 401") ||
		strings.Contains(msg, "status 403") ||
		strings.Contains(msg, "permission"):
		return errNoCredential
	case strings.Contains(msg, "quota") ||
		strings.Contains(msg, "status 429") ||
		strings.Contains(msg, "resource_exhausted"):
		return errQuota
	default:
		return errGeneric
	}
}

// ClearSession drops the whole history for a session atomically.
func (e *Engine) ClearSession(sessionID string) {
	e.sessions.Delete(sessionID)
}
