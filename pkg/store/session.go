package store

import (
	"sync"

	"asesor-legal-be/pkg/llm"
)

// Session holds the in-memory conversation state for one chat session. The
// HTTP framework may dispatch same-session requests in parallel, so history
// access goes through the mutex.
type Session struct {
	ID string `json:"id"`

	mu      sync.Mutex
	history []llm.Message
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

// Append adds one exchange to the session history.
func (s *Session) Append(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, llm.Message{Role: role, Content: content})
}

// History returns a copy of the conversation so far.
func (s *Session) History() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.Message, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of stored messages.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}
