package service

import (
	"context"

	"asesor-legal-be/internal/dto"
	"asesor-legal-be/pkg/ai/router"
)

type IAdvisorService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) *dto.ChatResponse
	ClearSession(sessionID string)
}

type advisorService struct {
	engine *router.Engine
}

func NewAdvisorService(engine *router.Engine) IAdvisorService {
	return &advisorService{
		engine: engine,
	}
}

// Chat runs the layered router. The engine degrades every failure to Markdown,
// so this never fails.
func (s *advisorService) Chat(ctx context.Context, req *dto.ChatRequest) *dto.ChatResponse {
	return &dto.ChatResponse{
		Text: s.engine.Answer(ctx, req.Message, req.SessionID),
	}
}

func (s *advisorService) ClearSession(sessionID string) {
	s.engine.ClearSession(sessionID)
}
