package service

import (
	"context"
	"fmt"
	"log/slog"

	"landing/internal/modules/dialog/domain"
	dialogout "landing/internal/modules/dialog/port/out"
	"landing/internal/platform/id"
)

// DialogService holds the single open chat widget session. It is confined to
// the UI goroutine that drives it.
type DialogService struct {
	source dialogout.ScriptSource
	idGen  id.Generator
	logger *slog.Logger

	script    *domain.Script
	conv      *domain.Conversation
	sessionID string
}

func NewDialogService(source dialogout.ScriptSource, idGen id.Generator, logger *slog.Logger) *DialogService {
	return &DialogService{source: source, idGen: idGen, logger: logger}
}

// Script loads and validates the script once; later calls reuse it.
func (s *DialogService) Script(ctx context.Context) (domain.Script, error) {
	if s.script != nil {
		return *s.script, nil
	}
	script, err := s.source.LoadScript(ctx)
	if err != nil {
		return domain.Script{}, err
	}
	if err := script.Validate(); err != nil {
		return domain.Script{}, fmt.Errorf("validate dialog script: %w", err)
	}
	s.script = &script
	return script, nil
}

// Session returns the open conversation, starting one if none is open.
func (s *DialogService) Session(ctx context.Context) (string, *domain.Conversation, error) {
	if s.conv != nil {
		return s.sessionID, s.conv, nil
	}
	script, err := s.Script(ctx)
	if err != nil {
		return "", nil, err
	}
	s.conv = domain.NewConversation(script)
	s.sessionID = s.idGen.New()
	s.logger.Debug("chat session opened", "session", s.sessionID)
	return s.sessionID, s.conv, nil
}

func (s *DialogService) Choose(ctx context.Context, node domain.Node) (string, *domain.Conversation, error) {
	sessionID, conv, err := s.Session(ctx)
	if err != nil {
		return "", nil, err
	}
	conv.Choose(node)
	s.logger.Debug("chat option chosen", "session", sessionID, "option", node.ID, "leaf", node.IsLeaf())
	return sessionID, conv, nil
}

// Reset discards the transcript and starts a fresh session.
func (s *DialogService) Reset(ctx context.Context) (string, *domain.Conversation, error) {
	if _, _, err := s.Session(ctx); err != nil {
		return "", nil, err
	}
	previous := s.sessionID
	s.conv.Initialize()
	s.sessionID = s.idGen.New()
	s.logger.Debug("chat session reset", "previous", previous, "session", s.sessionID)
	return s.sessionID, s.conv, nil
}
