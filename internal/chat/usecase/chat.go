package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"stackql-cloud-intelligence/internal/agent/orchestrator"
	"stackql-cloud-intelligence/internal/chat"
	"stackql-cloud-intelligence/internal/model"
)

// ProcessTurn runs one chat turn. An empty SessionID allocates a new session
// so the caller can continue the conversation with the returned ID.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input chat.ProcessTurnInput) (chat.ProcessTurnOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ProcessTurnOutput{}, chat.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
		uc.l.Infof(ctx, "chat.ProcessTurn: new session %s (client %s)", sessionID, sc.ClientIP)
	}

	answer, err := uc.agent.ProcessTurn(ctx, sessionID, input.Message)
	if err != nil {
		// A hit step limit still yields an explanatory answer; the turn
		// succeeded from the caller's point of view.
		if errors.Is(err, orchestrator.ErrTurnLimitExceeded) {
			uc.l.Warnf(ctx, "chat.ProcessTurn: session %s: %v", sessionID, err)
			return chat.ProcessTurnOutput{SessionID: sessionID, Answer: answer}, nil
		}
		uc.l.Errorf(ctx, "chat.ProcessTurn: session %s: %v", sessionID, err)
		return chat.ProcessTurnOutput{}, uc.mapAgentError(err)
	}

	return chat.ProcessTurnOutput{
		SessionID: sessionID,
		Answer:    answer,
	}, nil
}

// Reset discards the session's conversation history.
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) error {
	uc.agent.Reset(sessionID)
	uc.l.Infof(ctx, "chat.Reset: session %s cleared", sessionID)
	return nil
}

func (uc *implUseCase) mapAgentError(err error) error {
	switch {
	case errors.Is(err, orchestrator.ErrEmptyMessage):
		return chat.ErrEmptyMessage
	case errors.Is(err, orchestrator.ErrCompletionFailed):
		return chat.ErrCompletionFailed
	default:
		return err
	}
}
