package chat

import (
	"context"

	"stackql-cloud-intelligence/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// ProcessTurn sends one user message through the agent and returns the answer.
	// A missing SessionID starts a new session.
	ProcessTurn(ctx context.Context, sc model.Scope, input ProcessTurnInput) (ProcessTurnOutput, error)

	// Examples returns curated example questions for the chat UI.
	Examples() []ExampleQuestion

	// Status reports StackQL MCP server connectivity and the configured LLM providers.
	Status(ctx context.Context) (StatusOutput, error)

	// Reset discards a session's conversation history.
	Reset(ctx context.Context, sessionID string) error
}
