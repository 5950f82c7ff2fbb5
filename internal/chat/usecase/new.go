package usecase

import (
	"context"

	"stackql-cloud-intelligence/pkg/llmprovider"
	pkgLog "stackql-cloud-intelligence/pkg/log"
)

// Agent is the conversation engine behind the chat use case.
type Agent interface {
	ProcessTurn(ctx context.Context, sessionID, userText string) (string, error)
	Reset(sessionID string)
}

// StatusProber checks StackQL MCP server reachability.
type StatusProber interface {
	Greet(ctx context.Context, name string) (string, error)
}

type implUseCase struct {
	l      pkgLog.Logger
	agent  Agent
	prober StatusProber
	llm    *llmprovider.Manager
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, agent Agent, prober StatusProber, llm *llmprovider.Manager) *implUseCase {
	return &implUseCase{
		l:      l,
		agent:  agent,
		prober: prober,
		llm:    llm,
	}
}
