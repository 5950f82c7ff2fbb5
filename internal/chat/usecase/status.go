package usecase

import (
	"context"
	"time"

	"stackql-cloud-intelligence/internal/chat"
)

const statusProbeTimeout = 5 * time.Second

// Status probes the StackQL MCP server and lists the configured LLM
// providers. An unreachable MCP server is reported, not returned as an
// error, so the endpoint stays useful for diagnostics.
func (uc *implUseCase) Status(ctx context.Context) (chat.StatusOutput, error) {
	out := chat.StatusOutput{}

	probeCtx, cancel := context.WithTimeout(ctx, statusProbeTimeout)
	defer cancel()

	greeting, err := uc.prober.Greet(probeCtx, "status")
	if err != nil {
		uc.l.Warnf(ctx, "chat.Status: MCP probe failed: %v", err)
		out.StackQLMessage = err.Error()
	} else {
		out.StackQLConnected = true
		out.StackQLMessage = greeting
	}

	for _, p := range uc.llm.Providers() {
		out.Providers = append(out.Providers, chat.ProviderStatus{
			Name:  p.Name(),
			Model: p.Model(),
		})
	}

	return out, nil
}
