package tools

import (
	"context"
	"strings"

	"stackql-cloud-intelligence/internal/agent"
)

// ListProvidersTool enumerates available StackQL cloud providers.
type ListProvidersTool struct {
	client StackQLClient
}

// NewListProvidersTool creates a new list_providers tool.
func NewListProvidersTool(client StackQLClient) agent.Tool {
	return &ListProvidersTool{client: client}
}

func (t *ListProvidersTool) Name() string {
	return "list_providers"
}

func (t *ListProvidersTool) Description() string {
	return "List all available StackQL cloud providers (e.g., google, aws, azure, github, okta, etc.)"
}

func (t *ListProvidersTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

func (t *ListProvidersTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	providers, err := t.client.ListProviders(ctx)
	if err != nil {
		return nil, err
	}
	return strings.Join(providers, "\n"), nil
}
