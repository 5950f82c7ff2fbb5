package tools

import (
	"context"
	"fmt"
	"strings"

	"stackql-cloud-intelligence/internal/agent"
)

// ListServicesTool enumerates services in a cloud provider.
type ListServicesTool struct {
	client StackQLClient
}

// NewListServicesTool creates a new list_services tool.
func NewListServicesTool(client StackQLClient) agent.Tool {
	return &ListServicesTool{client: client}
}

func (t *ListServicesTool) Name() string {
	return "list_services"
}

func (t *ListServicesTool) Description() string {
	return "List services available in a specific cloud provider"
}

func (t *ListServicesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"provider": map[string]interface{}{
				"type":        "string",
				"description": "The provider name (e.g., 'google', 'aws', 'azure')",
			},
		},
		"required": []string{"provider"},
	}
}

func (t *ListServicesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	provider, ok := stringParam(params, "provider")
	if !ok {
		return nil, fmt.Errorf("provider parameter is required")
	}

	services, err := t.client.ListServices(ctx, provider)
	if err != nil {
		return nil, err
	}
	return strings.Join(services, "\n"), nil
}
