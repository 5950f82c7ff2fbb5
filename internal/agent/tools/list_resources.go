package tools

import (
	"context"
	"fmt"
	"strings"

	"stackql-cloud-intelligence/internal/agent"
)

// ListResourcesTool enumerates resources in a provider service.
type ListResourcesTool struct {
	client StackQLClient
}

// NewListResourcesTool creates a new list_resources tool.
func NewListResourcesTool(client StackQLClient) agent.Tool {
	return &ListResourcesTool{client: client}
}

func (t *ListResourcesTool) Name() string {
	return "list_resources"
}

func (t *ListResourcesTool) Description() string {
	return "List resources available in a provider's service"
}

func (t *ListResourcesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"provider": map[string]interface{}{
				"type":        "string",
				"description": "The provider name",
			},
			"service": map[string]interface{}{
				"type":        "string",
				"description": "The service name",
			},
		},
		"required": []string{"provider", "service"},
	}
}

func (t *ListResourcesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	provider, ok := stringParam(params, "provider")
	if !ok {
		return nil, fmt.Errorf("provider parameter is required")
	}
	service, ok := stringParam(params, "service")
	if !ok {
		return nil, fmt.Errorf("service parameter is required")
	}

	resources, err := t.client.ListResources(ctx, provider, service)
	if err != nil {
		return nil, err
	}
	return strings.Join(resources, "\n"), nil
}
