package tools

import (
	"context"
	"fmt"
	"strings"

	"stackql-cloud-intelligence/internal/agent"
)

// ListMethodsTool enumerates methods available for a resource.
type ListMethodsTool struct {
	client StackQLClient
}

// NewListMethodsTool creates a new list_methods tool.
func NewListMethodsTool(client StackQLClient) agent.Tool {
	return &ListMethodsTool{client: client}
}

func (t *ListMethodsTool) Name() string {
	return "list_methods"
}

func (t *ListMethodsTool) Description() string {
	return "List methods available for a specific resource"
}

func (t *ListMethodsTool) Parameters() map[string]interface{} {
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
			"resource": map[string]interface{}{
				"type":        "string",
				"description": "The resource name",
			},
		},
		"required": []string{"provider", "service", "resource"},
	}
}

func (t *ListMethodsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	provider, ok := stringParam(params, "provider")
	if !ok {
		return nil, fmt.Errorf("provider parameter is required")
	}
	service, ok := stringParam(params, "service")
	if !ok {
		return nil, fmt.Errorf("service parameter is required")
	}
	resource, ok := stringParam(params, "resource")
	if !ok {
		return nil, fmt.Errorf("resource parameter is required")
	}

	methods, err := t.client.ListMethods(ctx, provider, service, resource)
	if err != nil {
		return nil, err
	}
	return strings.Join(methods, "\n"), nil
}
