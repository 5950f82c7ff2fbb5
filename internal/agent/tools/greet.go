package tools

import (
	"context"

	"stackql-cloud-intelligence/internal/agent"
)

// GreetTool tests the StackQL MCP connection.
type GreetTool struct {
	client StackQLClient
}

// NewGreetTool creates a new greet tool.
func NewGreetTool(client StackQLClient) agent.Tool {
	return &GreetTool{client: client}
}

func (t *GreetTool) Name() string {
	return "greet"
}

func (t *GreetTool) Description() string {
	return "Test the StackQL MCP connection with a simple greeting"
}

func (t *GreetTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "The name to greet",
			},
		},
		"required": []string{"name"},
	}
}

func (t *GreetTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		name = "World"
	}
	return t.client.Greet(ctx, name)
}
