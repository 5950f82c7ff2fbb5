package tools

import (
	"context"
	"fmt"

	"stackql-cloud-intelligence/internal/agent"
)

// QueryTool executes a StackQL query against the remote server.
type QueryTool struct {
	client StackQLClient
}

// NewQueryTool creates a new query_stackql tool.
func NewQueryTool(client StackQLClient) agent.Tool {
	return &QueryTool{client: client}
}

func (t *QueryTool) Name() string {
	return "query_stackql"
}

func (t *QueryTool) Description() string {
	return "Execute a StackQL query to retrieve information about cloud resources. " +
		"Use SQL-like syntax to query cloud infrastructure across multiple providers."
}

func (t *QueryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"sql": map[string]interface{}{
				"type": "string",
				"description": "The StackQL query to execute " +
					"(e.g., 'SELECT * FROM google.compute.instances WHERE project = \"myproject\"')",
			},
		},
		"required": []string{"sql"},
	}
}

func (t *QueryTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sql, ok := stringParam(params, "sql")
	if !ok {
		return nil, fmt.Errorf("sql parameter is required")
	}
	return t.client.Query(ctx, sql)
}
