package tools

import (
	"context"

	"stackql-cloud-intelligence/internal/agent"
)

// StackQLClient is the subset of the StackQL MCP client the tools need.
type StackQLClient interface {
	Greet(ctx context.Context, name string) (string, error)
	ListProviders(ctx context.Context) ([]string, error)
	ListServices(ctx context.Context, provider string) ([]string, error)
	ListResources(ctx context.Context, provider, service string) ([]string, error)
	ListMethods(ctx context.Context, provider, service, resource string) ([]string, error)
	Query(ctx context.Context, sql string) (string, error)
}

// RegisterAll registers the full StackQL toolset in a stable order.
func RegisterAll(registry *agent.ToolRegistry, client StackQLClient) {
	registry.Register(NewGreetTool(client))
	registry.Register(NewListProvidersTool(client))
	registry.Register(NewListServicesTool(client))
	registry.Register(NewListResourcesTool(client))
	registry.Register(NewListMethodsTool(client))
	registry.Register(NewQueryTool(client))
}

// stringParam extracts a required string argument.
func stringParam(params map[string]interface{}, key string) (string, bool) {
	v, ok := params[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
