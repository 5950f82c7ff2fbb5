package stackql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// Client is the HTTP wrapper for the StackQL MCP (JSON-RPC 2.0) server.
// Each operation is a single attempt; failures surface immediately as one of
// TransportError, RemoteError, or DecodeError.
type Client struct {
	baseURL          string
	callTimeout      time.Duration
	listToolsTimeout time.Duration
	httpClient       *http.Client
	nextID           atomic.Int64
}

// NewClient creates a new StackQL MCP client.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL:          cfg.BaseURL,
		callTimeout:      cfg.CallTimeout,
		listToolsTimeout: cfg.ListToolsTimeout,
		httpClient:       cfg.HTTPClient,
	}, nil
}

// BaseURL returns the configured MCP server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Greet probes MCP connectivity with the greet tool.
func (c *Client) Greet(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("stackql: name is required")
	}
	return c.callTool(ctx, "greet", map[string]interface{}{"name": name})
}

// ListProviders lists all available StackQL cloud providers.
func (c *Client) ListProviders(ctx context.Context) ([]string, error) {
	text, err := c.callTool(ctx, "list_providers", nil)
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// ListServices lists services available in a provider.
func (c *Client) ListServices(ctx context.Context, provider string) ([]string, error) {
	if provider == "" {
		return nil, fmt.Errorf("stackql: provider is required")
	}
	text, err := c.callTool(ctx, "list_services", map[string]interface{}{"provider": provider})
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// ListResources lists resources in a provider service.
func (c *Client) ListResources(ctx context.Context, provider, service string) ([]string, error) {
	if provider == "" {
		return nil, fmt.Errorf("stackql: provider is required")
	}
	if service == "" {
		return nil, fmt.Errorf("stackql: service is required")
	}
	text, err := c.callTool(ctx, "list_resources", map[string]interface{}{
		"provider": provider,
		"service":  service,
	})
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// ListMethods lists methods available for a resource.
func (c *Client) ListMethods(ctx context.Context, provider, service, resource string) ([]string, error) {
	if provider == "" {
		return nil, fmt.Errorf("stackql: provider is required")
	}
	if service == "" {
		return nil, fmt.Errorf("stackql: service is required")
	}
	if resource == "" {
		return nil, fmt.Errorf("stackql: resource is required")
	}
	text, err := c.callTool(ctx, "list_methods", map[string]interface{}{
		"provider": provider,
		"service":  service,
		"resource": resource,
	})
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// Query executes a StackQL query and returns the raw result text.
func (c *Client) Query(ctx context.Context, sql string) (string, error) {
	if sql == "" {
		return "", fmt.Errorf("stackql: sql is required")
	}
	return c.callTool(ctx, "query_v2", map[string]interface{}{"sql": sql})
}

// ListTools returns the tools advertised by the MCP server.
func (c *Client) ListTools(ctx context.Context) ([]ToolInfo, error) {
	raw, err := c.roundTrip(ctx, "tools/list", nil, c.listToolsTimeout)
	if err != nil {
		return nil, err
	}

	var result listToolsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &DecodeError{Reason: "failed to decode tools/list result", Err: err}
	}
	return result.Tools, nil
}

// callTool performs a tools/call round trip and returns the result text.
func (c *Client) callTool(ctx context.Context, name string, arguments map[string]interface{}) (string, error) {
	if arguments == nil {
		arguments = map[string]interface{}{}
	}

	raw, err := c.roundTrip(ctx, "tools/call", &rpcParams{Name: name, Arguments: arguments}, c.callTimeout)
	if err != nil {
		return "", err
	}

	var result callResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &DecodeError{Reason: fmt.Sprintf("failed to decode %s result", name), Err: err}
	}

	text, err := result.text()
	if err != nil {
		return "", &DecodeError{Reason: fmt.Sprintf("unexpected %s result shape", name), Err: err}
	}
	return text, nil
}

// roundTrip sends one JSON-RPC request and returns the raw result field.
func (c *Client) roundTrip(ctx context.Context, method string, params *rpcParams, timeout time.Duration) (json.RawMessage, error) {
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("stackql: failed to marshal %s request: %w", method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("stackql: failed to build %s request: %w", method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{
			URL:     c.baseURL,
			Timeout: isTimeout(err),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: c.baseURL, Timeout: isTimeout(err), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{
			HTTPStatus: resp.StatusCode,
			Message:    truncate(string(respBody), 200),
		}
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, &DecodeError{
			Reason: fmt.Sprintf("MCP server returned invalid JSON: %s", truncate(string(respBody), 200)),
			Err:    err,
		}
	}

	if rpcResp.Error != nil {
		return nil, &RemoteError{Code: rpcResp.Error.Code, Message: rpcResp.Error.Message}
	}

	return rpcResp.Result, nil
}

// isTimeout reports whether err is a timeout or deadline expiry.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// splitLines splits record-oriented text output into trimmed, non-empty lines,
// preserving server order.
func splitLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
