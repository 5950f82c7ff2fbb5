package stackql

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the default StackQL MCP server endpoint.
	DefaultBaseURL = "http://127.0.0.1:9912"

	// DefaultCallTimeout bounds a single tools/call round trip.
	DefaultCallTimeout = 30 * time.Second

	// DefaultListToolsTimeout bounds a tools/list round trip.
	DefaultListToolsTimeout = 10 * time.Second
)

// Config holds StackQL MCP client configuration.
type Config struct {
	BaseURL          string
	CallTimeout      time.Duration
	ListToolsTimeout time.Duration
	HTTPClient       *http.Client
}

// Validate fills defaults and checks the configuration.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.CallTimeout <= 0 {
		c.CallTimeout = DefaultCallTimeout
	}
	if c.ListToolsTimeout <= 0 {
		c.ListToolsTimeout = DefaultListToolsTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return nil
}

// ToolInfo describes a tool advertised by the MCP server via tools/list.
type ToolInfo struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema,omitempty"`
}

// ---- JSON-RPC 2.0 wire types ----

type rpcRequest struct {
	JSONRPC string     `json:"jsonrpc"`
	ID      int64      `json:"id"`
	Method  string     `json:"method"`
	Params  *rpcParams `json:"params,omitempty"`
}

type rpcParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// callResult is the tools/call result payload: a list of content blocks.
type callResult struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// listToolsResult is the tools/list result payload.
type listToolsResult struct {
	Tools []ToolInfo `json:"tools"`
}

// text returns the first text block of a tools/call result.
func (r *callResult) text() (string, error) {
	if len(r.Content) == 0 {
		return "", fmt.Errorf("result has no content blocks")
	}
	return r.Content[0].Text, nil
}
