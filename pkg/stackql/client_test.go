package stackql_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"stackql-cloud-intelligence/pkg/stackql"
)

// newMCPServer returns a test server speaking just enough JSON-RPC for the client.
func newMCPServer(t *testing.T, handler func(method, tool string, args map[string]interface{}) (interface{}, *jsonRPCError)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req struct {
			JSONRPC string `json:"jsonrpc"`
			ID      int64  `json:"id"`
			Method  string `json:"method"`
			Params  *struct {
				Name      string                 `json:"name"`
				Arguments map[string]interface{} `json:"arguments"`
			} `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		tool := ""
		var args map[string]interface{}
		if req.Params != nil {
			tool = req.Params.Name
			args = req.Params.Arguments
		}

		result, rpcErr := handler(req.Method, tool, args)

		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func textResult(text string) interface{} {
	return map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": text},
		},
	}
}

func newTestClient(t *testing.T, baseURL string) *stackql.Client {
	t.Helper()
	client, err := stackql.NewClient(stackql.Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestClient_ListProviders(t *testing.T) {
	ts := newMCPServer(t, func(method, tool string, args map[string]interface{}) (interface{}, *jsonRPCError) {
		if method != "tools/call" || tool != "list_providers" {
			return nil, &jsonRPCError{Code: -32601, Message: "unknown method"}
		}
		return textResult("google\naws\nazure\n"), nil
	})
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	providers, err := client.ListProviders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"google", "aws", "azure"}
	if !reflect.DeepEqual(providers, want) {
		t.Errorf("expected %v, got %v", want, providers)
	}
}

func TestClient_DiscoveryArguments(t *testing.T) {
	var gotTool string
	var gotArgs map[string]interface{}

	ts := newMCPServer(t, func(method, tool string, args map[string]interface{}) (interface{}, *jsonRPCError) {
		gotTool = tool
		gotArgs = args
		return textResult("instances"), nil
	})
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	ctx := context.Background()

	if _, err := client.ListServices(ctx, "google"); err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if gotTool != "list_services" || gotArgs["provider"] != "google" {
		t.Errorf("unexpected call: %s %v", gotTool, gotArgs)
	}

	if _, err := client.ListResources(ctx, "google", "compute"); err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if gotTool != "list_resources" || gotArgs["service"] != "compute" {
		t.Errorf("unexpected call: %s %v", gotTool, gotArgs)
	}

	if _, err := client.ListMethods(ctx, "google", "compute", "instances"); err != nil {
		t.Fatalf("ListMethods: %v", err)
	}
	if gotTool != "list_methods" || gotArgs["resource"] != "instances" {
		t.Errorf("unexpected call: %s %v", gotTool, gotArgs)
	}

	if _, err := client.Query(ctx, "SELECT name FROM google.compute.instances"); err != nil {
		t.Fatalf("Query: %v", err)
	}
	if gotTool != "query_v2" || gotArgs["sql"] != "SELECT name FROM google.compute.instances" {
		t.Errorf("unexpected call: %s %v", gotTool, gotArgs)
	}
}

func TestClient_EmptyIdentifiersRejectedLocally(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1")
	ctx := context.Background()

	if _, err := client.ListServices(ctx, ""); err == nil {
		t.Error("expected error for empty provider")
	}
	if _, err := client.ListResources(ctx, "google", ""); err == nil {
		t.Error("expected error for empty service")
	}
	if _, err := client.Query(ctx, ""); err == nil {
		t.Error("expected error for empty sql")
	}
}

func TestClient_RemoteError(t *testing.T) {
	t.Run("json-rpc error object", func(t *testing.T) {
		ts := newMCPServer(t, func(method, tool string, args map[string]interface{}) (interface{}, *jsonRPCError) {
			return nil, &jsonRPCError{Code: -32000, Message: "syntax error in query"}
		})
		defer ts.Close()

		client := newTestClient(t, ts.URL)
		_, err := client.Query(context.Background(), "SELEKT bogus")

		var remoteErr *stackql.RemoteError
		if !errors.As(err, &remoteErr) {
			t.Fatalf("expected RemoteError, got %T: %v", err, err)
		}
		if remoteErr.Code != -32000 || remoteErr.Message != "syntax error in query" {
			t.Errorf("unexpected remote error: %+v", remoteErr)
		}
	})

	t.Run("http status error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal failure", http.StatusInternalServerError)
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL)
		_, err := client.ListProviders(context.Background())

		var remoteErr *stackql.RemoteError
		if !errors.As(err, &remoteErr) {
			t.Fatalf("expected RemoteError, got %T: %v", err, err)
		}
		if remoteErr.HTTPStatus != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", remoteErr.HTTPStatus)
		}
	})
}

func TestClient_DecodeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("this is not json"))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.ListProviders(context.Background())

	var decodeErr *stackql.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Run("server down", func(t *testing.T) {
		ts := newMCPServer(t, func(method, tool string, args map[string]interface{}) (interface{}, *jsonRPCError) {
			return textResult("ok"), nil
		})
		url := ts.URL
		ts.Close()

		client := newTestClient(t, url)
		_, err := client.ListProviders(context.Background())

		var transportErr *stackql.TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected TransportError, got %T: %v", err, err)
		}
		if transportErr.Timeout {
			t.Error("connection refused should not be classified as timeout")
		}
	})

	t.Run("timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer ts.Close()

		client, err := stackql.NewClient(stackql.Config{
			BaseURL:     ts.URL,
			CallTimeout: 20 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("NewClient: %v", err)
		}

		_, err = client.ListProviders(context.Background())

		var transportErr *stackql.TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected TransportError, got %T: %v", err, err)
		}
		if !transportErr.Timeout {
			t.Error("expected timeout flag on deadline expiry")
		}
	})
}

func TestClient_Greet(t *testing.T) {
	ts := newMCPServer(t, func(method, tool string, args map[string]interface{}) (interface{}, *jsonRPCError) {
		if tool != "greet" {
			return nil, &jsonRPCError{Code: -32601, Message: "unknown tool"}
		}
		return textResult("Hello, " + args["name"].(string) + "!"), nil
	})
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	greeting, err := client.Greet(context.Background(), "World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if greeting != "Hello, World!" {
		t.Errorf("unexpected greeting: %q", greeting)
	}
}

func TestClient_ListTools(t *testing.T) {
	ts := newMCPServer(t, func(method, tool string, args map[string]interface{}) (interface{}, *jsonRPCError) {
		if method != "tools/list" {
			return nil, &jsonRPCError{Code: -32601, Message: "unknown method"}
		}
		return map[string]interface{}{
			"tools": []map[string]interface{}{
				{"name": "greet", "description": "greeting tool"},
				{"name": "query_v2", "description": "run a query"},
			},
		}, nil
	})
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	tools, err := client.ListTools(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tools) != 2 || tools[0].Name != "greet" || tools[1].Name != "query_v2" {
		t.Errorf("unexpected tools: %+v", tools)
	}
}

// Repeating an identical call against a stable server yields identical results.
func TestClient_RepeatCallDeterminism(t *testing.T) {
	ts := newMCPServer(t, func(method, tool string, args map[string]interface{}) (interface{}, *jsonRPCError) {
		return textResult("google\naws"), nil
	})
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	ctx := context.Background()

	first, err := client.ListProviders(ctx)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := client.ListProviders(ctx)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v then %v", first, second)
	}
}
