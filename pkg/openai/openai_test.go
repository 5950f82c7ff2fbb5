package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stackql-cloud-intelligence/pkg/openai"
)

func TestClient_GenerateContent(t *testing.T) {
	var gotBody map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "There are 3 providers."},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 6, "total_tokens": 26}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := &openai.Request{
		SystemInstruction: &openai.Content{
			Role:  "system",
			Parts: []openai.Part{{Text: "You are a cloud infrastructure assistant."}},
		},
		Messages: []openai.Content{
			{Role: "user", Parts: []openai.Part{{Text: "What providers are available?"}}},
		},
		Tools: []openai.Tool{
			{Name: "list_providers", Description: "List providers", Parameters: map[string]interface{}{"type": "object"}},
		},
	}

	resp, err := client.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "There are 3 providers." {
		t.Errorf("unexpected response content: %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 26 {
		t.Errorf("expected 26 total tokens, got %d", resp.Usage.TotalTokens)
	}

	// Request wire shape: system message first, tools declared, tool_choice auto.
	msgs, _ := gotBody["messages"].([]interface{})
	if len(msgs) != 2 {
		t.Fatalf("expected 2 wire messages, got %d", len(msgs))
	}
	first, _ := msgs[0].(map[string]interface{})
	if first["role"] != "system" {
		t.Errorf("expected system message first, got %v", first["role"])
	}
	if gotBody["tool_choice"] != "auto" {
		t.Errorf("expected tool_choice auto, got %v", gotBody["tool_choice"])
	}
}

func TestClient_GenerateContent_ToolCalls(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-2",
			"choices": [{
				"index": 0,
				"message": {
					"role": "assistant",
					"tool_calls": [{
						"id": "call_abc123",
						"type": "function",
						"function": {"name": "list_services", "arguments": "{\"provider\":\"google\"}"}
					}]
				},
				"finish_reason": "tool_calls"
			}],
			"usage": {"prompt_tokens": 30, "completion_tokens": 12, "total_tokens": 42}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Content{
			{Role: "user", Parts: []openai.Part{{Text: "Show me Google Cloud services"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Content.Parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(resp.Content.Parts))
	}
	fc := resp.Content.Parts[0].FunctionCall
	if fc == nil {
		t.Fatal("expected a function call part")
	}
	if fc.ID != "call_abc123" || fc.Name != "list_services" || fc.Args["provider"] != "google" {
		t.Errorf("unexpected function call: %+v", fc)
	}
}

func TestClient_GenerateContent_ToolResponseRoundTrip(t *testing.T) {
	var gotBody struct {
		Messages []map[string]interface{} `json:"messages"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "done"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	}))
	defer ts.Close()

	client, _ := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Content{
			{Role: "user", Parts: []openai.Part{{Text: "list providers"}}},
			{Role: "assistant", Parts: []openai.Part{{
				FunctionCall: &openai.FunctionCall{ID: "call_1", Name: "list_providers", Args: map[string]interface{}{}},
			}}},
			{Role: "tool", Parts: []openai.Part{{
				FunctionResponse: &openai.FunctionResponse{CallID: "call_1", Name: "list_providers", Response: "google\naws"},
			}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gotBody.Messages) != 3 {
		t.Fatalf("expected 3 wire messages, got %d", len(gotBody.Messages))
	}
	toolMsg := gotBody.Messages[2]
	if toolMsg["role"] != "tool" || toolMsg["tool_call_id"] != "call_1" {
		t.Errorf("unexpected tool wire message: %v", toolMsg)
	}
}

func TestClient_GenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "Rate limit reached", "type": "rate_limit_error"}}`))
	}))
	defer ts.Close()

	client, _ := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Content{{Role: "user", Parts: []openai.Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := openai.Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg = openai.Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != openai.DefaultModel {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
	if cfg.BaseURL != openai.DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
}
