package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stackql-cloud-intelligence/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockProvider struct {
	name     string
	response *llmprovider.Response
	err      error
	calls    int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
		Usage:   &llmprovider.Usage{},
	}
}

func TestManager_GenerateContent(t *testing.T) {
	t.Run("first provider succeeds", func(t *testing.T) {
		primary := &mockProvider{name: "openai", response: textResponse("hi")}
		fallback := &mockProvider{name: "deepseek", response: textResponse("hello")}

		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, fallback},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)

		resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Text() != "hi" {
			t.Errorf("unexpected response: %q", resp.Content.Text())
		}
		if fallback.calls != 0 {
			t.Errorf("fallback provider should not be called, got %d calls", fallback.calls)
		}
	})

	t.Run("fallback on primary failure", func(t *testing.T) {
		primary := &mockProvider{name: "openai", err: errors.New("rate limited")}
		fallback := &mockProvider{name: "deepseek", response: textResponse("hello")}

		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, fallback},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)

		resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Text() != "hello" {
			t.Errorf("unexpected response: %q", resp.Content.Text())
		}
	})

	t.Run("fallback disabled stops after first provider", func(t *testing.T) {
		primary := &mockProvider{name: "openai", err: errors.New("down")}
		fallback := &mockProvider{name: "deepseek", response: textResponse("hello")}

		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, fallback},
			&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
			&mockLogger{},
		)

		_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
		}
		if fallback.calls != 0 {
			t.Errorf("fallback should not be called with fallback disabled, got %d calls", fallback.calls)
		}
	})

	t.Run("all providers fail", func(t *testing.T) {
		primary := &mockProvider{name: "openai", err: errors.New("down")}
		fallback := &mockProvider{name: "deepseek", err: errors.New("also down")}

		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, fallback},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			&mockLogger{},
		)

		_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
		}
		if primary.calls != 2 {
			t.Errorf("expected 2 retry attempts on primary, got %d", primary.calls)
		}
	})

	t.Run("no providers", func(t *testing.T) {
		m := llmprovider.NewManager(nil, &llmprovider.Config{RetryAttempts: 1}, &mockLogger{})
		_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}

func TestMessage_Helpers(t *testing.T) {
	msg := llmprovider.Message{
		Role: "assistant",
		Parts: []llmprovider.Part{
			{Text: "first"},
			{FunctionCall: &llmprovider.FunctionCall{ID: "call_1", Name: "list_providers"}},
			{Text: "second"},
			{FunctionCall: &llmprovider.FunctionCall{ID: "call_2", Name: "query_stackql"}},
		},
	}

	if msg.Text() != "first\nsecond" {
		t.Errorf("unexpected text: %q", msg.Text())
	}

	calls := msg.FunctionCalls()
	if len(calls) != 2 || calls[0].Name != "list_providers" || calls[1].Name != "query_stackql" {
		t.Errorf("unexpected calls order: %+v", calls)
	}
}
