package usecase

import (
	"context"

	"stackql-cloud-intelligence/pkg/llmprovider"
)

// Mock logger for testing
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

// Mock agent for testing
type mockAgent struct {
	answer      string
	err         error
	lastSession string
	lastText    string
	resets      []string
}

func (m *mockAgent) ProcessTurn(ctx context.Context, sessionID, userText string) (string, error) {
	m.lastSession = sessionID
	m.lastText = userText
	return m.answer, m.err
}

func (m *mockAgent) Reset(sessionID string) {
	m.resets = append(m.resets, sessionID)
}

// Mock MCP prober for testing
type mockProber struct {
	greeting string
	err      error
}

func (m *mockProber) Greet(ctx context.Context, name string) (string, error) {
	return m.greeting, m.err
}

// Mock LLM provider for status listing
type mockProvider struct {
	name  string
	model string
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

func newTestManager(providers ...llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager(providers, &llmprovider.Config{RetryAttempts: 1}, &mockLogger{})
}
