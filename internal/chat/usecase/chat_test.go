package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"stackql-cloud-intelligence/internal/agent/orchestrator"
	"stackql-cloud-intelligence/internal/chat"
	"stackql-cloud-intelligence/internal/model"
)

func TestProcessTurn_NewSession(t *testing.T) {
	agent := &mockAgent{answer: "google, aws, azure"}
	uc := New(&mockLogger{}, agent, &mockProber{}, newTestManager())

	out, err := uc.ProcessTurn(context.Background(), model.Scope{ClientIP: "127.0.0.1"}, chat.ProcessTurnInput{
		Message: "what providers are available?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SessionID == "" {
		t.Error("expected a generated session ID")
	}
	if out.Answer != "google, aws, azure" {
		t.Errorf("unexpected answer: %q", out.Answer)
	}
	if agent.lastSession != out.SessionID {
		t.Errorf("agent saw session %q, returned %q", agent.lastSession, out.SessionID)
	}
}

func TestProcessTurn_ExistingSession(t *testing.T) {
	agent := &mockAgent{answer: "ok"}
	uc := New(&mockLogger{}, agent, &mockProber{}, newTestManager())

	out, err := uc.ProcessTurn(context.Background(), model.Scope{}, chat.ProcessTurnInput{
		SessionID: "existing-session",
		Message:   "follow up question",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SessionID != "existing-session" {
		t.Errorf("session ID changed: %q", out.SessionID)
	}
	if agent.lastText != "follow up question" {
		t.Errorf("message not forwarded: %q", agent.lastText)
	}
}

func TestProcessTurn_EmptyMessage(t *testing.T) {
	uc := New(&mockLogger{}, &mockAgent{}, &mockProber{}, newTestManager())

	_, err := uc.ProcessTurn(context.Background(), model.Scope{}, chat.ProcessTurnInput{Message: "  "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestProcessTurn_ErrorMapping(t *testing.T) {
	cases := []struct {
		agentErr error
		want     error
	}{
		{fmt.Errorf("%w at step 1: rate limited", orchestrator.ErrCompletionFailed), chat.ErrCompletionFailed},
		{orchestrator.ErrEmptyMessage, chat.ErrEmptyMessage},
	}

	for _, tc := range cases {
		uc := New(&mockLogger{}, &mockAgent{err: tc.agentErr}, &mockProber{}, newTestManager())
		_, err := uc.ProcessTurn(context.Background(), model.Scope{}, chat.ProcessTurnInput{Message: "hi"})
		if !errors.Is(err, tc.want) {
			t.Errorf("agent error %v: expected %v, got %v", tc.agentErr, tc.want, err)
		}
	}
}

func TestProcessTurn_TurnLimitStillAnswers(t *testing.T) {
	agent := &mockAgent{
		answer: "I wasn't able to complete this within the allowed number of tool calls.",
		err:    fmt.Errorf("%w (10 steps)", orchestrator.ErrTurnLimitExceeded),
	}
	uc := New(&mockLogger{}, agent, &mockProber{}, newTestManager())

	out, err := uc.ProcessTurn(context.Background(), model.Scope{}, chat.ProcessTurnInput{
		SessionID: "existing-session",
		Message:   "something very complex",
	})
	if err != nil {
		t.Fatalf("turn limit must not surface as an error: %v", err)
	}
	if out.Answer != agent.answer {
		t.Errorf("explanatory answer lost: %q", out.Answer)
	}
	if out.SessionID != "existing-session" {
		t.Errorf("session ID lost: %q", out.SessionID)
	}
}

func TestReset(t *testing.T) {
	agent := &mockAgent{}
	uc := New(&mockLogger{}, agent, &mockProber{}, newTestManager())

	if err := uc.Reset(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(agent.resets) != 1 || agent.resets[0] != "s1" {
		t.Errorf("reset not forwarded: %v", agent.resets)
	}
}

func TestExamples(t *testing.T) {
	uc := New(&mockLogger{}, &mockAgent{}, &mockProber{}, newTestManager())

	examples := uc.Examples()
	if len(examples) == 0 {
		t.Fatal("expected non-empty example list")
	}
	if examples[0].Text != "What cloud providers are available?" {
		t.Errorf("unexpected first example: %q", examples[0].Text)
	}
}
