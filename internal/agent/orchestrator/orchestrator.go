package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stackql-cloud-intelligence/pkg/llmprovider"
)

// ProcessTurn runs one conversational turn through the ReAct loop:
// Reason (ask the LLM) → Act (execute requested tools) → Observe (feed
// results back), until the model produces a plain text answer or the
// tool step limit is reached.
//
// History is committed to the session only when the turn produces an
// answer, including the explanatory answer given when the step limit is
// hit. If the completion request itself fails, the session keeps the
// user message alone so a retry starts from a clean slate.
func (o *Orchestrator) ProcessTurn(ctx context.Context, sessionID, userText string) (string, error) {
	if strings.TrimSpace(userText) == "" {
		return "", ErrEmptyMessage
	}

	history := o.sessionSnapshot(sessionID)
	working := append(history, llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: userText}},
	})

	system := &llmprovider.Message{
		Role:  "system",
		Parts: []llmprovider.Part{{Text: o.cfg.SystemPrompt}},
	}
	tools := o.registry.ToFunctionDefinitions()

	for step := 0; step < o.cfg.MaxToolSteps; step++ {
		o.l.Infof(ctx, LogMsgAgentStep, step+1, o.cfg.MaxToolSteps)

		resp, err := o.llm.GenerateContent(ctx, &llmprovider.Request{
			SystemInstruction: system,
			Messages:          working,
			Tools:             tools,
		})
		if err != nil {
			// Keep the user message so the turn can be retried in context.
			o.commitSession(sessionID, append(history, llmprovider.Message{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: userText}},
			}))
			return "", fmt.Errorf("%w at step %d: %v", ErrCompletionFailed, step+1, err)
		}

		calls := resp.Content.FunctionCalls()
		if len(calls) == 0 {
			answer := resp.Content.Text()
			o.l.Infof(ctx, LogMsgAgentFinished, step+1)
			working = append(working, llmprovider.Message{
				Role:  "assistant",
				Parts: []llmprovider.Part{{Text: answer}},
			})
			o.commitSession(sessionID, working)
			return answer, nil
		}

		// Record the assistant's tool request, then answer every call in
		// the order the model listed them.
		working = append(working, resp.Content)
		for _, call := range calls {
			working = append(working, llmprovider.Message{
				Role: "tool",
				Parts: []llmprovider.Part{{
					FunctionResponse: &llmprovider.FunctionResponse{
						CallID:   call.ID,
						Name:     call.Name,
						Response: o.dispatch(ctx, call),
					},
				}},
			})
		}
	}

	// Cap reached: end the turn with an explanatory answer so the session
	// stays usable, and surface the limit to the caller.
	o.l.Warnf(ctx, LogMsgAgentMaxSteps, o.cfg.MaxToolSteps)
	working = append(working, llmprovider.Message{
		Role:  "assistant",
		Parts: []llmprovider.Part{{Text: MsgTurnLimitExceeded}},
	})
	o.commitSession(sessionID, working)
	return MsgTurnLimitExceeded, fmt.Errorf("%w (%d steps)", ErrTurnLimitExceeded, o.cfg.MaxToolSteps)
}

// dispatch executes a single tool call. Tool failures never abort the
// turn: the error is returned to the model as the observation instead.
func (o *Orchestrator) dispatch(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	o.l.Infof(ctx, LogMsgAgentCallingTool, call.Name, call.Args)

	tool, ok := o.registry.Get(call.Name)
	if !ok {
		o.l.Errorf(ctx, LogMsgToolNotFound, call.Name)
		return map[string]string{"error": fmt.Sprintf("unknown tool: %s", call.Name)}
	}

	result, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return result
}

// sessionSnapshot returns a copy of the session's committed history.
func (o *Orchestrator) sessionSnapshot(sessionID string) []llmprovider.Message {
	o.cacheMutex.RLock()
	defer o.cacheMutex.RUnlock()

	session, ok := o.sessionCache[sessionID]
	if !ok {
		return nil
	}
	snapshot := make([]llmprovider.Message, len(session.Messages))
	copy(snapshot, session.Messages)
	return snapshot
}

// commitSession replaces the session history, trimming to MaxHistory.
// Trimming never strands a tool response without its assistant request:
// the cut point moves forward to the next user message.
func (o *Orchestrator) commitSession(sessionID string, messages []llmprovider.Message) {
	if len(messages) > o.cfg.MaxHistory {
		cut := len(messages) - o.cfg.MaxHistory
		for cut < len(messages) && messages[cut].Role != "user" {
			cut++
		}
		messages = messages[cut:]
	}

	o.cacheMutex.Lock()
	defer o.cacheMutex.Unlock()

	session, ok := o.sessionCache[sessionID]
	if !ok {
		session = &SessionMemory{SessionID: sessionID}
		o.sessionCache[sessionID] = session
	}
	session.Messages = messages
	session.LastUpdated = time.Now()
}

// Session returns the session memory for an ID, creating it if absent.
func (o *Orchestrator) Session(sessionID string) *SessionMemory {
	o.cacheMutex.Lock()
	defer o.cacheMutex.Unlock()

	session, ok := o.sessionCache[sessionID]
	if !ok {
		session = &SessionMemory{SessionID: sessionID, LastUpdated: time.Now()}
		o.sessionCache[sessionID] = session
	}
	return session
}

// Reset drops a session's history. Unknown IDs are a no-op.
func (o *Orchestrator) Reset(sessionID string) {
	o.cacheMutex.Lock()
	defer o.cacheMutex.Unlock()
	delete(o.sessionCache, sessionID)
}
