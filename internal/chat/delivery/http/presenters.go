package http

import (
	"strings"

	"stackql-cloud-intelligence/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id" binding:"omitempty,uuid4"`
	Message   string `json:"message"    binding:"required,min=1,max=4000"`
}

// validate catches messages the binding tags let through, such as
// bodies that are nothing but whitespace.
func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() chat.ProcessTurnInput {
	return chat.ProcessTurnInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type chatResp struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

func (h *handler) newChatResp(out chat.ProcessTurnOutput) chatResp {
	return chatResp{
		SessionID: out.SessionID,
		Answer:    out.Answer,
	}
}

type examplesResp struct {
	Examples []chat.ExampleQuestion `json:"examples"`
}

func (h *handler) newExamplesResp(examples []chat.ExampleQuestion) examplesResp {
	return examplesResp{Examples: examples}
}

type statusResp struct {
	StackQL   stackqlStatusResp     `json:"stackql"`
	Providers []chat.ProviderStatus `json:"providers"`
}

type stackqlStatusResp struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

func (h *handler) newStatusResp(out chat.StatusOutput) statusResp {
	providers := out.Providers
	if providers == nil {
		providers = []chat.ProviderStatus{}
	}
	return statusResp{
		StackQL: stackqlStatusResp{
			Connected: out.StackQLConnected,
			Message:   out.StackQLMessage,
		},
		Providers: providers,
	}
}
