package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request to the OpenAI API
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := o.transformRequest(req)

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return o.transformResponse(&chatResp), nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// transformRequest converts a normalized request to the chat completions format
func (o *openAIImpl) transformRequest(req *Request) *chatRequest {
	chatReq := &chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		chatReq.Messages = append(chatReq.Messages, chatMessage{
			Role:    "system",
			Content: flattenText(req.SystemInstruction),
		})
	}

	for i := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, transformMessage(&req.Messages[i]))
	}

	if len(req.Tools) > 0 {
		chatReq.Tools = make([]chatTool, len(req.Tools))
		for i, tool := range req.Tools {
			chatReq.Tools[i] = chatTool{
				Type: "function",
				Function: chatFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}
		chatReq.ToolChoice = "auto"
	}

	return chatReq
}

func transformMessage(msg *Content) chatMessage {
	chatMsg := chatMessage{Role: msg.Role}

	for _, part := range msg.Parts {
		if part.Text != "" {
			if chatMsg.Content != "" {
				chatMsg.Content += "\n"
			}
			chatMsg.Content += part.Text
		}

		if part.FunctionCall != nil {
			argsJSON, _ := json.Marshal(part.FunctionCall.Args)
			chatMsg.ToolCalls = append(chatMsg.ToolCalls, chatToolCall{
				ID:   callID(part.FunctionCall.ID, part.FunctionCall.Name),
				Type: "function",
				Function: chatFunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(argsJSON),
				},
			})
		}

		if part.FunctionResponse != nil {
			chatMsg.Role = "tool"
			chatMsg.ToolCallID = callID(part.FunctionResponse.CallID, part.FunctionResponse.Name)
			responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
			chatMsg.Content = string(responseJSON)
		}
	}

	return chatMsg
}

func (o *openAIImpl) transformResponse(resp *chatResponse) *Response {
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}
	}

	choice := resp.Choices[0]
	message := Content{
		Role:  choice.Message.Role,
		Parts: make([]Part, 0),
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	for _, toolCall := range choice.Message.ToolCalls {
		if toolCall.Type == "function" {
			var args map[string]interface{}
			if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
				args = make(map[string]interface{})
			}

			message.Parts = append(message.Parts, Part{
				FunctionCall: &FunctionCall{
					ID:   toolCall.ID,
					Name: toolCall.Function.Name,
					Args: args,
				},
			})
		}
	}

	return &Response{
		Content: message,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}

// callID falls back to a name-derived ID for providers that omit tool call IDs.
func callID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}

func flattenText(msg *Content) string {
	text := ""
	for _, part := range msg.Parts {
		if part.Text != "" {
			if text != "" {
				text += "\n"
			}
			text += part.Text
		}
	}
	return text
}
