package chat

// ProcessTurnInput is the input for one conversational turn.
type ProcessTurnInput struct {
	SessionID string // empty starts a new session
	Message   string // natural language question from the user
}

// ProcessTurnOutput is the result of a conversational turn.
type ProcessTurnOutput struct {
	SessionID string
	Answer    string
}

// ExampleQuestion is a suggested starter question for the chat UI.
type ExampleQuestion struct {
	Text string `json:"text"`
}

// ProviderStatus describes one configured LLM provider.
type ProviderStatus struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

// StatusOutput reports service dependencies health.
type StatusOutput struct {
	StackQLConnected bool
	StackQLMessage   string
	Providers        []ProviderStatus
}
