package usecase

import "stackql-cloud-intelligence/internal/chat"

// exampleQuestions are the curated starter questions shown in the chat UI.
var exampleQuestions = []chat.ExampleQuestion{
	{Text: "What cloud providers are available?"},
	{Text: "Show me Google Cloud services"},
	{Text: "List compute resources in Google Cloud"},
	{Text: "What instances are running in my GCP project?"},
	{Text: "Show me all my AWS EC2 instances"},
	{Text: "List Azure virtual machines"},
	{Text: "What GitHub repositories do I have access to?"},
}

// Examples returns the starter questions.
func (uc *implUseCase) Examples() []chat.ExampleQuestion {
	return exampleQuestions
}
