package orchestrator

import (
	"time"

	"stackql-cloud-intelligence/pkg/llmprovider"
)

// SessionMemory holds the recent conversation history for one chat session.
type SessionMemory struct {
	SessionID   string
	Messages    []llmprovider.Message
	LastUpdated time.Time
}

// Config controls the agent loop and session retention.
type Config struct {
	MaxToolSteps int
	MaxHistory   int
	SessionTTL   time.Duration
	SystemPrompt string
}

func (c *Config) applyDefaults() {
	if c.MaxToolSteps <= 0 {
		c.MaxToolSteps = DefaultMaxToolSteps
	}
	if c.MaxHistory <= 0 {
		c.MaxHistory = DefaultMaxHistory
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL * time.Minute
	}
	if c.SystemPrompt == "" {
		c.SystemPrompt = SystemPromptDefault
	}
}
