package middleware

import (
	"stackql-cloud-intelligence/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitPerMin int // per client IP, 0 disables limiting
}

type Middleware struct {
	l       log.Logger
	config  Config
	clients *clientLimiters
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		clients: newClientLimiters(cfg.RateLimitPerMin),
	}
}
