package orchestrator

import (
	"context"
	"sync"
	"time"

	"stackql-cloud-intelligence/internal/agent"
	"stackql-cloud-intelligence/pkg/llmprovider"
	pkgLog "stackql-cloud-intelligence/pkg/log"
)

type Orchestrator struct {
	llm          *llmprovider.Manager
	registry     *agent.ToolRegistry
	l            pkgLog.Logger
	cfg          Config
	sessionCache map[string]*SessionMemory
	cacheMutex   sync.RWMutex
}

func New(llm *llmprovider.Manager, registry *agent.ToolRegistry, l pkgLog.Logger, cfg Config) *Orchestrator {
	cfg.applyDefaults()
	o := &Orchestrator{
		llm:          llm,
		registry:     registry,
		l:            l,
		cfg:          cfg,
		sessionCache: make(map[string]*SessionMemory),
	}

	go o.cleanupExpiredSessions()

	return o
}

func (o *Orchestrator) cleanupExpiredSessions() {
	ticker := time.NewTicker(SessionCleanupMinutes * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		o.cacheMutex.Lock()
		removed := 0
		for id, session := range o.sessionCache {
			if time.Since(session.LastUpdated) > o.cfg.SessionTTL {
				delete(o.sessionCache, id)
				removed++
			}
		}
		o.cacheMutex.Unlock()

		if removed > 0 {
			o.l.Infof(context.Background(), LogMsgSessionsCleanedUp, removed)
		}
	}
}
