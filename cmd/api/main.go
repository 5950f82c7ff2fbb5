package main

import (
	"context"
	"fmt"

	"stackql-cloud-intelligence/config"
	_ "stackql-cloud-intelligence/docs" // Swagger docs
	"stackql-cloud-intelligence/internal/agent"
	"stackql-cloud-intelligence/internal/agent/orchestrator"
	"stackql-cloud-intelligence/internal/agent/tools"
	chatHTTP "stackql-cloud-intelligence/internal/chat/delivery/http"
	chatUC "stackql-cloud-intelligence/internal/chat/usecase"
	"stackql-cloud-intelligence/internal/httpserver"
	"stackql-cloud-intelligence/internal/middleware"
	"stackql-cloud-intelligence/pkg/llmprovider"
	"stackql-cloud-intelligence/pkg/log"
	"stackql-cloud-intelligence/pkg/stackql"
)

// @title       StackQL Cloud Intelligence API
// @description Natural language chat over cloud infrastructure, backed by a StackQL MCP server and LLM function calling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting StackQL Cloud Intelligence...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "StackQL MCP server: %s", cfg.StackQL.BaseURL)

	// 3. StackQL MCP client
	stackqlClient, err := stackql.NewClient(stackql.Config{
		BaseURL:          cfg.StackQL.BaseURL,
		CallTimeout:      cfg.StackQL.CallTimeout,
		ListToolsTimeout: cfg.StackQL.ListToolsTimeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create StackQL client: %v", err)
	}

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	manager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)

	// 5. Agent: tool registry + orchestrator
	registry := agent.NewToolRegistry()
	tools.RegisterAll(registry, stackqlClient)
	logger.Infof(ctx, "Registered %d StackQL tools", len(registry.List()))

	orc := orchestrator.New(manager, registry, logger, orchestrator.Config{
		MaxToolSteps: cfg.Chat.MaxToolSteps,
		MaxHistory:   cfg.Chat.MaxHistory,
		SessionTTL:   cfg.Chat.SessionTTL,
		SystemPrompt: cfg.Chat.SystemPrompt,
	})

	// 6. Chat domain
	uc := chatUC.New(logger, orc, stackqlClient, manager)
	handler := chatHTTP.New(logger, uc)

	// 7. HTTP server
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})

	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: handler,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}
