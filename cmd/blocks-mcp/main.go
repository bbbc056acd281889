package main

import (
	"log"

	"github.com/fasthttp/router"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	httphandler "github.com/imstevez/blocks-mcp/internal/adapter/handler/http"
	mcphandler "github.com/imstevez/blocks-mcp/internal/adapter/handler/mcp"
	"github.com/imstevez/blocks-mcp/internal/adapter/repository"
	"github.com/imstevez/blocks-mcp/internal/config"
	"github.com/imstevez/blocks-mcp/internal/logger"
	"github.com/imstevez/blocks-mcp/internal/usecase"
)

func main() {
	// --- Configuration ---
	cfgPath := "configs"
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", cfgPath, err)
	}

	// --- Logger ---
	zlog, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("Logger initialized", zap.Any("config", cfg.Logger))

	// --- Dependency Injection (Manual) ---
	zlog.Info("Initializing dependencies...")

	registryRepo := repository.NewRegistryRepo(cfg.Registry, zlog)
	cacheRepo := repository.NewGoCacheRepo(cfg.Cache, zlog)
	explorerRepo := repository.NewExplorerRepo(cfg.Explorer, zlog)

	explorerUseCase := usecase.NewExplorerUseCase(registryRepo, cacheRepo, explorerRepo, zlog)

	// --- Diagnostics HTTP server (optional) ---
	if cfg.Server.StatusAddr != "" {
		statusHandler := httphandler.NewStatusHandler(explorerUseCase, zlog)
		r := router.New()
		statusHandler.RegisterRoutes(r)

		go func() {
			zlog.Info("Starting diagnostics HTTP server", zap.String("address", cfg.Server.StatusAddr))
			if err := fasthttp.ListenAndServe(cfg.Server.StatusAddr, r.Handler); err != nil {
				zlog.Error("Diagnostics HTTP server stopped", zap.Error(err))
			}
		}()
	}

	// --- MCP server ---
	s := mcphandler.NewMCPServer(cfg.App, explorerUseCase, zlog)

	switch cfg.Server.Transport {
	case "sse":
		zlog.Info("Starting MCP server over SSE", zap.String("address", cfg.Server.SSEAddr))
		sseServer := mcpserver.NewSSEServer(s)
		if err := sseServer.Start(cfg.Server.SSEAddr); err != nil {
			zlog.Fatal("Failed to start SSE server", zap.Error(err))
		}
	default:
		zlog.Info("Starting MCP server over stdio")
		if err := mcpserver.ServeStdio(s); err != nil {
			zlog.Fatal("MCP server error", zap.Error(err))
		}
	}
}
