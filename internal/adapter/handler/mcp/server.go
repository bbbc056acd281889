package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/imstevez/blocks-mcp/internal/config"
	"github.com/imstevez/blocks-mcp/internal/operation"
	"github.com/imstevez/blocks-mcp/internal/usecase"
)

// NewMCPServer creates a configured MCP server with every catalog operation
// registered as a tool, plus the static Merlin chain info tool.
func NewMCPServer(cfg config.AppConfig, uc usecase.ExplorerUseCase, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(cfg.Name, cfg.Version,
		server.WithInstructions("This server provides tools for querying blockchains on-chain data"),
	)

	h := NewToolHandler(uc, logger)
	for _, op := range operation.Catalog() {
		s.AddTool(BuildTool(op), h.Handle(op))
	}
	s.AddTool(MerlinChainInfoTool, h.HandleMerlinChainInfo)

	logger.Info("Registered MCP tools", zap.Int("count", len(operation.Catalog())+1))
	return s
}
