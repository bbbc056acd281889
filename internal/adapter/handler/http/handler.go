package http

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/imstevez/blocks-mcp/internal/pkg/apperrors"
	"github.com/imstevez/blocks-mcp/internal/usecase"
)

// StatusHandler serves the diagnostics HTTP endpoints. It sits next to the
// MCP transport and is read-only: health plus explorer resolution lookups.
type StatusHandler struct {
	useCase usecase.ExplorerUseCase
	logger  *zap.Logger
}

func NewStatusHandler(uc usecase.ExplorerUseCase, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		useCase: uc,
		logger:  logger.Named("StatusHandler"),
	}
}

// RegisterRoutes sets up the diagnostics routes and the health check.
func (h *StatusHandler) RegisterRoutes(r *router.Router) {
	r.GET("/health", h.Health)
	r.GET("/chains/{chainId:[0-9]+}/explorer", h.GetChainExplorer)
}

func (h *StatusHandler) Health(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString("OK")
}

// GetChainExplorer resolves a chain id to its explorer base URL and reports it.
func (h *StatusHandler) GetChainExplorer(ctx *fasthttp.RequestCtx) {
	chainIDStr, ok := ctx.UserValue("chainId").(string)
	if !ok {
		h.logger.Error("Failed to get chainId from context")
		ctx.Error("Bad Request: Invalid chainId format", fasthttp.StatusBadRequest)
		return
	}

	chainID, err := strconv.ParseInt(chainIDStr, 10, 64)
	if err != nil {
		h.logger.Error("Failed to parse chainId", zap.String("chainIdStr", chainIDStr), zap.Error(err))
		ctx.Error("Bad Request: Invalid chainId", fasthttp.StatusBadRequest)
		return
	}

	url, err := h.useCase.ResolveExplorerURL(ctx, chainID)
	if err != nil {
		h.logger.Warn("Failed to resolve explorer for chain",
			zap.Int64("chainId", chainID), zap.Error(err))
		switch {
		case errors.Is(err, apperrors.ErrNoExplorerAvailable):
			ctx.Error("Not Found", fasthttp.StatusNotFound)
		case errors.Is(err, apperrors.ErrChainLookupFailed):
			ctx.Error("Bad Gateway", fasthttp.StatusBadGateway)
		default:
			ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		}
		return
	}

	ctx.SetContentType("application/json")
	err = json.NewEncoder(ctx).Encode(map[string]any{
		"chain_id":     chainID,
		"explorer_url": url,
	})
	if err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
