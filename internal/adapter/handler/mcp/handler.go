package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/imstevez/blocks-mcp/internal/operation"
	"github.com/imstevez/blocks-mcp/internal/usecase"
)

// ToolHandler turns catalog operations into MCP tool handlers. One generic
// dispatch path serves every operation; the per-operation shape lives entirely
// in the catalog table.
type ToolHandler struct {
	useCase usecase.ExplorerUseCase
	logger  *zap.Logger
}

func NewToolHandler(uc usecase.ExplorerUseCase, logger *zap.Logger) *ToolHandler {
	return &ToolHandler{
		useCase: uc,
		logger:  logger.Named("ToolHandler"),
	}
}

// BuildTool converts one catalog operation into its MCP tool definition:
// chain_id plus the operation's identifier slots and query filters.
func BuildTool(op operation.Operation) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(op.Description),
		mcp.WithNumber("chain_id",
			mcp.Required(),
			mcp.Description("the chain id to query")),
	}

	for _, s := range op.Slots {
		if s.Kind == operation.SlotNumber {
			opts = append(opts, mcp.WithNumber(s.Name,
				mcp.Required(),
				mcp.Description(s.Description)))
			continue
		}
		opts = append(opts, mcp.WithString(s.Name,
			mcp.Required(),
			mcp.Description(s.Description)))
	}

	for _, f := range op.Filters {
		propOpts := []mcp.PropertyOption{mcp.Description(f.Description)}
		if f.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		opts = append(opts, mcp.WithString(f.Name, propOpts...))
	}

	return mcp.NewTool(op.Name, opts...)
}

// Handle returns the tool handler func for one catalog operation.
func (h *ToolHandler) Handle(op operation.Operation) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		chainID, err := request.RequireInt("chain_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		slots := make(map[string]string, len(op.Slots))
		for _, s := range op.Slots {
			if s.Kind == operation.SlotNumber {
				n, err := request.RequireInt(s.Name)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				slots[s.Name] = strconv.Itoa(n)
				continue
			}
			v, err := request.RequireString(s.Name)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			slots[s.Name] = v
		}

		path, err := op.BuildPath(slots)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		query := make(map[string]string, len(op.Filters))
		for _, f := range op.Filters {
			v := request.GetString(f.Name, "")
			if f.Required && v == "" {
				return mcp.NewToolResultError(
					fmt.Sprintf("required argument %q is missing or empty", f.Name)), nil
			}
			query[f.Name] = v
		}

		data, err := h.useCase.Query(ctx, int64(chainID), path, query)
		if err != nil {
			h.logger.Error("Tool call failed",
				zap.String("operation", op.Name),
				zap.Int("chainId", chainID),
				zap.Error(err))
			return mcp.NewToolResultError(err.Error()), nil
		}

		return jsonResult(data)
	}
}

// MerlinChainInfoTool reports static facts about the Merlin chain without any
// network access.
var MerlinChainInfoTool = mcp.NewTool("get_merlin_chain_info",
	mcp.WithDescription("Get Merlin chain info"),
)

func (h *ToolHandler) HandleMerlinChainInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := map[string]string{
		"chain_id":              "4200",
		"native_token_symbol":   "BTC",
		"native_token_decimals": "18",
		"note":                  "The native token on merlin is BTC, but the decimals of merlin BTC is 18, so 1 merlin BTC = 1 * 10^18 wei",
	}
	data, err := json.Marshal(info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(data)
}

// jsonResult pretty-prints an already validated JSON document as the tool's
// text content.
func jsonResult(data json.RawMessage) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
