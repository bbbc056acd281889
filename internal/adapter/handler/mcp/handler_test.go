package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imstevez/blocks-mcp/internal/operation"
	"github.com/imstevez/blocks-mcp/internal/pkg/apperrors"
)

type fakeUseCase struct {
	gotChainID int64
	gotPath    string
	gotQuery   map[string]string
	result     json.RawMessage
	err        error
}

func (f *fakeUseCase) ResolveExplorerURL(_ context.Context, chainID int64) (string, error) {
	return "https://eth.blockscout.com/", nil
}

func (f *fakeUseCase) Query(_ context.Context, chainID int64, path string, query map[string]string) (json.RawMessage, error) {
	f.gotChainID = chainID
	f.gotPath = path
	f.gotQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func findOperation(t *testing.T, name string) operation.Operation {
	t.Helper()
	for _, op := range operation.Catalog() {
		if op.Name == name {
			return op
		}
	}
	t.Fatalf("operation %q not in catalog", name)
	return operation.Operation{}
}

func TestBuildTool_SchemaFromCatalog(t *testing.T) {
	tool := BuildTool(findOperation(t, "get_address_token_transfers"))

	assert.Equal(t, "get_address_token_transfers", tool.Name)
	assert.Contains(t, tool.InputSchema.Properties, "chain_id")
	assert.Contains(t, tool.InputSchema.Properties, "address_hash")
	assert.Contains(t, tool.InputSchema.Properties, "type")
	assert.Contains(t, tool.InputSchema.Properties, "filter")
	assert.Contains(t, tool.InputSchema.Properties, "token")
	assert.ElementsMatch(t, []string{"chain_id", "address_hash"}, tool.InputSchema.Required)
}

func TestBuildTool_RequiredFilter(t *testing.T) {
	tool := BuildTool(findOperation(t, "search"))
	assert.ElementsMatch(t, []string{"chain_id", "q"}, tool.InputSchema.Required)
}

func TestHandle_BuildsPathAndQuery(t *testing.T) {
	uc := &fakeUseCase{result: json.RawMessage(`{"items":[]}`)}
	h := NewToolHandler(uc, zap.NewNop())

	op := findOperation(t, "get_address_token_transfers")
	result, err := h.Handle(op)(context.Background(), callRequest(op.Name, map[string]any{
		"chain_id":     float64(1),
		"address_hash": "0xabc",
		"type":         "ERC-20",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, int64(1), uc.gotChainID)
	assert.Equal(t, "addresses/0xabc/token-transfers", uc.gotPath)
	assert.Equal(t, "ERC-20", uc.gotQuery["type"])
	assert.Equal(t, "", uc.gotQuery["filter"])
	assert.JSONEq(t, `{"items":[]}`, textContent(t, result))
}

func TestHandle_NumberSlot(t *testing.T) {
	uc := &fakeUseCase{result: json.RawMessage(`{}`)}
	h := NewToolHandler(uc, zap.NewNop())

	op := findOperation(t, "get_token_instance_info")
	result, err := h.Handle(op)(context.Background(), callRequest(op.Name, map[string]any{
		"chain_id":      float64(4200),
		"token_address": "0xdead",
		"token_id":      float64(42),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "tokens/0xdead/instances/42", uc.gotPath)
}

func TestHandle_MissingChainID(t *testing.T) {
	h := NewToolHandler(&fakeUseCase{}, zap.NewNop())

	op := findOperation(t, "get_chain_stats")
	result, err := h.Handle(op)(context.Background(), callRequest(op.Name, map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandle_MissingRequiredFilter(t *testing.T) {
	uc := &fakeUseCase{result: json.RawMessage(`{}`)}
	h := NewToolHandler(uc, zap.NewNop())

	op := findOperation(t, "search")
	result, err := h.Handle(op)(context.Background(), callRequest(op.Name, map[string]any{
		"chain_id": float64(1),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandle_UseCaseErrorBecomesToolError(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("%w: status 500", apperrors.ErrRequestFailed)}
	h := NewToolHandler(uc, zap.NewNop())

	op := findOperation(t, "get_chain_stats")
	result, err := h.Handle(op)(context.Background(), callRequest(op.Name, map[string]any{
		"chain_id": float64(1),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleMerlinChainInfo(t *testing.T) {
	h := NewToolHandler(&fakeUseCase{}, zap.NewNop())

	result, err := h.HandleMerlinChainInfo(context.Background(), callRequest("get_merlin_chain_info", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &info))
	assert.Equal(t, "4200", info["chain_id"])
	assert.Equal(t, "BTC", info["native_token_symbol"])
	assert.Equal(t, "18", info["native_token_decimals"])
}
