package usecase

import (
	"context"
	"encoding/json"

	"github.com/imstevez/blocks-mcp/internal/entity"
)

// ChainRegistry defines the interface for fetching chain metadata from the
// remote chain registry.
type ChainRegistry interface {
	GetChain(ctx context.Context, chainID int64) (entity.Chain, error)
}

// ChainCache defines the interface for caching resolved chain records.
// Implementations must be safe for concurrent use.
type ChainCache interface {
	GetChain(ctx context.Context, chainID int64) (entity.Chain, bool)
	SetChain(ctx context.Context, chainID int64, chain entity.Chain)
}

// ExplorerGateway issues a single GET against an explorer API and returns the
// raw JSON body.
type ExplorerGateway interface {
	Get(ctx context.Context, baseURL, path string, query map[string]string) (json.RawMessage, error)
}

// ExplorerUseCase defines the explorer related use cases: resolving a chain id
// to its explorer base URL and forwarding API requests to it.
type ExplorerUseCase interface {
	ResolveExplorerURL(ctx context.Context, chainID int64) (string, error)
	Query(ctx context.Context, chainID int64, path string, query map[string]string) (json.RawMessage, error)
}
