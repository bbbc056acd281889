package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/imstevez/blocks-mcp/internal/pkg/apperrors"
)

// Chain id 4200 (Merlin) is pinned to a fixed explorer URL and never touches
// the cache or the registry.
const (
	merlinChainID     = 4200
	merlinExplorerURL = "https://scan.merlinverify.com/"
)

// Compile-time check to ensure explorerUseCase implements ExplorerUseCase
var _ ExplorerUseCase = (*explorerUseCase)(nil)

type explorerUseCase struct {
	registry ChainRegistry
	cache    ChainCache
	gateway  ExplorerGateway
	logger   *zap.Logger
}

func NewExplorerUseCase(
	registry ChainRegistry,
	cache ChainCache,
	gateway ExplorerGateway,
	logger *zap.Logger,
) ExplorerUseCase {
	return &explorerUseCase{
		registry: registry,
		cache:    cache,
		gateway:  gateway,
		logger:   logger.Named("ExplorerUseCase"),
	}
}

// ResolveExplorerURL maps a chain id to its primary explorer base URL,
// consulting the registry on first use and serving from cache afterwards.
//
// Failed registry lookups are not cached, so a later call for the same chain
// id fetches again. A record with no explorers IS cached; such a chain keeps
// failing without further registry traffic. Two concurrent first-time
// resolutions of the same id may both fetch; the last write wins.
func (uc *explorerUseCase) ResolveExplorerURL(ctx context.Context, chainID int64) (string, error) {
	if chainID == merlinChainID {
		return merlinExplorerURL, nil
	}

	if chain, found := uc.cache.GetChain(ctx, chainID); found {
		uc.logger.Debug("Cache hit for chain", zap.Int64("chainId", chainID))
		url, ok := chain.ExplorerURL()
		if !ok {
			return "", fmt.Errorf("%w: chain %d", apperrors.ErrNoExplorerAvailable, chainID)
		}
		return url, nil
	}
	uc.logger.Debug("Cache miss for chain", zap.Int64("chainId", chainID))

	chain, err := uc.registry.GetChain(ctx, chainID)
	if err != nil {
		uc.logger.Error("Failed to fetch chain from registry",
			zap.Int64("chainId", chainID), zap.Error(err))
		return "", err
	}

	uc.cache.SetChain(ctx, chainID, chain)
	uc.logger.Info("Cached chain record",
		zap.Int64("chainId", chainID),
		zap.String("name", chain.Name),
		zap.Int("explorerCount", len(chain.Explorers)))

	url, ok := chain.ExplorerURL()
	if !ok {
		return "", fmt.Errorf("%w: chain %d", apperrors.ErrNoExplorerAvailable, chainID)
	}
	return url, nil
}

// Query resolves the chain's explorer base URL and forwards a single GET to
// {base}api/v2/{path} with the given query parameters. The JSON body is
// returned verbatim.
func (uc *explorerUseCase) Query(ctx context.Context, chainID int64, path string, query map[string]string) (json.RawMessage, error) {
	baseURL, err := uc.ResolveExplorerURL(ctx, chainID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	return uc.gateway.Get(ctx, baseURL, path, query)
}
