package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/imstevez/blocks-mcp/internal/config"
	"github.com/imstevez/blocks-mcp/internal/entity"
	"github.com/imstevez/blocks-mcp/internal/pkg/apperrors"
	"github.com/imstevez/blocks-mcp/internal/usecase"
)

// Compile-time check
var _ usecase.ChainRegistry = (*registryRepo)(nil)

type registryRepo struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

func NewRegistryRepo(cfg config.RegistryConfig, logger *zap.Logger) usecase.ChainRegistry {
	return &registryRepo{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(cfg.URL, "/"),
		timeout: cfg.GetTimeout(),
		logger:  logger.Named("RegistryRepo"),
	}
}

// GetChain fetches a single chain's metadata from the registry.
func (r *registryRepo) GetChain(ctx context.Context, chainID int64) (entity.Chain, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	url := fmt.Sprintf("%s/api/chains/%d", r.baseURL, chainID)
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	// fasthttp does not take a context; honor a shorter ctx deadline via the
	// per-request timeout instead.
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}

	r.logger.Debug("Fetching chain from registry",
		zap.Int64("chainId", chainID),
		zap.String("url", url),
		zap.Duration("timeout", timeout))

	if err := r.client.DoTimeout(req, resp, timeout); err != nil {
		r.logger.Error("Failed to execute request to registry",
			zap.Int64("chainId", chainID), zap.Error(err))
		return entity.Chain{}, fmt.Errorf("%w: failed to reach registry: %v",
			apperrors.ErrChainLookupFailed, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		r.logger.Error("Registry returned non-OK status",
			zap.Int64("chainId", chainID),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("body", resp.Body()))
		return entity.Chain{}, fmt.Errorf("%w: registry returned status %d",
			apperrors.ErrChainLookupFailed, resp.StatusCode())
	}

	var chain entity.Chain
	if err := json.Unmarshal(resp.Body(), &chain); err != nil {
		r.logger.Error("Failed to unmarshal registry response",
			zap.Int64("chainId", chainID), zap.Error(err))
		return entity.Chain{}, fmt.Errorf("%w: failed to parse registry response: %v",
			apperrors.ErrChainLookupFailed, err)
	}

	r.logger.Info("Successfully fetched chain from registry",
		zap.Int64("chainId", chainID), zap.String("name", chain.Name))
	return chain, nil
}
