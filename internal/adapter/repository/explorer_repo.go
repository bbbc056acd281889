package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/imstevez/blocks-mcp/internal/config"
	"github.com/imstevez/blocks-mcp/internal/pkg/apperrors"
	"github.com/imstevez/blocks-mcp/internal/usecase"
)

// Compile-time check
var _ usecase.ExplorerGateway = (*explorerRepo)(nil)

type explorerRepo struct {
	client  *fasthttp.Client
	timeout time.Duration
	logger  *zap.Logger
}

func NewExplorerRepo(cfg config.ExplorerConfig, logger *zap.Logger) usecase.ExplorerGateway {
	return &explorerRepo{
		client:  &fasthttp.Client{},
		timeout: cfg.GetTimeout(),
		logger:  logger.Named("ExplorerRepo"),
	}
}

// Get issues a single GET to {baseURL}api/v2/{path} with the non-empty query
// values attached, and returns the JSON body verbatim.
func (r *explorerRepo) Get(ctx context.Context, baseURL, path string, query map[string]string) (json.RawMessage, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(baseURL + "api/v2/" + path)
	req.Header.SetMethod(fasthttp.MethodGet)

	args := req.URI().QueryArgs()
	for k, v := range query {
		if v == "" {
			continue
		}
		args.Set(k, v)
	}

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}

	r.logger.Debug("Forwarding explorer request",
		zap.String("url", req.URI().String()),
		zap.Duration("timeout", timeout))

	if err := r.client.DoTimeout(req, resp, timeout); err != nil {
		r.logger.Error("Failed to execute explorer request",
			zap.String("url", req.URI().String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRequestFailed, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		r.logger.Error("Explorer returned non-OK status",
			zap.String("url", req.URI().String()),
			zap.Int("statusCode", resp.StatusCode()))
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrRequestFailed, resp.StatusCode())
	}

	// resp.Body() is only valid until the response is released.
	body := append([]byte(nil), resp.Body()...)
	if !json.Valid(body) {
		r.logger.Error("Explorer returned invalid JSON",
			zap.String("url", req.URI().String()))
		return nil, fmt.Errorf("%w: body is not valid JSON", apperrors.ErrDecodeFailed)
	}

	return body, nil
}
