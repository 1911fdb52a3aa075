package ipfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// DefaultPublicGateways are the fallback resolvers appended after the
// dedicated gateway. Retrieval must never hinge on a single endpoint.
var DefaultPublicGateways = []string{
	"https://gateway.pinata.cloud/ipfs/",
	"https://ipfs.io/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
}

const defaultGatewayTimeout = 10 * time.Second

// GatewayFetcher resolves CIDs to bytes by trying an ordered list of
// independent gateways, short-circuiting on the first success.
type GatewayFetcher struct {
	gateways       []string
	attemptTimeout time.Duration
	httpClient     *http.Client
	metrics        Metrics
	logger         *zap.Logger
}

// NewGatewayFetcher constructs a GatewayFetcher. At least two gateways are
// required: a single-gateway dependency defeats the durability claim.
func NewGatewayFetcher(gateways []string, attemptTimeout time.Duration, metrics Metrics, logger *zap.Logger) (*GatewayFetcher, error) {
	if len(gateways) < 2 {
		return nil, fmt.Errorf("at least two gateways are required, got %d", len(gateways))
	}
	if attemptTimeout <= 0 {
		attemptTimeout = defaultGatewayTimeout
	}

	normalized := make([]string, len(gateways))
	for i, gw := range gateways {
		if !strings.HasSuffix(gw, "/") {
			gw += "/"
		}
		normalized[i] = gw
	}

	return &GatewayFetcher{
		gateways:       normalized,
		attemptTimeout: attemptTimeout,
		httpClient:     &http.Client{},
		metrics:        metrics,
		logger:         logger,
	}, nil
}

// Fetch resolves a CID to its bytes. Each gateway attempt is bounded by the
// per-attempt timeout; a RetrievalError is returned only when every gateway
// failed.
func (f *GatewayFetcher) Fetch(ctx context.Context, contentID string) (data []byte, err error) {
	started := time.Now()
	defer func() {
		f.metrics.Observe("fetch", err, started)
	}()

	var attemptErrs []error
	for _, gateway := range f.gateways {
		if ctx.Err() != nil {
			attemptErrs = append(attemptErrs, ctx.Err())
			break
		}

		data, attemptErr := f.fetchFrom(ctx, gateway, contentID)
		f.metrics.ObserveGatewayAttempt(gateway, attemptErr)
		if attemptErr == nil {
			return data, nil
		}

		f.logger.Warn("gateway attempt failed",
			zap.String("gateway", gateway),
			zap.String("cid", contentID),
			zap.Error(attemptErr),
		)
		attemptErrs = append(attemptErrs, fmt.Errorf("%s: %w", gateway, attemptErr))
	}

	return nil, &model.RetrievalError{CID: contentID, Err: errors.Join(attemptErrs...)}
}

// FetchJSON resolves a CID and decodes the bytes into v.
func (f *GatewayFetcher) FetchJSON(ctx context.Context, contentID string, v any) error {
	data, err := f.Fetch(ctx, contentID)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &model.RetrievalError{CID: contentID, Err: fmt.Errorf("decode json: %w", err)}
	}
	return nil
}

func (f *GatewayFetcher) fetchFrom(ctx context.Context, gateway, contentID string) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, gateway+contentID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return data, nil
}
