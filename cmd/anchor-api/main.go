package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/chain"
	"github.com/tracefield/traceanchor-backend/internal/ipfs"
	"github.com/tracefield/traceanchor-backend/internal/metrics"
	"github.com/tracefield/traceanchor-backend/internal/repository/clickhouse"
	"github.com/tracefield/traceanchor-backend/internal/service"
	"github.com/tracefield/traceanchor-backend/internal/transport"
	"github.com/tracefield/traceanchor-backend/internal/verify"
	"github.com/tracefield/traceanchor-backend/pkg/batcher"
	"github.com/tracefield/traceanchor-backend/pkg/lazy"
)

type config struct {
	Addr               string `long:"addr" env:"ANCHOR_API_ADDR" description:"http listen addr" default:":8000"`
	ClickhouseDSN      string `long:"clickhouse-dsn" env:"ANCHOR_API_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	MetadataSchemaPath string `long:"metadata-schema" env:"ANCHOR_API_METADATA_SCHEMA" description:"path to the stage metadata JSON schema"`
	VerifyWorkers      int    `long:"verify-workers" env:"ANCHOR_API_VERIFY_WORKERS" description:"concurrent per-stage verifications on timeline reads" default:"4"`

	ScanFlushSize     int           `long:"scan-flush-size" env:"ANCHOR_API_SCAN_FLUSH_SIZE" description:"scan events per batch insert" default:"100"`
	ScanFlushInterval time.Duration `long:"scan-flush-interval" env:"ANCHOR_API_SCAN_FLUSH_INTERVAL" description:"max time a scan event waits in the buffer" default:"5s"`
	ScanFlushRPS      int           `long:"scan-flush-rps" env:"ANCHOR_API_SCAN_FLUSH_RPS" description:"max batch inserts per second" default:"10"`

	ChainRPCURL          string        `long:"chain-rpc-url" env:"ANCHOR_API_CHAIN_RPC_URL" description:"EVM JSON-RPC endpoint"`
	ChainPrivateKey      string        `long:"chain-private-key" env:"ANCHOR_API_CHAIN_PRIVATE_KEY" description:"hex signer key"`
	ChainContract        string        `long:"chain-contract" env:"ANCHOR_API_CHAIN_CONTRACT" description:"anchoring contract address"`
	ChainExplorerBaseURL string        `long:"chain-explorer-base-url" env:"ANCHOR_API_CHAIN_EXPLORER_BASE_URL" description:"block explorer base url"`
	ChainConfirmPoll     time.Duration `long:"chain-confirm-poll" env:"ANCHOR_API_CHAIN_CONFIRM_POLL" description:"receipt poll cadence" default:"2s"`
	ChainConfirmTimeout  time.Duration `long:"chain-confirm-timeout" env:"ANCHOR_API_CHAIN_CONFIRM_TIMEOUT" description:"max confirmation wait" default:"2m"`

	PinataJWT         string        `long:"pinata-jwt" env:"ANCHOR_API_PINATA_JWT" description:"pinning service credential"`
	PinataGatewayHost string        `long:"pinata-gateway-host" env:"ANCHOR_API_PINATA_GATEWAY_HOST" description:"dedicated gateway hostname"`
	PinataAPIBaseURL  string        `long:"pinata-api-base-url" env:"ANCHOR_API_PINATA_API_BASE_URL" description:"pinning api base url override"`
	PinataUploadRPS   int           `long:"pinata-upload-rps" env:"ANCHOR_API_PINATA_UPLOAD_RPS" description:"upload rate limit" default:"5"`
	PinataMaxRetries  uint64        `long:"pinata-max-retries" env:"ANCHOR_API_PINATA_MAX_RETRIES" description:"upload retries after the first attempt" default:"3"`
	PinataHTTPTimeout time.Duration `long:"pinata-http-timeout" env:"ANCHOR_API_PINATA_HTTP_TIMEOUT" description:"single upload request timeout" default:"30s"`
	GatewayTimeout    time.Duration `long:"gateway-timeout" env:"ANCHOR_API_GATEWAY_TIMEOUT" description:"per-gateway retrieval timeout" default:"10s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("anchor api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	var schema *jsonschema.Schema
	if cfg.MetadataSchemaPath != "" {
		schema, err = jsonschema.Compile(cfg.MetadataSchemaPath)
		if err != nil {
			return fmt.Errorf("compile metadata schema: %w", err)
		}
	}

	// The chain and pinning clients are built on first use so the read
	// surfaces stay up when anchoring credentials are absent.
	anchorer := &lazyChain{client: lazy.New(func() (*chain.Client, error) {
		return chain.New(chain.Config{
			RPCEndpoint:         cfg.ChainRPCURL,
			PrivateKey:          cfg.ChainPrivateKey,
			ContractAddress:     cfg.ChainContract,
			ExplorerBaseURL:     cfg.ChainExplorerBaseURL,
			ConfirmPollInterval: cfg.ChainConfirmPoll,
			ConfirmTimeout:      cfg.ChainConfirmTimeout,
		}, metrics.NewChainClient(), logger)
	})}
	store := &lazyStore{client: lazy.New(func() (*ipfs.Client, error) {
		return ipfs.NewClient(ipfs.Config{
			JWT:         cfg.PinataJWT,
			GatewayHost: cfg.PinataGatewayHost,
			APIBaseURL:  cfg.PinataAPIBaseURL,
			UploadRPS:   cfg.PinataUploadRPS,
			MaxRetries:  cfg.PinataMaxRetries,
			HTTPTimeout: cfg.PinataHTTPTimeout,
		}, metrics.NewIPFSClient(), logger)
	})}

	gateways := ipfs.DefaultPublicGateways
	if cfg.PinataGatewayHost != "" {
		gateways = append([]string{fmt.Sprintf("https://%s/ipfs/", cfg.PinataGatewayHost)}, gateways...)
	}
	fetcher, err := ipfs.NewGatewayFetcher(gateways, cfg.GatewayTimeout, metrics.NewIPFSClient(), logger)
	if err != nil {
		return fmt.Errorf("init gateway fetcher: %w", err)
	}

	pipelineMetrics := metrics.NewPipeline()

	scans := batcher.New(logger, repo.InsertProductScans, cfg.ScanFlushSize, cfg.ScanFlushInterval, cfg.ScanFlushRPS)
	scans.OnFlush(pipelineMetrics.ObserveScanFlush)
	scans.Start(ctx)
	defer scans.Stop()

	pipeline := service.NewPipelineService(repo, store, anchorer, schema, pipelineMetrics, logger)
	track := service.NewTrackService(repo, verify.NewEngine(fetcher, anchorer, logger), anchorer, scans, cfg.VerifyWorkers, pipelineMetrics, logger)
	status := service.NewStatusService(func() (service.ChainStatus, error) {
		client, err := anchorer.client.Get()
		if err != nil {
			return nil, err
		}
		return client, nil
	}, logger)

	if err := pipeline.Recover(ctx); err != nil {
		logger.Error("startup stage reconciliation failed", zap.Error(err))
	}

	mux := transport.NewHandler(pipeline, track, status, logger).Router()
	mux.Handle("GET /metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
