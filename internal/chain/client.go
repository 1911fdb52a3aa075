package chain

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/clock"
	"github.com/tracefield/traceanchor-backend/internal/model"
)

const (
	defaultExplorerBaseURL     = "https://sepolia.basescan.org"
	defaultConfirmPollInterval = 2 * time.Second
	defaultConfirmTimeout      = 2 * time.Minute
)

// Config holds the settings of the anchor client.
type Config struct {
	// RPCEndpoint is the chain JSON-RPC URL.
	RPCEndpoint string
	// PrivateKey is the hex-encoded signer key, with or without 0x.
	PrivateKey string
	// ContractAddress is the deployed anchoring contract.
	ContractAddress string
	// ExplorerBaseURL builds human-facing transaction links.
	ExplorerBaseURL string
	// ConfirmPollInterval is the receipt poll cadence while waiting for a
	// submitted transaction to be mined.
	ConfirmPollInterval time.Duration
	// ConfirmTimeout bounds the whole confirmation wait.
	ConfirmTimeout time.Duration
}

// Client submits anchor transactions and reads anchored records. The signer
// and connection are process-wide and safe for concurrent use.
type Client struct {
	backend  Backend
	abi      abi.ABI
	key      *ecdsa.PrivateKey
	address  common.Address
	contract common.Address
	cfg      Config
	metrics  Metrics
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error

	mu      sync.Mutex
	chainID *big.Int
}

// New validates the configuration, dials the RPC endpoint and constructs a
// Client. Missing settings surface as ConfigurationError so a lazily built
// client fails at first use with a named setting.
func New(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.RPCEndpoint == "" {
		return nil, &model.ConfigurationError{Name: "chain rpc endpoint"}
	}

	backend, err := ethclient.Dial(cfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("dial chain rpc: %w", err)
	}

	return newClient(backend, cfg, metrics, logger)
}

func newClient(backend Backend, cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.PrivateKey == "" {
		return nil, &model.ConfigurationError{Name: "chain signer key"}
	}
	if cfg.ContractAddress == "" {
		return nil, &model.ConfigurationError{Name: "anchoring contract address"}
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", cfg.ContractAddress)
	}
	if cfg.ExplorerBaseURL == "" {
		cfg.ExplorerBaseURL = defaultExplorerBaseURL
	}
	if cfg.ConfirmPollInterval <= 0 {
		cfg.ConfirmPollInterval = defaultConfirmPollInterval
	}
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = defaultConfirmTimeout
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(anchorContractABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	return &Client{
		backend:  backend,
		abi:      parsedABI,
		key:      key,
		address:  crypto.PubkeyToAddress(key.PublicKey),
		contract: common.HexToAddress(cfg.ContractAddress),
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
		sleep:    clock.SleepWithContext,
	}, nil
}

// WalletAddress returns the signer address.
func (c *Client) WalletAddress() string {
	return c.address.Hex()
}

// ContractAddress returns the anchoring contract address.
func (c *Client) ContractAddress() string {
	return c.contract.Hex()
}

// ExplorerURL builds the public explorer link for a transaction.
func (c *Client) ExplorerURL(txID string) string {
	return c.cfg.ExplorerBaseURL + "/tx/" + txID
}

// Balance returns the signer balance in wei.
func (c *Client) Balance(ctx context.Context) (balance *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("balance", err, started)
	}()

	balance, err = c.backend.BalanceAt(ctx, c.address, nil)
	if err != nil {
		return nil, classify("balance", err)
	}
	return balance, nil
}

// hashWord parses a 64-character hex record hash into the bytes32 word the
// contract is keyed by.
func (c *Client) hashWord(recordHash string) (common.Hash, error) {
	trimmed := strings.TrimPrefix(recordHash, "0x")
	raw, err := hex.DecodeString(trimmed)
	if err != nil || len(raw) != common.HashLength {
		return common.Hash{}, &model.ValidationError{Field: "recordHash", Reason: "must be 32 hex-encoded bytes"}
	}
	return common.BytesToHash(raw), nil
}

func (c *Client) signerChainID(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chainID != nil {
		return c.chainID, nil
	}

	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, classify("chain_id", err)
	}
	c.chainID = id
	return id, nil
}
