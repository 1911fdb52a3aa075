package service

import (
	"context"

	"go.uber.org/zap"
)

// BlockchainStatus is the operator-facing view of the anchoring setup.
type BlockchainStatus struct {
	Configured      bool   `json:"configured"`
	WalletAddress   string `json:"walletAddress,omitempty"`
	ContractAddress string `json:"contractAddress,omitempty"`
	BalanceWei      string `json:"balanceWei,omitempty"`
	Error           string `json:"error,omitempty"`
}

// StatusService reports signer and contract state. The chain client is
// resolved per request so missing configuration surfaces here as an
// unconfigured status instead of failing the process at start.
type StatusService struct {
	chain  func() (ChainStatus, error)
	logger *zap.Logger
}

func NewStatusService(chain func() (ChainStatus, error), logger *zap.Logger) *StatusService {
	return &StatusService{chain: chain, logger: logger}
}

func (s *StatusService) Status(ctx context.Context) BlockchainStatus {
	chain, err := s.chain()
	if err != nil {
		return BlockchainStatus{Configured: false, Error: err.Error()}
	}

	status := BlockchainStatus{
		Configured:      true,
		WalletAddress:   chain.WalletAddress(),
		ContractAddress: chain.ContractAddress(),
	}

	balance, err := chain.Balance(ctx)
	if err != nil {
		s.logger.Warn("signer balance unavailable", zap.Error(err))
		status.Error = err.Error()
		return status
	}
	status.BalanceWei = balance.String()
	return status
}
