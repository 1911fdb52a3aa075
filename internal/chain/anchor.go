package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/model"
	"github.com/tracefield/traceanchor-backend/pkg/safe"
)

// Anchor submits a (recordHash, metadataCid) pair to the anchoring contract
// and waits for confirmation. The contract rejects a hash that already
// exists; that surfaces as ErrDuplicateRecord and means the work already
// happened, so callers should look up the existing anchor instead of
// retrying.
func (c *Client) Anchor(ctx context.Context, recordHash, metadataCid string) (receipt model.AnchorReceipt, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("anchor", err, started)
	}()

	word, err := c.hashWord(recordHash)
	if err != nil {
		return model.AnchorReceipt{}, err
	}

	// Cheap duplicate guard before any gas is spent. The contract-level
	// revert remains the authoritative backstop.
	exists, err := c.exists(ctx, word)
	if err != nil {
		return model.AnchorReceipt{}, err
	}
	if exists {
		return model.AnchorReceipt{}, fmt.Errorf("record %s: %w", recordHash, model.ErrDuplicateRecord)
	}

	calldata, err := c.abi.Pack("storeRecord", word, metadataCid)
	if err != nil {
		return model.AnchorReceipt{}, fmt.Errorf("pack storeRecord: %w", err)
	}

	chainID, err := c.signerChainID(ctx)
	if err != nil {
		return model.AnchorReceipt{}, err
	}
	nonce, err := c.backend.PendingNonceAt(ctx, c.address)
	if err != nil {
		return model.AnchorReceipt{}, classify("pending_nonce", err)
	}
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return model.AnchorReceipt{}, classify("suggest_gas_price", err)
	}
	gasLimit, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From: c.address,
		To:   &c.contract,
		Data: calldata,
	})
	if err != nil {
		return model.AnchorReceipt{}, classify("estimate_gas", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.contract,
		Gas:      gasLimit + gasLimit/5,
		GasPrice: gasPrice,
		Data:     calldata,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.key)
	if err != nil {
		return model.AnchorReceipt{}, fmt.Errorf("sign transaction: %w", err)
	}

	if err = c.backend.SendTransaction(ctx, signed); err != nil {
		return model.AnchorReceipt{}, classify("send_transaction", err)
	}

	txHash := signed.Hash()
	c.logger.Info("anchor transaction submitted",
		zap.String("record_hash", recordHash),
		zap.String("metadata_cid", metadataCid),
		zap.String("tx_id", txHash.Hex()),
	)

	mined, err := c.waitMined(ctx, txHash)
	if err != nil {
		return model.AnchorReceipt{}, err
	}
	if mined.Status != types.ReceiptStatusSuccessful {
		return model.AnchorReceipt{}, fmt.Errorf("transaction %s reverted: %w", txHash.Hex(), model.ErrTransactionRejected)
	}

	blockNumber, err := safe.Uint64FromBig(mined.BlockNumber)
	if err != nil {
		return model.AnchorReceipt{}, fmt.Errorf("receipt block number: %w", err)
	}
	c.metrics.ObserveGasUsed(mined.GasUsed)

	c.logger.Info("anchor transaction confirmed",
		zap.String("tx_id", txHash.Hex()),
		zap.Uint64("block_number", blockNumber),
		zap.Uint64("gas_used", mined.GasUsed),
	)

	return model.AnchorReceipt{
		TransactionID:   txHash.Hex(),
		BlockNumber:     blockNumber,
		GasUsed:         mined.GasUsed,
		ContractAddress: c.contract.Hex(),
	}, nil
}

// waitMined polls for the transaction receipt until it is mined or the
// confirmation timeout elapses. Once submitted, the transaction is never
// abandoned early: a caller crash during this wait is recovered via
// Exists() reconciliation, not by resubmitting blindly.
func (c *Client) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.cfg.ConfirmTimeout)
	defer cancel()

	for {
		mined, err := c.backend.TransactionReceipt(waitCtx, txHash)
		if err == nil {
			return mined, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, classify("transaction_receipt", err)
		}

		if sleepErr := c.sleep(waitCtx, c.cfg.ConfirmPollInterval); sleepErr != nil {
			return nil, &model.TransientChainError{
				Op:  "confirm",
				Err: fmt.Errorf("transaction %s not confirmed: %w", txHash.Hex(), sleepErr),
			}
		}
	}
}
