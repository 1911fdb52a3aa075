package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// AnchorEvent locates the transaction that anchored a record hash through
// the RecordStored event log. This recovers the transaction identity when a
// duplicate is adopted or a crashed submission is reconciled and no local
// receipt survives; gas usage is not part of the log, so the receipt
// carries only transaction, block and contract.
func (c *Client) AnchorEvent(ctx context.Context, recordHash string) (receipt model.AnchorReceipt, found bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("anchor_event", err, started)
	}()

	word, err := c.hashWord(recordHash)
	if err != nil {
		return model.AnchorReceipt{}, false, err
	}

	logs, err := c.backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		Addresses: []common.Address{c.contract},
		Topics: [][]common.Hash{
			{c.abi.Events["RecordStored"].ID},
			{word},
		},
	})
	if err != nil {
		return model.AnchorReceipt{}, false, classify("anchor_event", err)
	}
	if len(logs) == 0 {
		return model.AnchorReceipt{}, false, nil
	}

	// The duplicate guard means at most one log per hash.
	stored := logs[len(logs)-1]
	return model.AnchorReceipt{
		TransactionID:   stored.TxHash.Hex(),
		BlockNumber:     stored.BlockNumber,
		ContractAddress: c.contract.Hex(),
	}, true, nil
}
