package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// InsertAnchorReceipt persists a confirmed on-chain write. Receipts are
// immutable; one row per record hash.
func (r *Repository) InsertAnchorReceipt(ctx context.Context, recordHash string, receipt model.AnchorReceipt) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_anchor_receipt", err, start)
	}()

	const query = `
INSERT INTO trace_anchor_receipts (
	record_hash,
	tx_id,
	block_number,
	gas_used,
	contract_address,
	anchored_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare anchor receipt batch: %w", err)
	}

	if err = batch.Append(
		recordHash,
		receipt.TransactionID,
		receipt.BlockNumber,
		receipt.GasUsed,
		receipt.ContractAddress,
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("append anchor receipt: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert anchor receipt: %w", err)
	}
	return nil
}
