package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// AnchorReceiptByRecordHash returns the persisted receipt for a record
// hash. The second return reports whether one exists.
func (r *Repository) AnchorReceiptByRecordHash(ctx context.Context, recordHash string) (model.AnchorReceipt, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("anchor_receipt_by_record_hash", err, start)
	}()

	const query = `
SELECT
	tx_id,
	block_number,
	gas_used,
	contract_address
FROM trace_anchor_receipts
WHERE record_hash = ?
ORDER BY anchored_at DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, recordHash)
	if err != nil {
		return model.AnchorReceipt{}, false, fmt.Errorf("query anchor receipt: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return model.AnchorReceipt{}, false, nil
	}

	var receipt model.AnchorReceipt
	if err = rows.Scan(
		&receipt.TransactionID,
		&receipt.BlockNumber,
		&receipt.GasUsed,
		&receipt.ContractAddress,
	); err != nil {
		return model.AnchorReceipt{}, false, fmt.Errorf("scan anchor receipt: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.AnchorReceipt{}, false, fmt.Errorf("iterate anchor receipt: %w", err)
	}
	return receipt, true, nil
}
