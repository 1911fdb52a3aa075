package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// InsertProductScans batch-writes track-page scan events.
func (r *Repository) InsertProductScans(ctx context.Context, scans []model.ProductScan) error {
	if len(scans) == 0 {
		return nil
	}

	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_product_scans", err, start)
	}()

	const query = `
INSERT INTO trace_product_scans (
	product_id,
	scanned_at,
	referrer,
	user_agent,
	client_ip
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare product scans batch: %w", err)
	}

	for _, scan := range scans {
		if err = batch.Append(
			scan.ProductID,
			scan.ScannedAt,
			scan.Referrer,
			scan.UserAgent,
			scan.ClientIP,
		); err != nil {
			return fmt.Errorf("append product scan: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert product scans: %w", err)
	}
	return nil
}
