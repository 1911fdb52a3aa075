package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// CompletedStagesByProduct returns the anchored stages of a product in
// record-timestamp order. This is the public timeline read.
func (r *Repository) CompletedStagesByProduct(ctx context.Context, productID string) ([]model.StageRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("completed_stages_by_product", err, start)
	}()

	const query = `
SELECT
	stage_id,` + stageRecordColumns + `
FROM trace_stage_records
WHERE product_id = ?
GROUP BY product_id, stage_id
HAVING status = 'completed'
ORDER BY timestamp ASC`

	rows, err := r.conn.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("query completed stages: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var records []model.StageRecord
	for rows.Next() {
		record, scanErr := scanStageRecord(rows)
		if scanErr != nil {
			err = scanErr
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed stages: %w", err)
	}
	return records, nil
}
