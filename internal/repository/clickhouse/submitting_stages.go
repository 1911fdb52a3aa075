package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// SubmittingStages returns stages whose anchor transaction was in flight
// when the process last stopped. Startup reconciliation checks these
// against the chain instead of resubmitting blindly.
func (r *Repository) SubmittingStages(ctx context.Context) ([]model.StageRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("submitting_stages", err, start)
	}()

	const query = `
SELECT
	stage_id,` + stageRecordColumns + `
FROM trace_stage_records
GROUP BY product_id, stage_id
HAVING status = 'submitting'
ORDER BY updated_at ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query submitting stages: %w", err)
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
		return nil, fmt.Errorf("iterate submitting stages: %w", err)
	}
	return records, nil
}
