package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

const stageRecordColumns = `
	product_id,
	argMax(stage_name, updated_at) AS stage_name,
	argMax(status, updated_at) AS status,
	argMax(image_url, updated_at) AS image_url,
	argMax(image_hash, updated_at) AS image_hash,
	argMax(image_cid, updated_at) AS image_cid,
	argMax(metadata_cid, updated_at) AS metadata_cid,
	argMax(record_hash, updated_at) AS record_hash,
	argMax(tx_id, updated_at) AS tx_id,
	argMax(latitude, updated_at) AS latitude,
	argMax(longitude, updated_at) AS longitude,
	argMax(timestamp, updated_at) AS timestamp,
	argMax(metadata, updated_at) AS metadata,
	max(updated_at) AS updated_at`

// StageRecord returns the latest version of a stage record. The second
// return reports whether any version exists.
func (r *Repository) StageRecord(ctx context.Context, productID, stageID string) (model.StageRecord, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("stage_record", err, start)
	}()

	const query = `
SELECT
	stage_id,` + stageRecordColumns + `
FROM trace_stage_records
WHERE product_id = ? AND stage_id = ?
GROUP BY product_id, stage_id`

	rows, err := r.conn.Query(ctx, query, productID, stageID)
	if err != nil {
		return model.StageRecord{}, false, fmt.Errorf("query stage record: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return model.StageRecord{}, false, nil
	}

	record, err := scanStageRecord(rows)
	if err != nil {
		return model.StageRecord{}, false, err
	}
	if err = rows.Err(); err != nil {
		return model.StageRecord{}, false, fmt.Errorf("iterate stage record: %w", err)
	}
	return record, true, nil
}

func scanStageRecord(rows Rows) (model.StageRecord, error) {
	var (
		record   model.StageRecord
		status   string
		metadata string
	)
	if err := rows.Scan(
		&record.StageID,
		&record.ProductID,
		&record.StageName,
		&status,
		&record.ImageURL,
		&record.ImageHash,
		&record.ImageCID,
		&record.MetadataCID,
		&record.RecordHash,
		&record.TxID,
		&record.Latitude,
		&record.Longitude,
		&record.Timestamp,
		&metadata,
		&record.UpdatedAt,
	); err != nil {
		return model.StageRecord{}, fmt.Errorf("scan stage record: %w", err)
	}

	record.Status = model.StageStatus(status)
	if metadata != "" && metadata != "null" {
		if err := json.Unmarshal([]byte(metadata), &record.Metadata); err != nil {
			return model.StageRecord{}, fmt.Errorf("unmarshal stage metadata: %w", err)
		}
	}
	return record, nil
}
