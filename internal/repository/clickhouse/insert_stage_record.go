package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// InsertStageRecord writes a new version of a stage record. The table is a
// ReplacingMergeTree keyed by (product_id, stage_id); status transitions
// are inserts of newer versions, never updates in place.
func (r *Repository) InsertStageRecord(ctx context.Context, record model.StageRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_stage_record", err, start)
	}()

	metadata, err := json.Marshal(record.Metadata)
	if err != nil {
		return fmt.Errorf("marshal stage metadata: %w", err)
	}

	const query = `
INSERT INTO trace_stage_records (
	product_id,
	stage_id,
	stage_name,
	status,
	image_url,
	image_hash,
	image_cid,
	metadata_cid,
	record_hash,
	tx_id,
	latitude,
	longitude,
	timestamp,
	metadata,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare stage record batch: %w", err)
	}

	if err = batch.Append(
		record.ProductID,
		record.StageID,
		record.StageName,
		string(record.Status),
		record.ImageURL,
		record.ImageHash,
		record.ImageCID,
		record.MetadataCID,
		record.RecordHash,
		record.TxID,
		record.Latitude,
		record.Longitude,
		record.Timestamp,
		string(metadata),
		record.UpdatedAt,
	); err != nil {
		return fmt.Errorf("append stage record: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert stage record: %w", err)
	}
	return nil
}
