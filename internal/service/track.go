package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/model"
	"github.com/tracefield/traceanchor-backend/internal/verify"
	"github.com/tracefield/traceanchor-backend/pkg/workerpool"
)

// TimelineEntry is one completed stage on the public timeline.
type TimelineEntry struct {
	StageID    string
	StageName  string
	ImageURL   string
	ImageCID   string
	Latitude   *float64
	Longitude  *float64
	Timestamp  int64
	Blockchain *StageAnchor
}

// StageAnchor carries the on-chain evidence of a timeline entry.
type StageAnchor struct {
	TxID         string
	ExplorerURL  string
	Verification model.VerificationResult
}

// TimelineSummary aggregates the timeline for consumer display.
type TimelineSummary struct {
	CompletedStages int
	VerifiedStages  int
}

// Timeline is the public view of a product's anchored history.
type Timeline struct {
	ProductID string
	Entries   []TimelineEntry
	Summary   TimelineSummary
}

// TrackService serves anonymous timeline reads with per-stage on-chain
// verification.
type TrackService struct {
	repo        Repository
	verifier    Verifier
	chain       ChainStatus
	scans       ScanRecorder
	metrics     PipelineMetrics
	logger      *zap.Logger
	workerCount int
}

func NewTrackService(
	repo Repository,
	verifier Verifier,
	chain ChainStatus,
	scans ScanRecorder,
	workerCount int,
	metrics PipelineMetrics,
	logger *zap.Logger,
) *TrackService {
	if workerCount < 1 {
		workerCount = 1
	}
	return &TrackService{
		repo:        repo,
		verifier:    verifier,
		chain:       chain,
		scans:       scans,
		metrics:     metrics,
		logger:      logger,
		workerCount: workerCount,
	}
}

// Timeline returns the completed stages of a product with per-stage
// verification verdicts, fanned out across a worker pool. The scan event
// is recorded best-effort; losing it never fails the read.
func (t *TrackService) Timeline(ctx context.Context, productID string, scan model.ProductScan) (Timeline, error) {
	stages, err := t.repo.CompletedStagesByProduct(ctx, productID)
	if err != nil {
		return Timeline{}, err
	}

	if t.scans != nil {
		if err := t.scans.Add(ctx, scan); err != nil {
			t.logger.Warn("scan event dropped", zap.String("product_id", productID), zap.Error(err))
		}
	}

	entries, err := workerpool.Collect(ctx, t.workerCount, stages, t.timelineEntry)
	if err != nil {
		return Timeline{}, err
	}

	timeline := Timeline{
		ProductID: productID,
		Entries:   entries,
		Summary:   TimelineSummary{CompletedStages: len(entries)},
	}
	for _, entry := range entries {
		if entry.Blockchain != nil && entry.Blockchain.Verification.Verified {
			timeline.Summary.VerifiedStages++
		}
	}
	return timeline, nil
}

func (t *TrackService) timelineEntry(ctx context.Context, stage model.StageRecord) (TimelineEntry, error) {
	entry := TimelineEntry{
		StageID:   stage.StageID,
		StageName: stage.StageName,
		ImageURL:  stage.ImageURL,
		ImageCID:  stage.ImageCID,
		Latitude:  stage.Latitude,
		Longitude: stage.Longitude,
		Timestamp: stage.Timestamp,
	}

	result, err := t.verifier.Verify(ctx, verify.AnchorRef{
		RecordHash:  stage.RecordHash,
		MetadataCID: stage.MetadataCID,
		TxID:        stage.TxID,
	})
	if err != nil {
		// A chain outage degrades verification, not the whole timeline.
		t.logger.Warn("stage verification unavailable",
			zap.String("product_id", stage.ProductID),
			zap.String("stage_id", stage.StageID),
			zap.Error(err),
		)
		return entry, nil
	}

	t.metrics.ObserveVerification(string(result.Status))
	anchor := &StageAnchor{
		TxID:         stage.TxID,
		Verification: result,
	}
	if stage.TxID != "" {
		anchor.ExplorerURL = t.chain.ExplorerURL(stage.TxID)
	}
	entry.Blockchain = anchor
	return entry, nil
}
