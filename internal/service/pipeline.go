package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/hashing"
	"github.com/tracefield/traceanchor-backend/internal/model"
	"github.com/tracefield/traceanchor-backend/internal/record"
)

// CompleteStageInput is a stage-completion request.
type CompleteStageInput struct {
	ProductID string
	StageID   string
	StageName string
	// ImageData is an optional base64 image data URL.
	ImageData string
	Latitude  *float64
	Longitude *float64
	Metadata  map[string]any
}

// CompletionResult reports what a successful stage completion produced.
type CompletionResult struct {
	Stage       model.StageRecord
	Receipt     *model.AnchorReceipt
	ImageCID    string
	MetadataCID string
	ImageURL    string
}

// PipelineService runs the anchoring pipeline for stage completions.
type PipelineService struct {
	repo     Repository
	store    ContentStore
	anchorer Anchorer
	schema   *jsonschema.Schema
	metrics  PipelineMetrics
	logger   *zap.Logger
	locks    *keyedMutex
	now      func() time.Time
}

func NewPipelineService(
	repo Repository,
	store ContentStore,
	anchorer Anchorer,
	schema *jsonschema.Schema,
	metrics PipelineMetrics,
	logger *zap.Logger,
) *PipelineService {
	return &PipelineService{
		repo:     repo,
		store:    store,
		anchorer: anchorer,
		schema:   schema,
		metrics:  metrics,
		logger:   logger,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

// CompleteStage hashes and uploads the stage content, anchors the record
// hash on-chain and persists the completed stage. Requests for the same
// product/stage pair are serialized. Any failure before the anchor
// submission leaves the stage pending with no partial state reported as
// success.
func (s *PipelineService) CompleteStage(ctx context.Context, in CompleteStageInput) (CompletionResult, error) {
	started := s.now()
	outcome := "failed"
	defer func() {
		s.metrics.ObserveCompletion(outcome, started)
	}()

	unlock := s.locks.Lock(in.ProductID + "/" + in.StageID)
	defer unlock()

	stage, found, err := s.repo.StageRecord(ctx, in.ProductID, in.StageID)
	if err != nil {
		return CompletionResult{}, err
	}
	if !found {
		return CompletionResult{}, fmt.Errorf("stage %s/%s: %w", in.ProductID, in.StageID, model.ErrStageNotFound)
	}
	if stage.Status == model.StageCompleted {
		return CompletionResult{}, fmt.Errorf("stage %s/%s: %w", in.ProductID, in.StageID, model.ErrStageAlreadyCompleted)
	}

	if err := s.validateMetadata(in.Metadata); err != nil {
		return CompletionResult{}, err
	}

	stageName := in.StageName
	if stageName == "" {
		stageName = stage.StageName
	}

	now := started
	var imageHash, imageCID, imageURL string
	if in.ImageData != "" {
		raw, mime, err := record.DecodeImageDataURL(in.ImageData)
		if err != nil {
			return CompletionResult{}, err
		}
		// Hash raw bytes before upload so the image hash stays valid even
		// if the content moves stores.
		imageHash = hashing.Sum(raw)
		imageCID, err = s.store.UploadBinary(ctx, raw, mime, record.ImageFilename(in.ProductID, in.StageID, now.UnixMilli(), mime))
		if err != nil {
			return CompletionResult{}, err
		}
		imageURL = s.store.GatewayURL(imageCID)
	}

	var geo *record.Geo
	switch {
	case in.Latitude != nil && in.Longitude != nil:
		geo = &record.Geo{Latitude: *in.Latitude, Longitude: *in.Longitude}
	case in.Latitude != nil || in.Longitude != nil:
		return CompletionResult{}, &model.ValidationError{Field: "geo", Reason: "latitude and longitude must be provided together"}
	}

	rec, err := record.Build(record.BuildInput{
		ProductID: in.ProductID,
		StageID:   in.StageID,
		StageName: stageName,
		ImageHash: imageHash,
		ImageCID:  imageCID,
		Geo:       geo,
		Metadata:  in.Metadata,
		Now:       now,
	})
	if err != nil {
		return CompletionResult{}, err
	}

	metadataCID, err := s.store.UploadJSON(ctx, rec, fmt.Sprintf("%s_%s_metadata.json", in.ProductID, in.StageID))
	if err != nil {
		return CompletionResult{}, err
	}

	recordHash, err := hashing.RecordHash(rec)
	if err != nil {
		return CompletionResult{}, err
	}

	submitting := stage
	submitting.StageName = stageName
	submitting.Status = model.StageSubmitting
	submitting.ImageURL = imageURL
	submitting.ImageHash = imageHash
	submitting.ImageCID = imageCID
	submitting.MetadataCID = metadataCID
	submitting.RecordHash = recordHash
	submitting.Latitude = rec.Latitude
	submitting.Longitude = rec.Longitude
	submitting.Timestamp = rec.Timestamp
	submitting.Metadata = in.Metadata
	submitting.UpdatedAt = s.now()

	// Persisted before the confirmation wait: a crash from here on is
	// recovered by checking the chain, not by resubmitting blindly.
	if err := s.repo.InsertStageRecord(ctx, submitting); err != nil {
		return CompletionResult{}, err
	}

	freshAnchor := false
	receipt, err := s.anchorer.Anchor(ctx, recordHash, metadataCID)
	switch {
	case err == nil:
		freshAnchor = true
	case errors.Is(err, model.ErrDuplicateRecord):
		// A prior attempt or another submitter already anchored this
		// content. Adopt the existing anchor instead of failing.
		adopted, adoptErr := s.adoptExistingAnchor(ctx, recordHash)
		if adoptErr != nil {
			return CompletionResult{}, adoptErr
		}
		receipt = adopted
		outcome = "adopted"
		s.logger.Info("adopted existing anchor",
			zap.String("product_id", in.ProductID),
			zap.String("stage_id", in.StageID),
			zap.String("record_hash", recordHash),
		)
	default:
		// The submitting row stays; startup reconciliation resolves it
		// against the chain.
		return CompletionResult{}, err
	}

	completed := submitting
	completed.Status = model.StageCompleted
	completed.TxID = receipt.TransactionID
	completed.UpdatedAt = s.now()

	if err := s.repo.InsertStageRecord(ctx, completed); err != nil {
		return CompletionResult{}, err
	}
	if freshAnchor {
		if err := s.repo.InsertAnchorReceipt(ctx, recordHash, receipt); err != nil {
			return CompletionResult{}, err
		}
	}

	if outcome == "failed" {
		outcome = "completed"
	}
	s.logger.Info("stage completed",
		zap.String("product_id", in.ProductID),
		zap.String("stage_id", in.StageID),
		zap.String("record_hash", recordHash),
		zap.String("tx_id", receipt.TransactionID),
	)

	result := CompletionResult{
		Stage:       completed,
		ImageCID:    imageCID,
		MetadataCID: metadataCID,
		ImageURL:    imageURL,
	}
	if receipt.TransactionID != "" {
		r := receipt
		result.Receipt = &r
	}
	return result, nil
}

func (s *PipelineService) validateMetadata(metadata map[string]any) error {
	if s.schema == nil || metadata == nil {
		return nil
	}
	if err := s.schema.Validate(map[string]any(metadata)); err != nil {
		return &model.ValidationError{Field: "metadata", Reason: err.Error()}
	}
	return nil
}

// adoptExistingAnchor resolves a duplicate into the receipt of the earlier
// anchor. The locally persisted receipt is preferred; when the anchor was
// written by someone else, or the local receipt was lost, the transaction
// identity is recovered from the RecordStored event log so the stage never
// completes without a tx id.
func (s *PipelineService) adoptExistingAnchor(ctx context.Context, recordHash string) (model.AnchorReceipt, error) {
	receipt, found, err := s.repo.AnchorReceiptByRecordHash(ctx, recordHash)
	if err != nil {
		return model.AnchorReceipt{}, err
	}
	if found {
		return receipt, nil
	}

	receipt, found, err = s.anchorer.AnchorEvent(ctx, recordHash)
	if err != nil {
		return model.AnchorReceipt{}, err
	}
	if !found {
		// The duplicate guard fired, so the anchor exists; the node just
		// cannot serve the log range anymore.
		s.logger.Warn("anchor exists on-chain but its event log is unavailable",
			zap.String("record_hash", recordHash),
		)
		return model.AnchorReceipt{}, nil
	}

	s.logger.Info("recovered anchoring transaction from the event log",
		zap.String("record_hash", recordHash),
		zap.String("tx_id", receipt.TransactionID),
	)
	return receipt, nil
}
