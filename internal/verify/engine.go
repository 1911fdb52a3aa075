package verify

import (
	"context"

	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/hashing"
	"github.com/tracefield/traceanchor-backend/internal/model"
)

// Engine produces verification verdicts for anchored stage records.
type Engine struct {
	fetcher MetadataFetcher
	chain   ChainReader
	logger  *zap.Logger
}

func NewEngine(fetcher MetadataFetcher, chain ChainReader, logger *zap.Logger) *Engine {
	return &Engine{
		fetcher: fetcher,
		chain:   chain,
		logger:  logger,
	}
}

// Verify grades an anchor reference into one of three confidence tiers:
// not anchored at all, anchored but hash equality unconfirmable, or fully
// verified. A hash mismatch is a fourth, negative verdict and a tamper
// signal. Only chain unreachability is an error; every graded outcome is a
// result.
func (e *Engine) Verify(ctx context.Context, ref AnchorRef) (model.VerificationResult, error) {
	if ref.TxID == "" || ref.RecordHash == "" {
		return model.VerificationResult{
			Status: model.VerificationNotAnchored,
			Reason: model.ReasonNotAnchored,
		}, nil
	}

	stored, err := e.chain.Read(ctx, ref.RecordHash)
	if err != nil {
		return model.VerificationResult{}, err
	}
	if stored == (model.StoredRecord{}) {
		return model.VerificationResult{
			Status: model.VerificationNotAnchored,
			Reason: model.ReasonNotAnchored,
		}, nil
	}

	metadataCid := stored.MetadataCID
	if metadataCid == "" {
		metadataCid = ref.MetadataCID
	}

	var rec model.TraceabilityRecord
	if err := e.fetcher.FetchJSON(ctx, metadataCid, &rec); err != nil {
		// The on-chain write exists, so the record is weakly trusted even
		// though hash equality cannot be confirmed right now.
		e.logger.Warn("metadata unavailable, reporting degraded verification",
			zap.String("record_hash", ref.RecordHash),
			zap.String("metadata_cid", metadataCid),
			zap.Error(err),
		)
		return model.VerificationResult{
			Status:     model.VerificationAnchorPresent,
			Verified:   true,
			Submitter:  stored.Submitter,
			AnchoredAt: stored.Timestamp,
			Reason:     model.ReasonMetadataUnavailable,
		}, nil
	}

	recomputed, err := hashing.RecordHash(rec)
	if err != nil {
		return model.VerificationResult{}, err
	}

	if recomputed != ref.RecordHash {
		e.logger.Warn("record hash mismatch",
			zap.String("record_hash", ref.RecordHash),
			zap.String("recomputed_hash", recomputed),
			zap.String("metadata_cid", metadataCid),
		)
		return model.VerificationResult{
			Status:     model.VerificationHashMismatch,
			Submitter:  stored.Submitter,
			AnchoredAt: stored.Timestamp,
			Reason:     model.ReasonHashMismatch,
		}, nil
	}

	return model.VerificationResult{
		Status:     model.VerificationVerified,
		Verified:   true,
		Submitter:  stored.Submitter,
		AnchoredAt: stored.Timestamp,
	}, nil
}
