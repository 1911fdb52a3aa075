package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// Recover reconciles stages whose anchor transaction was in flight when the
// process last stopped. The chain is the source of truth: a hash that made
// it on-chain completes the stage, anything else goes back to pending.
func (s *PipelineService) Recover(ctx context.Context) error {
	stages, err := s.repo.SubmittingStages(ctx)
	if err != nil {
		return err
	}

	for _, stage := range stages {
		unlock := s.locks.Lock(stage.ProductID + "/" + stage.StageID)
		if err := s.recoverStage(ctx, stage); err != nil {
			unlock()
			s.logger.Error("stage reconciliation failed",
				zap.String("product_id", stage.ProductID),
				zap.String("stage_id", stage.StageID),
				zap.Error(err),
			)
			continue
		}
		unlock()
	}
	return nil
}

func (s *PipelineService) recoverStage(ctx context.Context, stage model.StageRecord) error {
	exists, err := s.anchorer.Exists(ctx, stage.RecordHash)
	if err != nil {
		return err
	}

	next := stage
	next.UpdatedAt = s.now()

	if !exists {
		next.Status = model.StagePending
		next.TxID = ""
		s.logger.Info("in-flight anchor never landed, stage back to pending",
			zap.String("product_id", stage.ProductID),
			zap.String("stage_id", stage.StageID),
			zap.String("record_hash", stage.RecordHash),
		)
		return s.repo.InsertStageRecord(ctx, next)
	}

	next.Status = model.StageCompleted
	receipt, found, err := s.repo.AnchorReceiptByRecordHash(ctx, stage.RecordHash)
	if err != nil {
		return err
	}
	if !found {
		// The crash lost the receipt; the RecordStored event still names
		// the transaction.
		receipt, found, err = s.anchorer.AnchorEvent(ctx, stage.RecordHash)
		if err != nil {
			return err
		}
	}
	if found {
		next.TxID = receipt.TransactionID
	}
	s.logger.Info("in-flight anchor found on-chain, stage completed",
		zap.String("product_id", stage.ProductID),
		zap.String("stage_id", stage.StageID),
		zap.String("record_hash", stage.RecordHash),
	)
	return s.repo.InsertStageRecord(ctx, next)
}
