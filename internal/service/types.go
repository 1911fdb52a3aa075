package service

import (
	"context"
	"math/big"
	"time"

	"github.com/tracefield/traceanchor-backend/internal/model"
	"github.com/tracefield/traceanchor-backend/internal/verify"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ContentStore uploads content to the content-addressed store and
	// builds public links for it.
	ContentStore interface {
		UploadBinary(ctx context.Context, data []byte, contentType, name string) (string, error)
		UploadJSON(ctx context.Context, v any, name string) (string, error)
		GatewayURL(contentID string) string
	}

	// Anchorer commits record hashes on-chain and locates existing anchors.
	Anchorer interface {
		Anchor(ctx context.Context, recordHash, metadataCid string) (model.AnchorReceipt, error)
		Exists(ctx context.Context, recordHash string) (bool, error)
		AnchorEvent(ctx context.Context, recordHash string) (model.AnchorReceipt, bool, error)
	}

	// ChainStatus exposes the signer and contract identity for the status
	// surface.
	ChainStatus interface {
		WalletAddress() string
		ContractAddress() string
		ExplorerURL(txID string) string
		Balance(ctx context.Context) (*big.Int, error)
	}

	// Repository persists stage state, receipts and scan events.
	Repository interface {
		InsertStageRecord(ctx context.Context, record model.StageRecord) error
		StageRecord(ctx context.Context, productID, stageID string) (model.StageRecord, bool, error)
		CompletedStagesByProduct(ctx context.Context, productID string) ([]model.StageRecord, error)
		SubmittingStages(ctx context.Context) ([]model.StageRecord, error)
		InsertAnchorReceipt(ctx context.Context, recordHash string, receipt model.AnchorReceipt) error
		AnchorReceiptByRecordHash(ctx context.Context, recordHash string) (model.AnchorReceipt, bool, error)
		InsertProductScans(ctx context.Context, scans []model.ProductScan) error
	}

	// Verifier grades an anchor reference into a verification verdict.
	Verifier interface {
		Verify(ctx context.Context, ref verify.AnchorRef) (model.VerificationResult, error)
	}

	// PipelineMetrics records pipeline outcomes.
	PipelineMetrics interface {
		ObserveCompletion(outcome string, started time.Time)
		ObserveVerification(status string)
	}

	// ScanRecorder accepts track-page scan events for batched persistence.
	ScanRecorder interface {
		Add(ctx context.Context, scan model.ProductScan) error
	}
)
