// Package transport exposes the JSON/HTTP API.
package transport

import (
	"context"

	"github.com/tracefield/traceanchor-backend/internal/model"
	"github.com/tracefield/traceanchor-backend/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PipelineService runs stage completions.
	PipelineService interface {
		CompleteStage(ctx context.Context, in service.CompleteStageInput) (service.CompletionResult, error)
	}

	// TrackService serves public timeline reads.
	TrackService interface {
		Timeline(ctx context.Context, productID string, scan model.ProductScan) (service.Timeline, error)
	}

	// StatusService reports the anchoring setup.
	StatusService interface {
		Status(ctx context.Context) service.BlockchainStatus
	}
)
