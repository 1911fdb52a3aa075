package transport

import (
	"github.com/tracefield/traceanchor-backend/internal/model"
	"github.com/tracefield/traceanchor-backend/internal/service"
)

type completeStageRequest struct {
	StageName string         `json:"stageName,omitempty"`
	ImageData string         `json:"imageData,omitempty"`
	Latitude  *float64       `json:"latitude,omitempty"`
	Longitude *float64       `json:"longitude,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type stageDataResponse struct {
	ProductID  string         `json:"productId"`
	StageID    string         `json:"stageId"`
	StageName  string         `json:"stageName"`
	Status     string         `json:"status"`
	ImageURL   string         `json:"imageUrl,omitempty"`
	Latitude   *float64       `json:"latitude,omitempty"`
	Longitude  *float64       `json:"longitude,omitempty"`
	Timestamp  int64          `json:"timestamp,omitempty"`
	RecordHash string         `json:"recordHash,omitempty"`
	TxID       string         `json:"txId,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type ipfsResponse struct {
	ImageCID    string `json:"imageCid,omitempty"`
	MetadataCID string `json:"metadataCid"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type completeStageResponse struct {
	StageData  stageDataResponse    `json:"stageData"`
	Blockchain *model.AnchorReceipt `json:"blockchain"`
	IPFS       ipfsResponse         `json:"ipfs"`
}

type anchorResponse struct {
	TxID         string                   `json:"txId"`
	ExplorerURL  string                   `json:"explorerUrl,omitempty"`
	Verification model.VerificationResult `json:"verification"`
}

type timelineEntryResponse struct {
	StageID    string          `json:"stageId"`
	StageName  string          `json:"stageName"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	ImageCID   string          `json:"imageCid,omitempty"`
	Latitude   *float64        `json:"latitude,omitempty"`
	Longitude  *float64        `json:"longitude,omitempty"`
	Timestamp  int64           `json:"timestamp"`
	Blockchain *anchorResponse `json:"blockchain"`
}

type timelineSummaryResponse struct {
	CompletedStages int `json:"completedStages"`
	VerifiedStages  int `json:"verifiedStages"`
}

type timelineResponse struct {
	ProductID string                  `json:"productId"`
	Stages    []timelineEntryResponse `json:"stages"`
	Summary   timelineSummaryResponse `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toStageData(stage model.StageRecord) stageDataResponse {
	return stageDataResponse{
		ProductID:  stage.ProductID,
		StageID:    stage.StageID,
		StageName:  stage.StageName,
		Status:     string(stage.Status),
		ImageURL:   stage.ImageURL,
		Latitude:   stage.Latitude,
		Longitude:  stage.Longitude,
		Timestamp:  stage.Timestamp,
		RecordHash: stage.RecordHash,
		TxID:       stage.TxID,
		Metadata:   stage.Metadata,
	}
}

func toTimelineResponse(timeline service.Timeline) timelineResponse {
	resp := timelineResponse{
		ProductID: timeline.ProductID,
		Stages:    make([]timelineEntryResponse, 0, len(timeline.Entries)),
		Summary: timelineSummaryResponse{
			CompletedStages: timeline.Summary.CompletedStages,
			VerifiedStages:  timeline.Summary.VerifiedStages,
		},
	}
	for _, entry := range timeline.Entries {
		item := timelineEntryResponse{
			StageID:   entry.StageID,
			StageName: entry.StageName,
			ImageURL:  entry.ImageURL,
			ImageCID:  entry.ImageCID,
			Latitude:  entry.Latitude,
			Longitude: entry.Longitude,
			Timestamp: entry.Timestamp,
		}
		if entry.Blockchain != nil {
			item.Blockchain = &anchorResponse{
				TxID:         entry.Blockchain.TxID,
				ExplorerURL:  entry.Blockchain.ExplorerURL,
				Verification: entry.Blockchain.Verification,
			}
		}
		resp.Stages = append(resp.Stages, item)
	}
	return resp
}
