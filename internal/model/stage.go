package model

import "time"

// StageStatus describes the anchoring lifecycle of a stage.
type StageStatus string

var (
	// StagePending marks a stage whose record has not been anchored yet.
	StagePending StageStatus = "pending"
	// StageSubmitting marks a stage whose anchor transaction is in flight.
	// Persisted before the confirmation wait so a crash mid-wait is
	// recoverable by checking the chain instead of resubmitting blindly.
	StageSubmitting StageStatus = "submitting"
	// StageCompleted marks a stage whose record hash is durably anchored.
	StageCompleted StageStatus = "completed"
)

// StageRecord is the locally persisted state of a stage completion.
type StageRecord struct {
	ProductID   string
	StageID     string
	StageName   string
	Status      StageStatus
	ImageURL    string
	ImageHash   string
	ImageCID    string
	MetadataCID string
	RecordHash  string
	TxID        string
	Latitude    *float64
	Longitude   *float64
	Timestamp   int64
	Metadata    map[string]any
	UpdatedAt   time.Time
}
