// Package model defines domain models for the traceability record pipeline.
package model

// TraceabilityRecord is the canonical unit anchored on-chain. Only the core
// fields participate in the record hash; Metadata travels with the off-chain
// copy but never changes the hash.
type TraceabilityRecord struct {
	ProductID string         `json:"productId"`
	StageID   string         `json:"stageId"`
	StageName string         `json:"stageName"`
	ImageHash string         `json:"imageHash"`
	ImageCID  string         `json:"imageCid"`
	Latitude  *float64       `json:"latitude,omitempty"`
	Longitude *float64       `json:"longitude,omitempty"`
	Timestamp int64          `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// AnchorReceipt describes a confirmed on-chain write of a record hash.
type AnchorReceipt struct {
	TransactionID   string `json:"transactionId"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	ContractAddress string `json:"contractAddress"`
}

// StoredRecord is what the anchoring contract returns for a record hash.
type StoredRecord struct {
	MetadataCID string
	Timestamp   int64
	Submitter   string
}
