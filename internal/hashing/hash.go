// Package hashing provides deterministic digests for image bytes and
// canonical record payloads.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// Sum returns the hex-encoded SHA-256 digest of raw bytes.
func Sum(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// canonicalPayload fixes the field set and order of the hash input. The
// free-form metadata is deliberately absent: the record hash must stay
// stable across metadata edits. Field order is the struct order, never an
// incidental map order.
type canonicalPayload struct {
	ProductID string   `json:"productId"`
	StageID   string   `json:"stageId"`
	StageName string   `json:"stageName"`
	ImageHash string   `json:"imageHash"`
	ImageCID  string   `json:"imageCid"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// CanonicalPayload serializes the hashed core fields of a record into its
// canonical byte form.
func CanonicalPayload(rec model.TraceabilityRecord) ([]byte, error) {
	payload, err := json.Marshal(canonicalPayload{
		ProductID: rec.ProductID,
		StageID:   rec.StageID,
		StageName: rec.StageName,
		ImageHash: rec.ImageHash,
		ImageCID:  rec.ImageCID,
		Latitude:  rec.Latitude,
		Longitude: rec.Longitude,
		Timestamp: rec.Timestamp,
	})
	if err != nil {
		return nil, &model.CanonicalizationError{Err: err}
	}
	return payload, nil
}

// RecordHash computes the digest anchored on-chain for a record.
// Recomputing on verification must yield a byte-identical value.
func RecordHash(rec model.TraceabilityRecord) (string, error) {
	payload, err := CanonicalPayload(rec)
	if err != nil {
		return "", err
	}
	return Sum(payload), nil
}
