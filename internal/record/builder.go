// Package record assembles canonical traceability records from
// stage-completion inputs. Construction is pure: uploads and hashing of
// image bytes happen in the caller, so the builder is testable with
// pre-computed CIDs and hashes.
package record

import (
	"time"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// Geo is an optional coordinate pair. Both values come together or not at
// all.
type Geo struct {
	Latitude  float64
	Longitude float64
}

// BuildInput carries everything a record is built from.
type BuildInput struct {
	ProductID string
	StageID   string
	StageName string
	ImageHash string
	ImageCID  string
	Geo       *Geo
	Metadata  map[string]any
	// Now is the build instant. The record timestamp is captured here and
	// nowhere else, so records retried for the same stage order naturally.
	Now time.Time
}

// Build validates the input and constructs the record. Once hashed and
// anchored the record content is frozen; a later edit to stage content must
// build a new record, never rewrite this one.
func Build(in BuildInput) (model.TraceabilityRecord, error) {
	if in.ProductID == "" {
		return model.TraceabilityRecord{}, &model.ValidationError{Field: "productId", Reason: "required"}
	}
	if in.StageID == "" {
		return model.TraceabilityRecord{}, &model.ValidationError{Field: "stageId", Reason: "required"}
	}
	if in.StageName == "" {
		return model.TraceabilityRecord{}, &model.ValidationError{Field: "stageName", Reason: "required"}
	}

	rec := model.TraceabilityRecord{
		ProductID: in.ProductID,
		StageID:   in.StageID,
		StageName: in.StageName,
		ImageHash: in.ImageHash,
		ImageCID:  in.ImageCID,
		Timestamp: in.Now.UnixMilli(),
		Metadata:  in.Metadata,
	}

	if in.Geo != nil {
		if in.Geo.Latitude < -90 || in.Geo.Latitude > 90 {
			return model.TraceabilityRecord{}, &model.ValidationError{Field: "latitude", Reason: "must be within [-90, 90]"}
		}
		if in.Geo.Longitude < -180 || in.Geo.Longitude > 180 {
			return model.TraceabilityRecord{}, &model.ValidationError{Field: "longitude", Reason: "must be within [-180, 180]"}
		}
		lat, lon := in.Geo.Latitude, in.Geo.Longitude
		rec.Latitude = &lat
		rec.Longitude = &lon
	}

	return rec, nil
}
