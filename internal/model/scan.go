package model

import "time"

// ProductScan is one anonymous track-page view of a product timeline.
// Scans are recorded best-effort in batches; losing some under load is
// acceptable.
type ProductScan struct {
	ProductID string
	ScannedAt time.Time
	Referrer  string
	UserAgent string
	ClientIP  string
}
