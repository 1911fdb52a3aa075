package model

// VerificationStatus is the three-tier verification outcome. The tiers are
// deliberately not collapsed into a boolean: "chain write occurred" and
// "content hash matches the chain write" are different confidence levels.
type VerificationStatus string

var (
	// VerificationNotAnchored means no on-chain write exists for the stage.
	VerificationNotAnchored VerificationStatus = "not_anchored"
	// VerificationAnchorPresent means the on-chain write exists but the
	// off-chain metadata could not be retrieved, so hash equality is
	// unconfirmed.
	VerificationAnchorPresent VerificationStatus = "anchor_present"
	// VerificationVerified means the recomputed record hash matches the
	// anchored one.
	VerificationVerified VerificationStatus = "verified"
	// VerificationHashMismatch means the retrieved metadata rehashes to a
	// value that is not anchored while the stored hash is. Tamper signal.
	VerificationHashMismatch VerificationStatus = "hash_mismatch"
)

// Verification reasons surfaced alongside the status.
const (
	ReasonNotAnchored         = "not_anchored"
	ReasonMetadataUnavailable = "metadata_unavailable"
	ReasonHashMismatch        = "hash_mismatch"
)

// VerificationResult is the verdict produced by the verification engine.
type VerificationResult struct {
	Status     VerificationStatus `json:"status"`
	Verified   bool               `json:"verified"`
	Submitter  string             `json:"submitter,omitempty"`
	AnchoredAt int64              `json:"anchoredAt,omitempty"`
	Reason     string             `json:"reason,omitempty"`
}
