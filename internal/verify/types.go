// Package verify recomputes record hashes from off-chain metadata and
// compares them against what is anchored on-chain.
package verify

import (
	"context"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// MetadataFetcher retrieves off-chain metadata JSON by CID.
	MetadataFetcher interface {
		FetchJSON(ctx context.Context, cid string, out any) error
	}

	// ChainReader reads anchored records back from the chain.
	ChainReader interface {
		Read(ctx context.Context, recordHash string) (model.StoredRecord, error)
	}
)

// AnchorRef is the locally persisted reference the engine verifies against.
type AnchorRef struct {
	RecordHash  string
	MetadataCID string
	TxID        string
}
