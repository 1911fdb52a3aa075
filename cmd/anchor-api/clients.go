package main

import (
	"context"
	"math/big"

	"github.com/tracefield/traceanchor-backend/internal/chain"
	"github.com/tracefield/traceanchor-backend/internal/ipfs"
	"github.com/tracefield/traceanchor-backend/internal/model"
	"github.com/tracefield/traceanchor-backend/pkg/lazy"
)

// lazyChain defers the anchor client construction to the first operation
// that needs the chain. Missing credentials surface as ConfigurationError on
// write paths while identity getters degrade to empty values, which keeps
// timeline reads available on an unconfigured deployment.
type lazyChain struct {
	client *lazy.Value[*chain.Client]
}

func (l *lazyChain) Anchor(ctx context.Context, recordHash, metadataCid string) (model.AnchorReceipt, error) {
	client, err := l.client.Get()
	if err != nil {
		return model.AnchorReceipt{}, err
	}
	return client.Anchor(ctx, recordHash, metadataCid)
}

func (l *lazyChain) Exists(ctx context.Context, recordHash string) (bool, error) {
	client, err := l.client.Get()
	if err != nil {
		return false, err
	}
	return client.Exists(ctx, recordHash)
}

func (l *lazyChain) Read(ctx context.Context, recordHash string) (model.StoredRecord, error) {
	client, err := l.client.Get()
	if err != nil {
		return model.StoredRecord{}, err
	}
	return client.Read(ctx, recordHash)
}

func (l *lazyChain) AnchorEvent(ctx context.Context, recordHash string) (model.AnchorReceipt, bool, error) {
	client, err := l.client.Get()
	if err != nil {
		return model.AnchorReceipt{}, false, err
	}
	return client.AnchorEvent(ctx, recordHash)
}

func (l *lazyChain) WalletAddress() string {
	client, err := l.client.Get()
	if err != nil {
		return ""
	}
	return client.WalletAddress()
}

func (l *lazyChain) ContractAddress() string {
	client, err := l.client.Get()
	if err != nil {
		return ""
	}
	return client.ContractAddress()
}

func (l *lazyChain) ExplorerURL(txID string) string {
	client, err := l.client.Get()
	if err != nil {
		return ""
	}
	return client.ExplorerURL(txID)
}

func (l *lazyChain) Balance(ctx context.Context) (*big.Int, error) {
	client, err := l.client.Get()
	if err != nil {
		return nil, err
	}
	return client.Balance(ctx)
}

// lazyStore defers the pinning client construction the same way.
type lazyStore struct {
	client *lazy.Value[*ipfs.Client]
}

func (l *lazyStore) UploadBinary(ctx context.Context, data []byte, contentType, name string) (string, error) {
	client, err := l.client.Get()
	if err != nil {
		return "", err
	}
	return client.UploadBinary(ctx, data, contentType, name)
}

func (l *lazyStore) UploadJSON(ctx context.Context, v any, name string) (string, error) {
	client, err := l.client.Get()
	if err != nil {
		return "", err
	}
	return client.UploadJSON(ctx, v, name)
}

func (l *lazyStore) GatewayURL(contentID string) string {
	client, err := l.client.Get()
	if err != nil {
		return ""
	}
	return client.GatewayURL(contentID)
}
