package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tracefield/traceanchor-backend/internal/model"
	"github.com/tracefield/traceanchor-backend/pkg/safe"
)

// Exists reports whether a record hash has been anchored.
func (c *Client) Exists(ctx context.Context, recordHash string) (exists bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("exists", err, started)
	}()

	word, err := c.hashWord(recordHash)
	if err != nil {
		return false, err
	}
	return c.exists(ctx, word)
}

func (c *Client) exists(ctx context.Context, word common.Hash) (bool, error) {
	output, err := c.call(ctx, "recordExists", word)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := c.abi.UnpackIntoInterface(&exists, "recordExists", output); err != nil {
		return false, fmt.Errorf("unpack recordExists: %w", err)
	}
	return exists, nil
}

// Read returns the anchored record for a hash. A hash that was never
// anchored yields a zero StoredRecord and no error, so callers distinguish
// "absent" from "unreachable" without sentinel matching.
func (c *Client) Read(ctx context.Context, recordHash string) (stored model.StoredRecord, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("read", err, started)
	}()

	word, err := c.hashWord(recordHash)
	if err != nil {
		return model.StoredRecord{}, err
	}

	exists, err := c.exists(ctx, word)
	if err != nil {
		return model.StoredRecord{}, err
	}
	if !exists {
		return model.StoredRecord{}, nil
	}

	output, err := c.call(ctx, "getRecord", word)
	if err != nil {
		return model.StoredRecord{}, err
	}

	values, err := c.abi.Unpack("getRecord", output)
	if err != nil {
		return model.StoredRecord{}, fmt.Errorf("unpack getRecord: %w", err)
	}
	if len(values) != 3 {
		return model.StoredRecord{}, fmt.Errorf("unpack getRecord: want 3 values, got %d", len(values))
	}

	metadataCid, ok := values[0].(string)
	if !ok {
		return model.StoredRecord{}, fmt.Errorf("unpack getRecord: unexpected cid type %T", values[0])
	}
	rawTimestamp, ok := values[1].(*big.Int)
	if !ok {
		return model.StoredRecord{}, fmt.Errorf("unpack getRecord: unexpected timestamp type %T", values[1])
	}
	submitter, ok := values[2].(common.Address)
	if !ok {
		return model.StoredRecord{}, fmt.Errorf("unpack getRecord: unexpected submitter type %T", values[2])
	}

	timestamp, err := safe.Int64FromBig(rawTimestamp)
	if err != nil {
		return model.StoredRecord{}, fmt.Errorf("anchored timestamp: %w", err)
	}

	return model.StoredRecord{
		MetadataCID: metadataCid,
		Timestamp:   timestamp,
		Submitter:   submitter.Hex(),
	}, nil
}

func (c *Client) call(ctx context.Context, method string, args ...any) ([]byte, error) {
	calldata, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	output, err := c.backend.CallContract(ctx, ethereum.CallMsg{
		To:   &c.contract,
		Data: calldata,
	}, nil)
	if err != nil {
		return nil, classify(method, err)
	}
	return output, nil
}
