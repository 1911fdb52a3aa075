package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ipfs/go-cid"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

const defaultAPIBaseURL = "https://api.pinata.cloud"

// Config holds the settings of the pinning service client.
type Config struct {
	// JWT is the pinning service credential.
	JWT string
	// GatewayHost is the dedicated gateway hostname used to build public
	// content URLs, e.g. "violet-cheap-canidae.mypinata.cloud".
	GatewayHost string
	// APIBaseURL overrides the pinning API endpoint. Empty means the
	// public Pinata API.
	APIBaseURL string
	// UploadRPS caps upload calls per second. Zero means 5.
	UploadRPS int
	// MaxRetries bounds upload retries after the first attempt. Zero
	// means 3.
	MaxRetries uint64
	// HTTPTimeout bounds a single upload request. Zero means 30s.
	HTTPTimeout time.Duration
}

// Client uploads binary and JSON payloads to the pinning service. Safe for
// concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	rl         ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient validates the configuration and constructs a Client. Missing
// credentials surface as a ConfigurationError so a lazily built client
// fails at first use with a named setting.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.JWT == "" {
		return nil, &model.ConfigurationError{Name: "pinata jwt"}
	}
	if cfg.GatewayHost == "" {
		return nil, &model.ConfigurationError{Name: "pinata gateway host"}
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.UploadRPS <= 0 {
		cfg.UploadRPS = 5
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		rl:         ratelimit.New(cfg.UploadRPS),
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// GatewayURL builds the public URL of a CID on the dedicated gateway.
func (c *Client) GatewayURL(contentID string) string {
	return fmt.Sprintf("https://%s/ipfs/%s", c.cfg.GatewayHost, contentID)
}

// UploadBinary uploads raw bytes and returns the content identifier. The
// store derives the CID from the bytes, so identical content re-pins to the
// same CID and changed content can never reuse a stale one.
func (c *Client) UploadBinary(ctx context.Context, data []byte, contentType, name string) (contentID string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("upload_binary", err, started)
	}()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", &model.UploadError{Op: "binary", Err: err}
	}
	if _, err = part.Write(data); err != nil {
		return "", &model.UploadError{Op: "binary", Err: err}
	}
	if err = writer.Close(); err != nil {
		return "", &model.UploadError{Op: "binary", Err: err}
	}

	contentID, err = c.pin(ctx, "/pinning/pinFileToIPFS", writer.FormDataContentType(), body.Bytes())
	if err != nil {
		return "", &model.UploadError{Op: "binary", Err: err}
	}

	c.logger.Info("uploaded binary content",
		zap.String("name", name),
		zap.String("cid", contentID),
		zap.Int("size", len(data)),
	)
	return contentID, nil
}

// UploadJSON uploads a structured payload and returns the content
// identifier.
func (c *Client) UploadJSON(ctx context.Context, v any, name string) (contentID string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("upload_json", err, started)
	}()

	content, err := json.Marshal(v)
	if err != nil {
		return "", &model.CanonicalizationError{Err: err}
	}

	envelope, err := json.Marshal(struct {
		PinataContent  json.RawMessage `json:"pinataContent"`
		PinataMetadata struct {
			Name string `json:"name"`
		} `json:"pinataMetadata"`
	}{
		PinataContent: content,
		PinataMetadata: struct {
			Name string `json:"name"`
		}{Name: name},
	})
	if err != nil {
		return "", &model.CanonicalizationError{Err: err}
	}

	contentID, err = c.pin(ctx, "/pinning/pinJSONToIPFS", "application/json", envelope)
	if err != nil {
		return "", &model.UploadError{Op: "json", Err: err}
	}

	c.logger.Info("uploaded json content",
		zap.String("name", name),
		zap.String("cid", contentID),
	)
	return contentID, nil
}

// pin posts a payload to the pinning API, retrying transient failures with
// bounded exponential backoff. Auth rejections are not retried.
func (c *Client) pin(ctx context.Context, path, contentType string, payload []byte) (string, error) {
	var contentID string

	attempt := func() error {
		c.rl.Take()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIBaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.JWT)
		req.Header.Set("Content-Type", contentType)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("post %s: %w", path, err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return backoff.Permanent(fmt.Errorf("auth rejected: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
		case resp.StatusCode < 200 || resp.StatusCode > 299:
			return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		}

		var parsed struct {
			IpfsHash string `json:"IpfsHash"`
		}
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		if _, err := cid.Decode(parsed.IpfsHash); err != nil {
			return backoff.Permanent(fmt.Errorf("invalid cid %q: %w", parsed.IpfsHash, err))
		}

		contentID = parsed.IpfsHash
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.cfg.MaxRetries), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return "", err
	}
	return contentID, nil
}
