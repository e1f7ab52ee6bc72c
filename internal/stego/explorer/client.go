// Package explorer fetches blocks from a blockchain explorer HTTP API.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public explorer queried when no URL is configured.
	DefaultBaseURL = "https://blockchain.info"

	maxErrorBodySize = 512
)

var (
	// ErrNoBlocks is returned when the explorer answers with an empty blocks list.
	ErrNoBlocks = errors.New("no blocks found")
	// ErrUnexpectedStatus is returned for non-2xx explorer responses.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

type blockHeightResponse struct {
	Blocks []model.Block `json:"blocks"`
}

// Client queries the explorer block-height endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient constructs an explorer client. rps <= 0 disables request pacing.
func NewClient(baseURL string, httpClient *http.Client, rps int, metrics Metrics, logger *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse explorer url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("explorer url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("explorer url missing host")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// FetchBlock returns the first block the explorer reports at height.
func (c *Client) FetchBlock(ctx context.Context, height string) (block *model.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_block", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	c.limiter.Take()

	endpoint := c.blockHeightURL(height)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for height %s: %w", height, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching block", zap.String("url", endpoint))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get block at height %s: %w", height, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("get block at height %s: %w %d: %s",
			height, ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload blockHeightResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode block at height %s: %w", height, err)
	}
	if len(payload.Blocks) == 0 {
		return nil, fmt.Errorf("block at height %s: %w", height, ErrNoBlocks)
	}

	block = &payload.Blocks[0]
	c.logger.Debug("block fetched", zap.String("height", height), zap.Int("txs", len(block.Tx)))
	return block, nil
}

func (c *Client) blockHeightURL(height string) string {
	return c.baseURL + "/block-height/" + url.PathEscape(height) + "?format=json"
}
