// Package node fetches blocks from a bitcoind compatible JSON-RPC node.
package node

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/model"
	"go.uber.org/zap"
)

// ErrInvalidHeight is returned when the requested height is not a non-negative integer.
var ErrInvalidHeight = errors.New("invalid block height")

// Source implements block fetching over node RPC.
type Source struct {
	rpc    RPC
	logger *zap.Logger
}

// NewSource creates a Source backed by rpc.
func NewSource(rpc RPC, logger *zap.Logger) *Source {
	return &Source{
		rpc:    rpc,
		logger: logger,
	}
}

// FetchBlock retrieves the block with transactions at the given height.
func (s *Source) FetchBlock(ctx context.Context, height string) (*model.Block, error) {
	h, err := strconv.ParseInt(height, 10, 64)
	if err != nil || h < 0 {
		return nil, fmt.Errorf("%w %q", ErrInvalidHeight, height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := s.rpc.GetBlockHash(h)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", h, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := s.rpc.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	block := BuildBlockFromVerbose(*src)
	s.logger.Debug("block fetched", zap.Int64("height", h), zap.Stringer("hash", hash), zap.Int("txs", len(block.Tx)))
	return &block, nil
}
