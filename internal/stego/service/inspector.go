// Package service wires block fetching, transaction selection and message scanning.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/message"
	"go.uber.org/zap"
)

var (
	// ErrFetch marks failures to obtain the block.
	ErrFetch = errors.New("fetch block")
	// ErrInput marks an unusable transaction selection.
	ErrInput = errors.New("select transaction")
)

// Inspector fetches one block, lets the caller choose a transaction and reports the
// messages hidden in it.
type Inspector struct {
	source       BlockSource
	selector     TxSelector
	reporter     Reporter
	metrics      InspectorMetrics
	logger       *zap.Logger
	scanPushData bool
}

// NewInspector constructs an Inspector. scanPushData additionally reports text carried
// by individual script data pushes.
func NewInspector(
	source BlockSource,
	selector TxSelector,
	reporter Reporter,
	metrics InspectorMetrics,
	logger *zap.Logger,
	scanPushData bool,
) (*Inspector, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if selector == nil {
		return nil, errors.New("transaction selector is required")
	}
	if reporter == nil {
		return nil, errors.New("reporter is required")
	}
	return &Inspector{
		source:       source,
		selector:     selector,
		reporter:     reporter,
		metrics:      metrics,
		logger:       logger,
		scanPushData: scanPushData,
	}, nil
}

// Inspect runs a single inspection of the block at height.
func (i *Inspector) Inspect(ctx context.Context, height string) error {
	started := time.Now()
	block, err := i.source.FetchBlock(ctx, height)
	i.metrics.ObserveFetch(err, started)
	if err != nil {
		return fmt.Errorf("%w at height %s: %w", ErrFetch, height, err)
	}

	if err := i.reporter.BlockSummary(height, len(block.Tx)); err != nil {
		return fmt.Errorf("report block summary: %w", err)
	}

	index, err := i.selector.Select(len(block.Tx))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	if index < 0 || index >= len(block.Tx) {
		return fmt.Errorf("%w: index %d out of range", ErrInput, index)
	}
	tx := block.Tx[index]
	i.logger.Debug("transaction selected", zap.Int("index", index), zap.String("hash", tx.Hash))

	if err := i.reporter.Transaction(tx); err != nil {
		return fmt.Errorf("report transaction: %w", err)
	}

	messages := message.Scan(tx)
	i.metrics.ObserveMessages(messages)
	if err := i.reporter.Messages(messages); err != nil {
		return fmt.Errorf("report messages: %w", err)
	}

	if !i.scanPushData {
		return nil
	}
	pushed := message.ScanPushedData(tx)
	i.metrics.ObserveMessages(pushed)
	if err := i.reporter.PushedDataMessages(pushed); err != nil {
		return fmt.Errorf("report pushed data messages: %w", err)
	}
	return nil
}
