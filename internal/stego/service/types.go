package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		FetchBlock(ctx context.Context, height string) (*model.Block, error)
	}
	TxSelector interface {
		Select(count int) (int, error)
	}
	Reporter interface {
		BlockSummary(height string, txCount int) error
		Transaction(tx model.Transaction) error
		Messages(messages []model.Message) error
		PushedDataMessages(messages []model.Message) error
	}
	InspectorMetrics interface {
		ObserveFetch(err error, started time.Time)
		ObserveMessages(messages []model.Message)
	}
)
