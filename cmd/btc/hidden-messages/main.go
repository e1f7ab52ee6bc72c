// Package main is the entrypoint of the hidden message inspector: it fetches a block,
// lets the user pick a transaction and prints the text hidden in its scripts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/explorer"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/node"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/prompt"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/report"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/service"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	sourceExplorer = "explorer"
	sourceNode     = "node"
)

type config struct {
	Source       string        `long:"source" env:"HIDDEN_MESSAGES_SOURCE" description:"block source" choice:"explorer" choice:"node" default:"explorer"`
	ExplorerURL  string        `long:"explorer-url" env:"HIDDEN_MESSAGES_EXPLORER_URL" description:"explorer API base URL" default:"https://blockchain.info"`
	ExplorerRPS  int           `long:"explorer-rps" env:"HIDDEN_MESSAGES_EXPLORER_RPS" description:"max explorer requests per second, 0 disables pacing" default:"5"`
	HTTPTimeout  time.Duration `long:"http-timeout" env:"HIDDEN_MESSAGES_HTTP_TIMEOUT" description:"HTTP timeout for explorer requests" default:"30s"`
	RPCURL       string        `long:"rpc-url" env:"HIDDEN_MESSAGES_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser      string        `long:"rpc-user" env:"HIDDEN_MESSAGES_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword  string        `long:"rpc-password" env:"HIDDEN_MESSAGES_RPC_PASSWORD" description:"Bitcoin RPC password"`
	Tx           int           `long:"tx" env:"HIDDEN_MESSAGES_TX" description:"transaction index to inspect, prompts when negative" default:"-1"`
	ScanPushData bool          `long:"scan-pushdata" env:"HIDDEN_MESSAGES_SCAN_PUSHDATA" description:"also scan individual script data pushes"`
	MetricsFile  string        `long:"metrics-file" env:"HIDDEN_MESSAGES_METRICS_FILE" description:"write Prometheus metrics to this textfile on exit"`
	Debug        bool          `long:"debug" env:"HIDDEN_MESSAGES_DEBUG" description:"enable debug logging"`

	Args struct {
		Height string `positional-arg-name:"HEIGHT" description:"block height"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	envErr := godotenv.Load()

	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	rest, err := parser.Parse()
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}
	if len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", rest)
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if envErr != nil {
		logger.Debug("no .env file loaded", zap.Error(envErr))
	}

	if err := run(ctx, cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("hidden message inspection failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if !debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zcfg.Build()
}

func run(ctx context.Context, cfg config, logger *zap.Logger, in io.Reader, out io.Writer) error {
	source, closeSource, err := newBlockSource(cfg, logger)
	if err != nil {
		return fmt.Errorf("init block source: %w", err)
	}
	defer closeSource()

	var selector service.TxSelector = prompt.NewSelector(in, out)
	if cfg.Tx >= 0 {
		selector = prompt.Fixed(cfg.Tx)
	}

	inspector, err := service.NewInspector(
		source,
		selector,
		report.NewPrinter(out),
		metrics.NewInspector(cfg.Source),
		logger,
		cfg.ScanPushData,
	)
	if err != nil {
		return err
	}

	inspectErr := inspector.Inspect(ctx, cfg.Args.Height)
	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write metrics", zap.Error(err))
		}
	}
	return inspectErr
}

func newBlockSource(cfg config, logger *zap.Logger) (service.BlockSource, func(), error) {
	switch cfg.Source {
	case sourceExplorer, "":
		client, err := explorer.NewClient(
			cfg.ExplorerURL,
			&http.Client{Timeout: cfg.HTTPTimeout},
			cfg.ExplorerRPS,
			metrics.NewBlockSource(sourceExplorer),
			logger,
		)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	case sourceNode:
		rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("init rpc client: %w", err)
		}
		closeFn := func() {
			rpcClient.Shutdown()
			rpcClient.WaitForShutdown()
		}
		rpc := node.NewRPCClient(rpcClient, metrics.NewBlockSource(sourceNode))
		return node.NewSource(rpc, logger), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unsupported block source %q", cfg.Source)
	}
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}, nil)
}
