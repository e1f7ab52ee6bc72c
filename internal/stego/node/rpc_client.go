package node

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// rpcClient decorates an RPC with metrics instrumentation.
type rpcClient struct {
	client     RPC
	rpcMetrics RPCMetrics
}

// NewRPCClient wraps client so every call is observed by rpcMetrics.
func NewRPCClient(client RPC, rpcMetrics RPCMetrics) RPC {
	return &rpcClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockHash returns the block hash for a height.
func (r *rpcClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlockVerboseTx returns a verbose block with transactions.
func (r *rpcClient) GetBlockVerboseTx(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseTxResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose_tx", err, started)
	}()
	return r.client.GetBlockVerboseTx(blockHash)
}
