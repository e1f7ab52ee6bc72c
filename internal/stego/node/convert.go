package node

import (
	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/model"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/pkg/optional"
)

// BuildBlockFromVerbose maps a verbose getblock result into a model.Block.
func BuildBlockFromVerbose(src btcjson.GetBlockVerboseTxResult) model.Block {
	txs := make([]model.Transaction, 0, len(src.Tx))
	for _, tx := range src.Tx {
		txs = append(txs, BuildTransaction(tx))
	}
	return model.Block{Tx: txs}
}

// BuildTransaction maps a raw transaction result into a model.Transaction.
// btcjson drops empty strings on the wire, so empty values are treated as absent
// except for script fields, which bitcoind always emits.
func BuildTransaction(tx btcjson.TxRawResult) model.Transaction {
	hash := tx.Hash
	if hash == "" {
		hash = tx.Txid
	}

	vin := make([]model.Vin, 0, len(tx.Vin))
	for _, in := range tx.Vin {
		vin = append(vin, buildVin(in))
	}
	vout := make([]model.Vout, 0, len(tx.Vout))
	for _, out := range tx.Vout {
		vout = append(vout, buildVout(out))
	}

	return model.Transaction{
		Hash: hash,
		Hex:  nonEmpty(tx.Hex),
		Vin:  vin,
		Vout: vout,
	}
}

func buildVin(in btcjson.Vin) model.Vin {
	vin := model.Vin{
		Sequence: optional.Some(uint64(in.Sequence)),
	}
	if in.IsCoinBase() {
		vin.Coinbase = optional.Some(in.Coinbase)
	} else {
		vin.TxID = optional.Some(in.Txid)
		vin.Vout = optional.Some(in.Vout)
	}
	if in.ScriptSig != nil {
		vin.ScriptSig = optional.Some(model.ScriptSig{
			Asm: optional.Some(in.ScriptSig.Asm),
			Hex: optional.Some(in.ScriptSig.Hex),
		})
	}
	return vin
}

func buildVout(out btcjson.Vout) model.Vout {
	return model.Vout{
		Value: optional.Some(out.Value),
		N:     optional.Some(out.N),
		ScriptPubKey: optional.Some(model.ScriptPubKey{
			Asm:  optional.Some(out.ScriptPubKey.Asm),
			Hex:  optional.Some(out.ScriptPubKey.Hex),
			Type: nonEmpty(out.ScriptPubKey.Type),
		}),
	}
}

func nonEmpty(s string) optional.Value[string] {
	if s == "" {
		return optional.None[string]()
	}
	return optional.Some(s)
}
