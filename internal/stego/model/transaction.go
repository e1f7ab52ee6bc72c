// Package model defines the block snapshot scanned for embedded messages.
package model

import (
	"encoding/json"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/pkg/optional"
)

var (
	// ErrMissingHash is returned when a transaction payload carries no hash.
	ErrMissingHash = errors.New("transaction hash is missing")
	// ErrMissingTxs is returned when a block payload carries no tx list.
	ErrMissingTxs = errors.New("block tx list is missing")
)

// Block is an ordered list of transactions as they appear on chain.
type Block struct {
	Tx []Transaction `json:"tx"`
}

// Transaction is a single transaction of a block.
type Transaction struct {
	Hash string                 `json:"hash"`
	Hex  optional.Value[string] `json:"hex"`
	Vin  []Vin                  `json:"vin"`
	Vout []Vout                 `json:"vout"`
}

// Vin is a transaction input. Coinbase inputs carry Coinbase instead of a previous output reference.
type Vin struct {
	Coinbase  optional.Value[string]    `json:"coinbase"`
	TxID      optional.Value[string]    `json:"txid"`
	Vout      optional.Value[uint32]    `json:"vout"`
	ScriptSig optional.Value[ScriptSig] `json:"script_sig"`
	Sequence  optional.Value[uint64]    `json:"sequence"`
}

// ScriptSig is the unlocking script of an input.
type ScriptSig struct {
	Asm optional.Value[string] `json:"asm"`
	Hex optional.Value[string] `json:"hex"`
}

// Vout is a transaction output.
type Vout struct {
	Value        optional.Value[float64]      `json:"value"`
	N            optional.Value[uint32]       `json:"n"`
	ScriptPubKey optional.Value[ScriptPubKey] `json:"script_pub_key"`
}

// ScriptPubKey is the locking script of an output.
type ScriptPubKey struct {
	Asm  optional.Value[string] `json:"asm"`
	Hex  optional.Value[string] `json:"hex"`
	Type optional.Value[string] `json:"type"`
}

// UnmarshalJSON requires the tx list to be present.
func (b *Block) UnmarshalJSON(data []byte) error {
	var aux struct {
		Tx *[]Transaction `json:"tx"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Tx == nil {
		return ErrMissingTxs
	}
	b.Tx = *aux.Tx
	return nil
}

// UnmarshalJSON requires the hash to be present and normalizes missing vin/vout to empty lists.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	aux := struct {
		*plain
		Hash *string `json:"hash"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Hash == nil {
		return ErrMissingHash
	}
	t.Hash = *aux.Hash
	if t.Vin == nil {
		t.Vin = []Vin{}
	}
	if t.Vout == nil {
		t.Vout = []Vout{}
	}
	return nil
}

// UnmarshalJSON also accepts the bitcoind "scriptSig" key.
func (v *Vin) UnmarshalJSON(data []byte) error {
	type plain Vin
	aux := struct {
		*plain
		ScriptSigAlias optional.Value[ScriptSig] `json:"scriptSig"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !v.ScriptSig.IsPresent() {
		v.ScriptSig = aux.ScriptSigAlias
	}
	return nil
}

// UnmarshalJSON also accepts the bitcoind "scriptPubKey" key.
func (v *Vout) UnmarshalJSON(data []byte) error {
	type plain Vout
	aux := struct {
		*plain
		ScriptPubKeyAlias optional.Value[ScriptPubKey] `json:"scriptPubKey"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !v.ScriptPubKey.IsPresent() {
		v.ScriptPubKey = aux.ScriptPubKeyAlias
	}
	return nil
}
