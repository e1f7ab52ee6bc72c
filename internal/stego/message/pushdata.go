package message

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/model"
)

// ScanPushedData returns the messages carried by individual data pushes of the coinbase,
// script sig and script pub key fields of tx, in the same order as Scan.
func ScanPushedData(tx model.Transaction) []model.Message {
	messages := make([]model.Message, 0)
	for _, vin := range tx.Vin {
		if coinbase, ok := vin.Coinbase.Get(); ok {
			messages = appendPushes(messages, model.SourceCoinbase.Push(), coinbase)
		}
		if hexData, ok := scriptSigHex(vin); ok {
			messages = appendPushes(messages, model.SourceScriptSig.Push(), hexData)
		}
	}
	for _, vout := range tx.Vout {
		if hexData, source, ok := scriptPubKeyHex(vout); ok {
			messages = appendPushes(messages, source.Push(), hexData)
		}
	}
	return messages
}

// PushedData returns the non-empty data pushes of a hex-encoded script. Parsing stops
// at the first malformed opcode; pushes seen before it are kept.
func PushedData(hexScript string) [][]byte {
	script, err := hex.DecodeString(hexScript)
	if err != nil {
		return nil
	}

	var pushes [][]byte
	tokenizer := txscript.MakeScriptTokenizer(0, script)
	for tokenizer.Next() {
		if data := tokenizer.Data(); len(data) > 0 {
			pushes = append(pushes, data)
		}
	}
	return pushes
}

func appendPushes(messages []model.Message, source model.Source, hexScript string) []model.Message {
	for _, data := range PushedData(hexScript) {
		messages = appendMessage(messages, source, decodeText(data))
	}
	return messages
}
