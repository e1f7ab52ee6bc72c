package message

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/model"
	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/pkg/optional"
)

var nullDataType = txscript.NullDataTy.String()

// Scan returns the messages hidden in tx: coinbase and script sig of every input first,
// then the script pub key of every output, each in field order.
func Scan(tx model.Transaction) []model.Message {
	messages := make([]model.Message, 0)
	for _, vin := range tx.Vin {
		if coinbase, ok := vin.Coinbase.Get(); ok {
			messages = appendMessage(messages, model.SourceCoinbase, ExtractMessage(coinbase))
		}
		if hexData, ok := scriptSigHex(vin); ok {
			messages = appendMessage(messages, model.SourceScriptSig, ExtractMessage(hexData))
		}
	}
	for _, vout := range tx.Vout {
		if hexData, source, ok := scriptPubKeyHex(vout); ok {
			messages = appendMessage(messages, source, ExtractMessage(hexData))
		}
	}
	return messages
}

func appendMessage(messages []model.Message, source model.Source, text optional.Value[string]) []model.Message {
	if t, ok := text.Get(); ok {
		messages = append(messages, model.Message{Source: source, Text: t})
	}
	return messages
}

func scriptSigHex(vin model.Vin) (string, bool) {
	sig, ok := vin.ScriptSig.Get()
	if !ok {
		return "", false
	}
	return sig.Hex.Get()
}

// scriptPubKeyHex labels every printable locking script, not only nulldata ones.
func scriptPubKeyHex(vout model.Vout) (string, model.Source, bool) {
	spk, ok := vout.ScriptPubKey.Get()
	if !ok {
		return "", "", false
	}
	hexData, ok := spk.Hex.Get()
	if !ok {
		return "", "", false
	}
	if scriptType, ok := spk.Type.Get(); ok && scriptType == nullDataType {
		return hexData, model.SourceOPReturn, true
	}
	return hexData, model.SourceScriptPubKey, true
}
