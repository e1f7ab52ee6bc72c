package model

// Source labels the transaction field a message was found in.
type Source string

var (
	SourceCoinbase     Source = "Coinbase"
	SourceScriptSig    Source = "ScriptSig"
	SourceOPReturn     Source = "OP_RETURN"
	SourceScriptPubKey Source = "ScriptPubKey"
)

// Push labels a message found in a single data push of the source script.
func (s Source) Push() Source {
	return s + " push"
}

// Message is printable text recovered from a hex-encoded field.
type Message struct {
	Source Source
	Text   string
}

// String renders the message as "<source>: <text>".
func (m Message) String() string {
	return string(m.Source) + ": " + m.Text
}
