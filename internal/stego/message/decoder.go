// Package message recovers human-readable text hidden in hex-encoded transaction fields.
package message

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/pkg/optional"
)

// ExtractMessage decodes hexData and returns the text when every decoded character
// is printable ASCII. Invalid hex yields an absent value.
func ExtractMessage(hexData string) optional.Value[string] {
	raw, err := hex.DecodeString(hexData)
	if err != nil {
		return optional.None[string]()
	}
	return decodeText(raw)
}

func decodeText(raw []byte) optional.Value[string] {
	// Invalid UTF-8 is replaced rather than rejected; U+FFFD never passes the filter.
	text := strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	if !IsPrintableASCII(text) {
		return optional.None[string]()
	}
	return optional.Some(text)
}

// IsPrintableASCII reports whether every character of s is ASCII and not a control
// character. The empty string is printable.
func IsPrintableASCII(s string) bool {
	for _, r := range s {
		if r >= utf8.RuneSelf || r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
