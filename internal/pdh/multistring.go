package pdh

import (
	"strings"
	"unicode/utf16"
)

// DecodeMultiString decodes the null-separated UTF-16 multi-string format
// the PDH enumeration calls fill their buffers with: zero or more strings
// separated by a single NUL unit, with the whole buffer terminated by two
// consecutive NUL units. Empty segments are preserved; an empty instance
// name is a valid entry for single-instance objects.
func DecodeMultiString(buf []uint16) ([]string, error) {
	if len(buf) < 2 {
		return nil, &ProtocolError{Reason: "multi-string buffer shorter than its two terminators"}
	}
	body := string(utf16.Decode(buf[:len(buf)-2]))
	return strings.Split(body, "\x00"), nil
}

// EncodeMultiString is the inverse of DecodeMultiString. The subsystem never
// consumes this format; it exists for round-trip tests and fakes.
func EncodeMultiString(items []string) []uint16 {
	encoded := utf16.Encode([]rune(strings.Join(items, "\x00")))
	return append(encoded, 0, 0)
}
