package regtext

import (
	"encoding/binary"
	"errors"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

var errUnsupportedEncoding = errors.New("regtext: unsupported encoding")

// decodeInput converts raw file bytes to UTF-8 if needed. A BOM wins over the
// declared encoding; without one, enc selects the decoder ("" means UTF-8).
func decodeInput(data []byte, enc string) ([]byte, error) {
	if len(data) >= len(UTF16LEBOM) && data[0] == UTF16LEBOM[0] && data[1] == UTF16LEBOM[1] {
		return utf16LEToBytes(data[len(UTF16LEBOM):]), nil
	}
	if len(data) >= len(UTF8BOM) && data[0] == UTF8BOM[0] && data[1] == UTF8BOM[1] && data[2] == UTF8BOM[2] {
		return data[len(UTF8BOM):], nil
	}
	switch strings.ToUpper(enc) {
	case "", strings.ToUpper(EncodingUTF8):
		return data, nil // no copy
	case strings.ToUpper(EncodingUTF16LE):
		return utf16LEToBytes(data), nil
	case strings.ToUpper(EncodingWindows1252):
		return charmap.Windows1252.NewDecoder().Bytes(data)
	default:
		return nil, errUnsupportedEncoding
	}
}

// utf16LEToBytes converts UTF-16LE data to UTF-8 bytes.
func utf16LEToBytes(data []byte) []byte {
	if len(data)%UTF16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return nil
	}
	words := make([]uint16, len(data)/UTF16CodeUnitSize)
	for i := 0; i < len(words); i++ {
		words[i] = binary.LittleEndian.Uint16(data[i*UTF16CodeUnitSize:])
	}
	return []byte(string(utf16.Decode(words)))
}
