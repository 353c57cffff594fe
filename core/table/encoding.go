package table

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultFallbackEncoding is the legacy encoding tried when input is not UTF-8.
const DefaultFallbackEncoding = "ISO-8859-1"

// EncodingUTF8 is the name reported for inputs accepted as UTF-8.
const EncodingUTF8 = "UTF-8"

// ErrUndecodable is returned when input is neither UTF-8 nor valid in the fallback encoding.
var ErrUndecodable = errors.New("input could not be decoded")

var utf8BOM = []byte("\xEF\xBB\xBF")

// LookupEncoding resolves an IANA charset name (e.g. "ISO-8859-1", "latin1", "windows-1252").
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// Decode converts raw bytes to UTF-8 text.
// UTF-8 input is returned with any leading BOM removed. Otherwise the fallback
// decoder is applied; a nil fallback means UTF-8 is the only accepted encoding.
// The returned name identifies the encoding that succeeded.
func Decode(data []byte, fallback encoding.Encoding) ([]byte, string, error) {
	if utf8.Valid(data) {
		return bytes.TrimPrefix(data, utf8BOM), EncodingUTF8, nil
	}
	if fallback == nil {
		return nil, "", ErrUndecodable
	}

	out, err := fallback.NewDecoder().Bytes(data)
	if err != nil || !utf8.Valid(out) {
		return nil, "", ErrUndecodable
	}

	name, err := ianaindex.IANA.Name(fallback)
	if err != nil {
		name = fmt.Sprintf("%v", fallback)
	}
	return out, name, nil
}
