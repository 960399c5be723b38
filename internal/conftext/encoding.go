package conftext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned for encodings other than UTF-8,
// UTF-16LE and Windows-1252.
var ErrUnsupportedEncoding = errors.New("conftext: unsupported encoding")

// decodingReader wraps data in a reader that yields UTF-8. A byte order
// mark wins over the requested encoding.
func decodingReader(data []byte, enc string) (io.Reader, error) {
	if bytes.HasPrefix(data, UTF16LEBOM) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(bytes.NewReader(data), dec), nil
	}
	if bytes.HasPrefix(data, UTF8BOM) {
		return bytes.NewReader(data[len(UTF8BOM):]), nil
	}
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return bytes.NewReader(data), nil
	case EncodingUTF16LE:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		return transform.NewReader(bytes.NewReader(data), dec), nil
	case EncodingWindows1252:
		return transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}

// encodeOutput converts UTF-8 text to the requested encoding.
func encodeOutput(text []byte, enc string, withBOM bool) ([]byte, error) {
	var (
		encoder *encoding.Encoder
		bom     []byte
	)
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		if !withBOM {
			return text, nil
		}
		return append(append([]byte{}, UTF8BOM...), text...), nil
	case EncodingUTF16LE:
		encoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
		if withBOM {
			bom = UTF16LEBOM
		}
	case EncodingWindows1252:
		encoder = charmap.Windows1252.NewEncoder()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}

	out, _, err := transform.Bytes(encoder, text)
	if err != nil {
		return nil, fmt.Errorf("conftext: encoding output as %s: %w", enc, err)
	}
	if bom != nil {
		out = append(append([]byte{}, bom...), out...)
	}
	return out, nil
}
