package rtpfile

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"rtpkit/internal/config"
)

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch config.NormalizeEncoding(name) {
	case config.EncodingUTF8:
		return unicode.UTF8, nil
	case config.EncodingLatin1:
		return charmap.ISO8859_1, nil
	case config.EncodingWindows1252:
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("rtpfile: unsupported encoding %q", name)
	}
}

// decodingReader converts r from the named charset to UTF-8.
func decodingReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
