package text

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// NewDecodingReader returns r transcoded to UTF-8 from the WHATWG encoding
// label enc. An empty or UTF-8 label returns r unchanged.
func NewDecodingReader(r io.Reader, enc string) (io.Reader, error) {
	if IsUTF8(enc) {
		return r, nil
	}
	e, err := htmlindex.Get(enc)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", enc, err)
	}
	return transform.NewReader(r, e.NewDecoder()), nil
}

// IsUTF8 reports whether enc names UTF-8. The empty label counts as UTF-8.
func IsUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
