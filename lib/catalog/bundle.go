package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/pthm/classbound/lib/encoding"
)

// BundleExt is the file extension of compiled catalogs.
const BundleExt = ".cbc"

// EncodeBundle compiles the catalog into a signed msgpack bundle.
func (c *Catalog) EncodeBundle(enc *encoding.Encoder) ([]byte, error) {
	data, err := enc.Encode(c.Document())
	if err != nil {
		return nil, fmt.Errorf("encode bundle: %w", err)
	}
	return data, nil
}

// DecodeBundle verifies a bundle and builds the catalog it carries. The
// decoded document is validated again.
func DecodeBundle(data []byte, enc *encoding.Encoder, opts ...Option) (*Catalog, error) {
	var doc Document
	if err := enc.Decode(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return New(&doc, opts...)
}

// LoadBundle reads and decodes a bundle file.
func LoadBundle(path string, enc *encoding.Encoder, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	c, err := DecodeBundle(data, enc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// IsBundle reports whether path names a compiled catalog.
func IsBundle(path string) bool {
	return strings.HasSuffix(path, BundleExt)
}
