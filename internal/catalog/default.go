package catalog

import (
	"bytes"
	"context"
	_ "embed"
)

//go:embed default_catalog.ndjson
var defaultCatalog []byte

// DefaultCatalog returns the built-in sample catalog.
func DefaultCatalog() (*Catalog, error) {
	return Decode(context.Background(), bytes.NewReader(defaultCatalog))
}
