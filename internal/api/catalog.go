package api

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"sword-picker/internal/versions"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

var defaultFeatured = []string{"KJV", "NIV", "NASB"}

// DefaultCatalog is the catalog bundled with the binary, used offline.
func DefaultCatalog() *versions.Catalog {
	c, err := ReadCatalog(bytes.NewReader(defaultCatalogJSON))
	if err != nil {
		panic(fmt.Sprintf("bundled catalog: %v", err))
	}
	return c
}

// ReadCatalog decodes a catalog document:
//
//	{"featured": ["KJV"], "always": "ESV", "versions": [{"initials": ...}]}
func ReadCatalog(r io.Reader) (*versions.Catalog, error) {
	var doc versions.Catalog
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return versions.NewCatalog(doc.Versions, doc.Featured, doc.Always), nil
}

// ReadCatalogFile reads a catalog document from disk.
func ReadCatalogFile(path string) (*versions.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
