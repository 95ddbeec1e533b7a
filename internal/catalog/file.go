package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileFormat is the on-disk layout of a catalog file:
//
//	[[entry]]
//	kind = "beat"
//	title = "Hip Hop Beat #1"
//	subtitle = "DJ MixMaster"
//	category = "Hip Hop"
//	price = "$29.99"
type fileFormat struct {
	Entry []Entry `toml:"entry"`
}

// LoadFile reads a TOML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Entry)
}
