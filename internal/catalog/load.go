package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// file is the on-disk TOML layout of a catalog:
//
//	[[category]]
//	id = "identity-system"
//	name = "Identity systems"
//	color = "#FF6B9D"
//	icon = "sparkles"
//
//	[[component]]
//	id = "brand-system"
//	name = "Brand system"
//	base_points = 25
//	category = "identity-system"
type file struct {
	Categories []Category  `toml:"category"`
	Components []Component `toml:"component"`
}

// Load reads a catalog file. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	c, err := New(f.Categories, f.Components)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return c, nil
}

// Write encodes the catalog as TOML. Used by `pointplan catalog --dump` to
// give users a starting point for a custom catalog.
func Write(c *Catalog, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(file{
		Categories: c.categories,
		Components: c.components,
	})
}
