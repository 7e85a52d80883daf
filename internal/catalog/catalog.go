// Package catalog holds the read-only reference data of categories and
// components a project can be built from.
package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID indicates two categories or two components share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownCategory indicates a component references a missing category.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidPoints indicates a component has a non-positive base cost.
	ErrInvalidPoints = errors.New("base points must be positive")
)

// Category groups components for display.
type Category struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
	Icon  Icon   `toml:"icon"`
}

// Component is a catalog entry a student can add to a project.
type Component struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	BasePoints  int    `toml:"base_points"`
	CategoryID  string `toml:"category"`
	Icon        Icon   `toml:"icon"`
}

// Catalog is an immutable, ordered lookup table of categories and components.
type Catalog struct {
	categories []Category
	components []Component

	categoryIdx  map[string]int
	componentIdx map[string]int
}

// New validates and indexes the given records. The slices are copied.
func New(categories []Category, components []Component) (*Catalog, error) {
	c := &Catalog{
		categories:   append([]Category(nil), categories...),
		components:   append([]Component(nil), components...),
		categoryIdx:  make(map[string]int, len(categories)),
		componentIdx: make(map[string]int, len(components)),
	}

	for i, cat := range c.categories {
		if _, dup := c.categoryIdx[cat.ID]; dup {
			return nil, fmt.Errorf("category %q: %w", cat.ID, ErrDuplicateID)
		}
		c.categoryIdx[cat.ID] = i
	}

	for i, comp := range c.components {
		if _, dup := c.componentIdx[comp.ID]; dup {
			return nil, fmt.Errorf("component %q: %w", comp.ID, ErrDuplicateID)
		}
		if comp.BasePoints < 1 {
			return nil, fmt.Errorf("component %q: %w", comp.ID, ErrInvalidPoints)
		}
		if _, ok := c.categoryIdx[comp.CategoryID]; !ok {
			return nil, fmt.Errorf("component %q references %q: %w", comp.ID, comp.CategoryID, ErrUnknownCategory)
		}
		c.componentIdx[comp.ID] = i
	}

	return c, nil
}

// Component looks up a component by id. A miss is a normal condition.
func (c *Catalog) Component(id string) (Component, bool) {
	i, ok := c.componentIdx[id]
	if !ok {
		return Component{}, false
	}
	return c.components[i], true
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	i, ok := c.categoryIdx[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Components returns all components in display order.
func (c *Catalog) Components() []Component {
	return append([]Component(nil), c.components...)
}

// ComponentsIn returns the components of one category in display order.
func (c *Catalog) ComponentsIn(categoryID string) []Component {
	var out []Component
	for _, comp := range c.components {
		if comp.CategoryID == categoryID {
			out = append(out, comp)
		}
	}
	return out
}

// Len returns the number of components.
func (c *Catalog) Len() int {
	return len(c.components)
}
