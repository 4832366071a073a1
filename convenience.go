// File: lixenwraith/items/convenience.go
package items

import "fmt"

// Quick loads a schema file into a sealed, ready to query Catalog with a single call.
// This is the recommended way to load a schema for most applications
func Quick(path string, opts ...Option) (*Catalog, error) {
	c, err := LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	c.Seal()
	return c, nil
}

// MustQuick is like Quick but panics on error
func MustQuick(path string, opts ...Option) *Catalog {
	c, err := Quick(path, opts...)
	if err != nil {
		panic(fmt.Sprintf("schema initialization failed: %v", err))
	}
	return c
}

// Resolve canonicalizes name in the registry of kind for the named definition.
func (c *Catalog) Resolve(definition string, kind Kind, name string) (*Item, error) {
	reg, err := c.registryFor(definition, kind)
	if err != nil {
		return nil, err
	}
	canonical, err := reg.Canonicalize(name)
	if err != nil {
		return nil, err
	}
	return reg.Get(canonical), nil
}

// Bind binds raw values against the registry of kind for the named definition.
func (c *Catalog) Bind(definition string, kind Kind, raw map[string]any) (Params, error) {
	reg, err := c.registryFor(definition, kind)
	if err != nil {
		return nil, err
	}
	return reg.Bind(raw)
}

func (c *Catalog) registryFor(definition string, kind Kind) (*Registry, error) {
	def, ok := c.Definition(definition)
	if !ok {
		return nil, fmt.Errorf("%w: definition %q", ErrUnknownItem, definition)
	}
	return c.Registry(def, kind)
}
