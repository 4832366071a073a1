// File: lixenwraith/items/builder.go
package items

import (
	"errors"
	"fmt"
	"os"
)

// ValidatorFunc checks a fully built Catalog and returns an error if it is unusable.
type ValidatorFunc func(c *Catalog) error

// Builder provides a fluent interface for building catalogs
type Builder struct {
	opts        []Option
	file        string
	discovery   *DiscoveryOptions
	args        []string
	definitions []*Definition
	validators  []ValidatorFunc
	optional    bool
	seal        bool
}

// NewBuilder creates a new catalog builder
func NewBuilder() *Builder {
	return &Builder{
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFile sets the schema file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithDiscovery enables schema file discovery when no file was set explicitly
func (b *Builder) WithDiscovery(opts DiscoveryOptions) *Builder {
	b.discovery = &opts
	return b
}

// WithArgs sets the command-line arguments inspected by discovery
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithFactory sets the item parsing hook
func (b *Builder) WithFactory(f Factory) *Builder {
	b.opts = append(b.opts, WithFactory(f))
	return b
}

// WithFormat forces the schema file format
func (b *Builder) WithFormat(format string) *Builder {
	b.opts = append(b.opts, WithFormat(format))
	return b
}

// WithDefinition adds a definition declared in code. Code definitions are defined
// after the schema file, so they may extend definitions from it.
func (b *Builder) WithDefinition(def *Definition) *Builder {
	if def != nil {
		b.definitions = append(b.definitions, def)
	}
	return b
}

// WithOptionalFile makes a missing schema file non-fatal
func (b *Builder) WithOptionalFile() *Builder {
	b.optional = true
	return b
}

// WithSeal seals every registry once the catalog is built
func (b *Builder) WithSeal() *Builder {
	b.seal = true
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Catalog with all specified options
func (b *Builder) Build() (*Catalog, error) {
	c := NewCatalog(b.opts...)

	file := b.file
	if file == "" && b.discovery != nil {
		file = DiscoverFile(*b.discovery, b.args)
	}

	if file != "" {
		if err := c.LoadFile(file); err != nil {
			if !(b.optional && errors.Is(err, ErrSchemaNotFound)) {
				return nil, err
			}
		}
	} else if !b.optional && len(b.definitions) == 0 {
		return nil, fmt.Errorf("%w: no schema file given or discovered", ErrSchemaNotFound)
	}

	for _, def := range b.definitions {
		if err := c.Define(def); err != nil {
			return nil, fmt.Errorf("failed to define %q: %w", def.Name, err)
		}
	}

	for _, validator := range b.validators {
		if err := validator(c); err != nil {
			return nil, fmt.Errorf("catalog validation failed: %w", err)
		}
	}

	if b.seal {
		c.Seal()
	}
	return c, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Catalog {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("catalog build failed: %v", err))
	}
	return c
}
