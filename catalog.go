// FILE: lixenwraith/items/catalog.go
package items

import (
	"fmt"
	"reflect"
	"sync"
)

// Definition is the stock Owner: a named command or container declaration with
// raw switch, parameter and command declarations in any shape AddAll accepts.
type Definition struct {
	Name        string
	Label       string // display title, defaults to Name
	Description string
	Extends     string // name of the parent definition

	Switches   any
	Parameters any
	Commands   any

	parent *Definition
}

// Title implements Owner.
func (d *Definition) Title() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// Parent implements Owner.
func (d *Definition) Parent() Owner {
	if d.parent == nil {
		return nil
	}
	return d.parent
}

// Declarations returns the raw declarations for kind.
func (d *Definition) Declarations(kind Kind) any {
	switch kind.Plural {
	case Switches.Plural:
		return d.Switches
	case Parameters.Plural:
		return d.Parameters
	case Commands.Plural:
		return d.Commands
	}
	return nil
}

// Catalog owns the registries of every owner, one per kind, and builds them on
// first use. It replaces hidden per-owner memo fields with an explicit cache.
type Catalog struct {
	registries  map[Owner]map[string]*Registry // owner -> kind plural -> registry
	definitions map[string]*Definition
	order       []string
	opts        []Option
	sealed      bool
	mutex       sync.Mutex
}

// NewCatalog creates an empty catalog. Options are passed to every registry it builds.
func NewCatalog(opts ...Option) *Catalog {
	return &Catalog{
		registries:  make(map[Owner]map[string]*Registry),
		definitions: make(map[string]*Definition),
		opts:        opts,
	}
}

// Registry returns the registry of kind for owner, creating it (and, first, the
// registries of owner's ancestors) if needed.
func (c *Catalog) Registry(owner Owner, kind Kind) (*Registry, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.registry(owner, kind, make(map[Owner]bool))
}

func (c *Catalog) registry(owner Owner, kind Kind, visiting map[Owner]bool) (*Registry, error) {
	if owner == nil {
		return nil, fmt.Errorf("registry owner cannot be nil")
	}
	if !reflect.TypeOf(owner).Comparable() {
		return nil, fmt.Errorf("registry owner of type %T is not comparable", owner)
	}

	if reg, ok := c.registries[owner][kind.Plural]; ok {
		return reg, nil
	}
	if visiting[owner] {
		return nil, fmt.Errorf("%w: %s", ErrCycle, owner.Title())
	}
	visiting[owner] = true

	var base *Registry
	if parent := owner.Parent(); parent != nil {
		var err error
		if base, err = c.registry(parent, kind, visiting); err != nil {
			return nil, err
		}
	}

	reg := NewRegistry(kind, owner, base, c.opts...)
	if c.sealed {
		reg.Seal()
	}
	if c.registries[owner] == nil {
		c.registries[owner] = make(map[string]*Registry)
	}
	c.registries[owner][kind.Plural] = reg
	return reg, nil
}

// Define adds a definition and declares its items. The parent named by Extends
// must already be defined. The definition is published only once every kind
// was declared; on failure it is not published and its registries are dropped.
func (c *Catalog) Define(def *Definition) error {
	if def == nil || !isValidName(def.Name) {
		return fmt.Errorf("%w: definition name", ErrInvalidName)
	}

	c.mutex.Lock()
	err := c.checkDefinition(def)
	c.mutex.Unlock()
	if err != nil {
		return err
	}

	for _, kind := range Kinds() {
		decls := def.Declarations(kind)
		if decls == nil {
			continue
		}
		reg, err := c.Registry(def, kind)
		if err == nil {
			err = reg.AddAll(decls)
		}
		if err != nil {
			c.discard(def)
			return fmt.Errorf("definition %q %s: %w", def.Name, kind.Plural, err)
		}
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, exists := c.definitions[def.Name]; exists {
		delete(c.registries, Owner(def))
		return fmt.Errorf("%w: definition %q", ErrDuplicate, def.Name)
	}
	c.definitions[def.Name] = def
	c.order = append(c.order, def.Name)
	return nil
}

// checkDefinition resolves def's parent. Caller must hold the lock.
func (c *Catalog) checkDefinition(def *Definition) error {
	if c.sealed {
		return fmt.Errorf("%w: cannot define %q", ErrSealed, def.Name)
	}
	if _, exists := c.definitions[def.Name]; exists {
		return fmt.Errorf("%w: definition %q", ErrDuplicate, def.Name)
	}
	def.parent = nil
	if def.Extends != "" {
		parent, ok := c.definitions[def.Extends]
		if !ok {
			return fmt.Errorf("%w: %q extends %q", ErrUnknownParent, def.Name, def.Extends)
		}
		def.parent = parent
	}
	return nil
}

// discard drops the registries of a definition that failed to define
func (c *Catalog) discard(def *Definition) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.registries, Owner(def))
}

// Definition returns a definition by name.
func (c *Catalog) Definition(name string) (*Definition, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	def, ok := c.definitions[name]
	return def, ok
}

// Definitions returns all definitions in the order they were defined.
func (c *Catalog) Definitions() []*Definition {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	defs := make([]*Definition, 0, len(c.order))
	for _, name := range c.order {
		defs = append(defs, c.definitions[name])
	}
	return defs
}

// Seal makes the catalog read-only: every registry, including those built
// later on demand, rejects new items, and Define fails with ErrSealed.
func (c *Catalog) Seal() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.sealed = true
	for _, byKind := range c.registries {
		for _, reg := range byKind {
			reg.Seal()
		}
	}
}
