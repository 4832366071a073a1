// FILE: lixenwraith/items/registry.go
package items

import (
	"fmt"
	"iter"
	"strings"
	"sync"
)

// Registry manages a case-insensitive collection of named items of one Kind for one Owner.
// A registry derived from a base starts with a copy of the base's items, keys and aliases,
// and the base is sealed so the two can never drift apart.
//
// Registries are built first (Add, AddAll, Alias) and queried afterwards (Lookup,
// Canonicalize, SetDefaults, Validate). All methods are safe for concurrent use.
type Registry struct {
	kind    Kind
	owner   Owner
	base    *Registry
	factory Factory

	items   []*Item          // inherited items first, then local ones, in declaration order
	index   map[string]*Item // name, lowercase name and alias keys
	keys    []string         // index keys in insertion order, drives prefix scans
	aliases map[string]string

	sealed bool
	mutex  sync.RWMutex
}

// NewRegistry creates a registry for owner. When base is non-nil the new registry
// inherits everything base holds and base is sealed.
func NewRegistry(kind Kind, owner Owner, base *Registry, opts ...Option) *Registry {
	o := applyOptions(opts)

	r := &Registry{
		kind:    kind,
		owner:   owner,
		factory: o.factory,
		index:   make(map[string]*Item),
		aliases: make(map[string]string),
	}

	if base != nil {
		base.mutex.Lock()
		base.sealed = true

		r.base = base
		r.items = append([]*Item(nil), base.items...)
		r.keys = append([]string(nil), base.keys...)
		for k, v := range base.index {
			r.index[k] = v
		}
		for k, v := range base.aliases {
			r.aliases[k] = v
		}
		if len(opts) == 0 {
			r.factory = base.factory
		}
		base.mutex.Unlock()
	}

	return r
}

// Kind returns the registry's kind.
func (r *Registry) Kind() Kind { return r.kind }

// Owner returns the owner the registry belongs to.
func (r *Registry) Owner() Owner { return r.owner }

// Base returns the registry this one inherits from, or nil.
func (r *Registry) Base() *Registry { return r.base }

// Seal prevents further additions. It is idempotent.
// Returns true if this call changed the state from unsealed to sealed.
func (r *Registry) Seal() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	was := r.sealed
	r.sealed = true
	return !was
}

// Sealed reports whether the registry accepts no more additions.
func (r *Registry) Sealed() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.sealed
}

// Add registers one entry from a raw declaration. The parsed descriptor's own
// name is used.
func (r *Registry) Add(decl string) (*Item, error) {
	return r.add("", decl)
}

// AddItem registers raw under name. raw is parsed by the registry's Factory and
// name replaces whatever name the declaration carried.
func (r *Registry) AddItem(name string, raw any) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty %s name", ErrInvalidName, r.kind.Singular)
	}
	return r.add(name, raw)
}

func (r *Registry) add(name string, raw any) (*Item, error) {
	item, err := r.build(name, raw)
	if err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed {
		return nil, fmt.Errorf("%w: cannot add %s %q for %s", ErrSealed, r.kind.Singular, item.Name, ownerTitle(r.owner))
	}
	if err := r.canAdd(item.Name); err != nil {
		return nil, err
	}

	r.items = append(r.items, item)
	r.insert(item.Name, item)
	return item, nil
}

// build runs the parsing hook and normalizes the result
func (r *Registry) build(name string, raw any) (*Item, error) {
	parsed, err := r.factory.Parse(raw, r.kind)
	if err != nil {
		return nil, err
	}

	var item *Item
	switch p := parsed.(type) {
	case *Spec:
		if name != "" {
			p.Name = name
		}
		if item, err = r.factory.New(p, r.kind); err != nil {
			return nil, err
		}
	case *Item:
		// Never rename an item another registry may hold
		copied := *p
		item = &copied
		if name != "" {
			item.Name = name
		}
	default:
		return nil, fmt.Errorf("factory returned unsupported %T for %s", parsed, r.kind.Singular)
	}

	if !isValidName(item.Name) {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidName, r.kind.Singular, item.Name)
	}
	item.LoName = strings.ToLower(item.Name)
	return item, nil
}

// canAdd enforces uniqueness over the effective namespace, inherited keys included.
// Caller must hold the write lock.
func (r *Registry) canAdd(name string) error {
	if _, exists := r.index[name]; exists {
		return duplicateError(r.kind, name)
	}
	if _, exists := r.index[strings.ToLower(name)]; exists {
		return duplicateError(r.kind, name)
	}
	return nil
}

// insert adds name and its lowercase form as keys for item. Caller must hold the write lock.
func (r *Registry) insert(name string, item *Item) {
	r.index[name] = item
	r.keys = append(r.keys, name)
	if lo := strings.ToLower(name); lo != name {
		r.index[lo] = item
		r.keys = append(r.keys, lo)
	}
}

// Alias registers alias as another key for the item named actual.
// Only kinds marked Aliasable accept aliases.
func (r *Registry) Alias(alias, actual string) error {
	if !r.kind.Aliasable {
		return fmt.Errorf("%w: can only apply aliases to %s: %q = %q", ErrAliasUnsupported, Commands.Plural, alias, actual)
	}
	if !isValidName(alias) {
		return fmt.Errorf("%w: alias %q", ErrInvalidName, alias)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot alias %q for %s", ErrSealed, alias, ownerTitle(r.owner))
	}

	target := r.get(actual)
	if target == nil {
		return fmt.Errorf("%w: alias %q refers to unknown %s %q", ErrUnknownItem, alias, r.kind.Singular, actual)
	}
	if err := r.canAdd(alias); err != nil {
		return err
	}

	r.insert(alias, target)
	r.aliases[alias] = target.Name
	return nil
}

// Get returns the item stored under name or its lowercase form. No prefix matching.
func (r *Registry) Get(name string) *Item {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.get(name)
}

func (r *Registry) get(name string) *Item {
	if item, ok := r.index[name]; ok {
		return item
	}
	return r.index[strings.ToLower(name)]
}

// Lookup resolves a user supplied name. An exact or case-insensitive match wins;
// otherwise a prefix that selects exactly one item resolves to it. Returns nil, nil
// when nothing matches and an *AmbiguousError when several distinct items do.
func (r *Registry) Lookup(name string) (*Item, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.lookup(name)
}

func (r *Registry) lookup(name string) (*Item, error) {
	if name == "" {
		return nil, nil
	}
	if item := r.get(name); item != nil {
		return item, nil
	}

	loname := strings.ToLower(name)
	seen := make(map[*Item]bool)
	var found *Item
	var matches []string

	for _, key := range r.keys {
		item := r.index[key]
		if seen[item] {
			// already a candidate through another key ("fooBar" and "foobar")
			continue
		}
		if strings.HasPrefix(key, loname) || strings.HasPrefix(key, name) {
			seen[item] = true
			if found == nil {
				found = item
			}
			matches = append(matches, key)
		}
	}

	if len(matches) > 1 {
		return nil, &AmbiguousError{Name: name, Kind: r.kind, Owner: ownerTitle(r.owner), Matches: matches}
	}
	return found, nil
}

// Canonicalize resolves name like Lookup and returns the item's declared name.
func (r *Registry) Canonicalize(name string) (string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.canonicalize(name)
}

func (r *Registry) canonicalize(name string) (string, error) {
	item, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", noMatchError(name, r.kind, ownerTitle(r.owner))
	}
	return item.Name, nil
}

// SetDefaults fills params for every optional item that is absent: the declared
// default if there is one, an empty slice for vargs items, nothing otherwise.
// params must be non-nil.
func (r *Registry) SetDefaults(params Params) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	r.setDefaults(params)
}

func (r *Registry) setDefaults(params Params) {
	for _, item := range r.items {
		if !item.Optional() || params.Has(item.Name) {
			continue
		}
		if item.HasValue {
			item.Set(params, item.Value)
		} else if item.Vargs {
			params[item.Name] = []any{}
		}
	}
}

// Validate reports required items missing from params as a *MissingError.
// A nil result means there is no problem.
func (r *Registry) Validate(params Params) error {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.validate(params)
}

func (r *Registry) validate(params Params) error {
	var missing []string
	for _, item := range r.items {
		if item.Required && !params.Has(item.Name) {
			missing = append(missing, item.Name)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Kind: r.kind, Names: missing}
	}
	return nil
}

// All yields every distinct item once, inherited items first, in declaration order.
func (r *Registry) All() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for _, item := range r.Items() {
			if !yield(item) {
				return
			}
		}
	}
}

// Items returns a snapshot of the registry's items in declaration order.
func (r *Registry) Items() []*Item {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]*Item(nil), r.items...)
}

// Keys returns every lookup key (names, lowercase names, aliases) in insertion order.
func (r *Registry) Keys() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]string(nil), r.keys...)
}

// Aliases returns a copy of the alias to canonical name mapping.
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	aliases := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		aliases[k] = v
	}
	return aliases
}

// Len returns the number of distinct items.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.items)
}
