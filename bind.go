// FILE: lixenwraith/items/bind.go
package items

import "fmt"

// Bind turns user supplied name/value pairs into Params: every name is
// canonicalized, defaults are applied and required items are checked.
// When only required items are missing the filled params are returned together
// with the *MissingError so callers can still render usage from them.
func (r *Registry) Bind(raw map[string]any) (Params, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	params := make(Params, len(raw))
	given := make(map[string]string, len(raw))

	for _, name := range sortedKeys(raw) {
		canonical, err := r.canonicalize(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := given[canonical]; dup {
			return nil, fmt.Errorf("%w: %s %q given as both %q and %q", ErrDuplicate, r.kind.Singular, canonical, prev, name)
		}
		given[canonical] = name
		r.get(canonical).Set(params, raw[name])
	}

	r.setDefaults(params)
	if err := r.validate(params); err != nil {
		return params, err
	}
	return params, nil
}
