// FILE: lixenwraith/items/declare.go
package items

import "fmt"

// Entry is one name/value pair of an ordered declaration mapping.
type Entry struct {
	Name  string
	Value any
}

// Entries is a declaration mapping that keeps declaration order.
// Schema loaders produce it so registries see items in file order.
type Entries []Entry

// AddAll registers a batch of declarations. Accepted shapes:
//
//	"a b c"            whitespace separated declarations, each passed to Add
//	[]string           each passed to Add
//	[]any              strings go to Add, descriptors (maps, *Spec, *Item) to AddItem;
//	                   a map with name and alias keys declares an alias
//	Entries            ordered name -> declaration mapping
//	map[string]any     unordered mapping, processed in sorted key order
//
// In both mapping forms string values are alias declarations (name = target).
// They are applied after every other entry so an alias may refer to an item
// declared anywhere in the same mapping.
func (r *Registry) AddAll(all any) error {
	switch v := all.(type) {
	case nil:
		return nil
	case string:
		return r.addList(splitNames(v))
	case []string:
		return r.addList(v)
	case []any:
		return r.addAnyList(v)
	case Entries:
		return r.addEntries(v)
	case map[string]any:
		entries := make(Entries, 0, len(v))
		for _, name := range sortedKeys(v) {
			entries = append(entries, Entry{Name: name, Value: v[name]})
		}
		return r.addEntries(entries)
	case map[string]string:
		entries := make(Entries, 0, len(v))
		for _, name := range sortedKeys(v) {
			entries = append(entries, Entry{Name: name, Value: v[name]})
		}
		return r.addEntries(entries)
	default:
		return fmt.Errorf("unsupported %s declaration of type %T", r.kind.Singular, all)
	}
}

func (r *Registry) addList(decls []string) error {
	for _, decl := range decls {
		if _, err := r.Add(decl); err != nil {
			return err
		}
	}
	return nil
}

// addAnyList declares list elements in order, then the aliases among them
func (r *Registry) addAnyList(decls []any) error {
	for _, decl := range decls {
		if _, _, isAlias := aliasDecl(decl); isAlias {
			continue
		}
		if err := r.addAny(decl); err != nil {
			return err
		}
	}

	for _, decl := range decls {
		if alias, target, isAlias := aliasDecl(decl); isAlias {
			if err := r.Alias(alias, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// aliasDecl recognizes {name = "co", alias = "checkout"} list elements
func aliasDecl(decl any) (alias, target string, ok bool) {
	m, isMap := decl.(map[string]any)
	if !isMap {
		return "", "", false
	}
	target, ok = m["alias"].(string)
	if !ok {
		return "", "", false
	}
	alias, _ = m["name"].(string)
	return alias, target, true
}

// addAny handles one element of a []any declaration list
func (r *Registry) addAny(decl any) error {
	var err error
	switch d := decl.(type) {
	case string:
		_, err = r.Add(d)
	case map[string]any:
		name, _ := d["name"].(string)
		_, err = r.add(name, d)
	case *Spec:
		_, err = r.add(d.Name, d)
	case *Item:
		_, err = r.add(d.Name, d)
	default:
		_, err = r.add("", decl)
	}
	return err
}

func (r *Registry) addEntries(entries Entries) error {
	for _, e := range entries {
		if _, isAlias := e.Value.(string); isAlias {
			continue
		}
		if _, err := r.AddItem(e.Name, e.Value); err != nil {
			return err
		}
	}

	for _, e := range entries {
		if target, isAlias := e.Value.(string); isAlias {
			if err := r.Alias(e.Name, target); err != nil {
				return err
			}
		}
	}
	return nil
}
