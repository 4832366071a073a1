// FILE: lixenwraith/items/kind.go
package items

// Kind describes the category a registry holds. It drives error-message vocabulary,
// whether aliases are accepted, and whether items are required when a descriptor
// does not say otherwise.
type Kind struct {
	Singular  string // "switch"
	Plural    string // "switches"
	Aliasable bool   // only command namespaces accept aliases
	Required  bool   // default requiredness for descriptors that do not specify it
}

// Built-in kinds
var (
	Switches   = Kind{Singular: "switch", Plural: "switches"}
	Parameters = Kind{Singular: "parameter", Plural: "parameters", Required: true}
	Commands   = Kind{Singular: "command", Plural: "commands", Aliasable: true}
)

// Kinds returns the built-in kinds in schema order.
func Kinds() []Kind {
	return []Kind{Switches, Parameters, Commands}
}

// KindByName finds a built-in kind by its singular or plural label.
func KindByName(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Singular == name || k.Plural == name {
			return k, true
		}
	}
	return Kind{}, false
}

func (k Kind) String() string {
	return k.Plural
}

// Owner is anything that owns registries: a command, a container, the CLI root.
// Title is used verbatim in error messages. Parent returns the definition this
// owner inherits from, or nil.
//
// Owners are used as map keys by Catalog, so their dynamic type must be comparable.
type Owner interface {
	Title() string
	Parent() Owner
}

func ownerTitle(o Owner) string {
	if o == nil {
		return "<root>"
	}
	return o.Title()
}
