// File: lixenwraith/items/doc.go

// Package items provides the name registry underneath declarative command-line
// definitions: switches (options), parameters (positional arguments) and commands
// (subcommands).
//
// Features:
//   - Unique, case-insensitive names per registry, inherited names included
//   - Inheritance: a registry derived from a base starts with the base's items
//   - Resolution by exact name, lowercase name or unambiguous prefix
//   - Aliases for command registries
//   - Default values for optional items, empty slices for vargs items
//   - Required item validation with user-presentable messages
//   - Schema files in TOML, YAML or JSON with order-preserving item tables
//   - Struct declaration with tag support and struct scanning of bound params
//
// Quick Start:
//
//	reg := items.NewRegistry(items.Switches, owner, nil)
//	_ = reg.AddAll("verbose [count:number=1] [tags...]")
//
//	name, err := reg.Canonicalize("verb") // "verbose"
//
//	params := items.Params{"verbose": true}
//	reg.SetDefaults(params)                // count=1, tags=[]
//	if err := reg.Validate(params); err != nil {
//	    fmt.Println(err) // missing required switch "verbose"
//	}
//
// Inheritance:
//
//	cat := items.NewCatalog()
//	_ = cat.Define(&items.Definition{Name: "git", Switches: "verbose"})
//	_ = cat.Define(&items.Definition{Name: "commit", Label: "git commit", Extends: "git", Switches: "all"})
//	reg, _ := cat.Registry(commitDef, items.Switches) // verbose, all
//
// A registry that becomes the base of another is sealed: it accepts no more items,
// so parents must be fully declared before children derive from them.
//
// Thread Safety:
// All operations are thread-safe. Registries use read-write mutexes so lookups
// from many goroutines proceed concurrently once definition is complete.
package items
