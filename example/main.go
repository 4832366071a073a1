// FILE: lixenwraith/items/example/main.go
package main

import (
	"errors"
	"log"
	"os"

	"github.com/lixenwraith/items"
)

const schemaPath = "git.toml"

const schema = `
[git]
title = "git"
switches = "verbose [config:string...]"

[git.commands]
commit = { description = "Record changes to the repository" }
checkout = { description = "Switch branches" }
co = "checkout"
ci = "commit"

[commit]
title = "git commit"
extends = "git"
parameters = ["[paths...]"]

[commit.switches]
all = { type = "boolean", optional = true }
message = { type = "string", required = true }
cleanup = { type = "string", value = "strip" }
`

// CommitOptions receives the bound switches of "git commit"
type CommitOptions struct {
	Verbose bool     `item:"verbose"`
	All     bool     `item:"all"`
	Message string   `item:"message"`
	Cleanup string   `item:"cleanup"`
	Config  []string `item:"config"`
}

func main() {
	if err := os.WriteFile(schemaPath, []byte(schema), 0644); err != nil {
		log.Fatalf("Failed to write schema: %v", err)
	}
	defer os.Remove(schemaPath)

	cat, err := items.Quick(schemaPath)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	// Resolve abbreviated and aliased command names
	for _, name := range []string{"co", "comm", "CHECKOUT", "c"} {
		item, err := cat.Resolve("git", items.Commands, name)
		switch {
		case errors.Is(err, items.ErrAmbiguous):
			log.Printf("%-10s ambiguous: %v", name, err)
		case err != nil:
			log.Printf("%-10s error: %v", name, err)
		default:
			log.Printf("%-10s -> %s", name, item.Name)
		}
	}

	// Bind switches the way a parser would hand them over
	params, err := cat.Bind("commit", items.Switches, map[string]any{
		"m":    "initial import",
		"a":    true,
		"verb": true,
	})
	if err != nil {
		log.Fatalf("Failed to bind switches: %v", err)
	}

	var opts CommitOptions
	if err := params.Scan(&opts); err != nil {
		log.Fatalf("Failed to scan switches: %v", err)
	}
	log.Printf("commit options: %+v", opts)

	// Missing required switches are reported, not fatal
	if _, err := cat.Bind("commit", items.Switches, map[string]any{"all": true}); err != nil {
		log.Printf("usage problem: %v", err)
	}
}
