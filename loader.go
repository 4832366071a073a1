// FILE: lixenwraith/items/loader.go
package items

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// A schema document is a table of definitions keyed by name:
//
//	[git]
//	title = "git"
//	switches = "verbose"
//
//	[git.commands]
//	commit = { description = "Record changes" }
//	ci = "commit"
//
//	[commit]
//	extends = "git"
//	parameters = ["[paths...]"]
//
// Each definition may carry title, description, extends and one declaration per
// kind (switches, parameters, commands) in any shape Registry.AddAll accepts.
// Item tables keep their order from the file. A kind may also be an array of
// tables, one item per entry with a name key; an entry with an alias key instead
// declares an alias ([[git.commands]] name = "co" alias = "checkout"). Catalog.Save
// writes this form.

// rawDefinition is a definition as read from a document, before it is defined
type rawDefinition struct {
	name   string
	fields map[string]string
	kinds  map[string]any
}

// Load parses a schema document and defines everything it declares.
// format is "toml", "yaml", "json" or "" / "auto" to detect it from content.
func (c *Catalog) Load(data []byte, format string) error {
	if format == "" || format == "auto" {
		format = detectFormatFromContent(data)
		if format == "" {
			return fmt.Errorf("unable to determine schema format")
		}
	}

	var (
		raws []rawDefinition
		err  error
	)
	switch format {
	case "toml":
		raws, err = parseTOML(data)
	case "yaml", "json":
		// JSON is parsed as YAML so mapping order survives
		raws, err = parseYAML(data)
	default:
		return fmt.Errorf("unsupported schema format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s schema: %w", strings.ToUpper(format), err)
	}

	return c.defineAll(raws)
}

// defineAll defines parents before children regardless of document order
func (c *Catalog) defineAll(raws []rawDefinition) error {
	pending := make([]*Definition, 0, len(raws))
	declared := make(map[string]bool, len(raws))
	for _, raw := range raws {
		def, err := raw.definition()
		if err != nil {
			return err
		}
		pending = append(pending, def)
		declared[def.Name] = true
	}

	for len(pending) > 0 {
		var rest []*Definition
		for _, def := range pending {
			if def.Extends != "" {
				if _, ok := c.Definition(def.Extends); !ok {
					if !declared[def.Extends] {
						return fmt.Errorf("%w: %q extends %q", ErrUnknownParent, def.Name, def.Extends)
					}
					rest = append(rest, def)
					continue
				}
			}
			if err := c.Define(def); err != nil {
				return err
			}
		}

		if len(rest) == len(pending) {
			names := make([]string, 0, len(rest))
			for _, def := range rest {
				names = append(names, def.Name)
			}
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(names, ", "))
		}
		pending = rest
	}
	return nil
}

func (raw rawDefinition) definition() (*Definition, error) {
	def := &Definition{
		Name:        raw.name,
		Label:       raw.fields["title"],
		Description: raw.fields["description"],
		Extends:     raw.fields["extends"],
	}
	for plural, decls := range raw.kinds {
		switch plural {
		case Switches.Plural:
			def.Switches = decls
		case Parameters.Plural:
			def.Parameters = decls
		case Commands.Plural:
			def.Commands = decls
		}
	}
	return def, nil
}

// parseTOML reads definitions, using the decoder's metadata for key order
func parseTOML(data []byte) ([]rawDefinition, error) {
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}

	var raws []rawDefinition
	for _, name := range tomlOrder(md, nil, doc) {
		body, ok := doc[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("definition %q must be a table, got %T", name, doc[name])
		}

		raw := rawDefinition{name: name, fields: make(map[string]string), kinds: make(map[string]any)}
		for _, key := range tomlOrder(md, []string{name}, body) {
			value := body[key]
			kind, isKind := KindByName(key)
			if !isKind {
				s, ok := value.(string)
				if !ok {
					return nil, fmt.Errorf("definition %q: field %q must be a string, got %T", name, key, value)
				}
				raw.fields[key] = s
				continue
			}

			switch v := value.(type) {
			case map[string]any:
				entries := make(Entries, 0, len(v))
				for _, itemName := range tomlOrder(md, []string{name, key}, v) {
					entries = append(entries, Entry{Name: itemName, Value: v[itemName]})
				}
				raw.kinds[kind.Plural] = entries
			case []map[string]any:
				list := make([]any, len(v))
				for i, m := range v {
					list[i] = m
				}
				raw.kinds[kind.Plural] = list
			case []any, string:
				raw.kinds[kind.Plural] = v
			default:
				return nil, fmt.Errorf("definition %q: unsupported %s declaration %T", name, kind.Plural, value)
			}
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// tomlOrder returns the keys of m (found at parent) in document order.
// Keys the metadata does not report come last, sorted.
func tomlOrder(md toml.MetaData, parent []string, m map[string]any) []string {
	seen := make(map[string]bool, len(m))
	keys := make([]string, 0, len(m))

	for _, key := range md.Keys() {
		if len(key) != len(parent)+1 || !hasPrefix(key, parent) {
			continue
		}
		k := key[len(key)-1]
		if _, exists := m[k]; exists && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func hasPrefix(key toml.Key, prefix []string) bool {
	for i, p := range prefix {
		if key[i] != p {
			return false
		}
	}
	return true
}

// parseYAML reads definitions from a YAML or JSON document node
func parseYAML(data []byte) ([]rawDefinition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		doc = doc.Content[0]
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema root must be a mapping of definitions")
	}

	var raws []rawDefinition
	for i := 0; i+1 < len(doc.Content); i += 2 {
		name, body := doc.Content[i].Value, doc.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("definition %q must be a mapping (line %d)", name, body.Line)
		}

		raw := rawDefinition{name: name, fields: make(map[string]string), kinds: make(map[string]any)}
		for j := 0; j+1 < len(body.Content); j += 2 {
			key, value := body.Content[j].Value, body.Content[j+1]
			kind, isKind := KindByName(key)
			if !isKind {
				if value.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("definition %q: field %q must be a scalar (line %d)", name, key, value.Line)
				}
				raw.fields[key] = value.Value
				continue
			}

			decls, err := yamlDeclarations(value)
			if err != nil {
				return nil, fmt.Errorf("definition %q %s: %w", name, kind.Plural, err)
			}
			raw.kinds[kind.Plural] = decls
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// yamlDeclarations converts a declaration node, keeping mapping order as Entries
func yamlDeclarations(node *yaml.Node) (any, error) {
	if node.Kind != yaml.MappingNode {
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}

	entries := make(Entries, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v any
		if err := node.Content[i+1].Decode(&v); err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: node.Content[i].Value, Value: v})
	}
	return entries, nil
}

// schemaFormats maps file extensions to schema formats, in discovery preference order
var schemaFormats = []struct{ ext, format string }{
	{".toml", "toml"},
	{".tml", "toml"},
	{".yaml", "yaml"},
	{".yml", "yaml"},
	{".json", "json"},
}

// SchemaExtensions returns the file extensions schema files are recognized by.
func SchemaExtensions() []string {
	exts := make([]string, len(schemaFormats))
	for i, f := range schemaFormats {
		exts[i] = f.ext
	}
	return exts
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range schemaFormats {
		if f.ext == ext {
			return f.format
		}
	}
	return ""
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// TOML before YAML: plain "key = value" lines are valid YAML scalars too
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
