// File: lixenwraith/items/io.go
package items

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a schema file into a new Catalog.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	c := NewCatalog(opts...)
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a schema file and defines everything it declares.
// Returns ErrSchemaNotFound if the file does not exist.
func (c *Catalog) LoadFile(path string) error {
	o := applyOptions(c.opts)

	fileInfo, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
		}
		return fmt.Errorf("failed to stat schema file '%s': %w", path, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("schema path '%s' is a directory", path)
	}
	if o.maxFileSize > 0 && fileInfo.Size() > o.maxFileSize {
		return fmt.Errorf("schema file '%s' exceeds maximum size %d bytes", path, o.maxFileSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open schema file '%s': %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if o.maxFileSize > 0 {
		reader = io.LimitReader(file, o.maxFileSize)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read schema file '%s': %w", path, err)
	}

	// Determine format: forced, then extension, then content
	format := o.format
	if format == "" || format == "auto" {
		format = detectFileFormat(path)
	}

	if err := c.Load(data, format); err != nil {
		return fmt.Errorf("schema file '%s': %w", path, err)
	}
	return nil
}

// Save writes the catalog's definitions to a TOML file.
// Definitions keep their order, and each kind is written as an array of tables
// so items and aliases keep declaration order too. Only locally declared items
// and aliases are written; inherited ones come back through extends.
// TOML has no null, so a default declared as nil is not written.
func (c *Catalog) Save(path string) error {
	var buf bytes.Buffer

	for i, def := range c.Definitions() {
		body := make(map[string]any)
		if def.Label != "" {
			body["title"] = def.Label
		}
		if def.Description != "" {
			body["description"] = def.Description
		}
		if def.Extends != "" {
			body["extends"] = def.Extends
		}

		for _, kind := range Kinds() {
			c.mutex.Lock()
			reg, ok := c.registries[Owner(def)][kind.Plural]
			c.mutex.Unlock()
			if !ok {
				continue
			}
			if decls := reg.export(); len(decls) > 0 {
				body[kind.Plural] = decls
			}
		}

		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := toml.NewEncoder(&buf).Encode(map[string]any{def.Name: body}); err != nil {
			return fmt.Errorf("failed to marshal definition %q to TOML: %w", def.Name, err)
		}
	}

	return atomicWriteFile(path, buf.Bytes())
}

// export renders local items, then local aliases, as ordered declaration tables
func (r *Registry) export() []map[string]any {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	inherited := 0
	var baseAliases map[string]string
	if r.base != nil {
		inherited = r.base.Len()
		baseAliases = r.base.Aliases()
	}

	decls := make([]map[string]any, 0, len(r.items)-inherited)
	for _, item := range r.items[inherited:] {
		desc := make(map[string]any, len(item.Extra)+6)
		for k, v := range item.Extra {
			desc[k] = v
		}
		desc["name"] = item.Name
		if item.Type != "" {
			desc["type"] = item.Type
		}
		if item.Description != "" {
			desc["description"] = item.Description
		}
		if item.Required != r.kind.Required {
			desc["required"] = item.Required
		}
		if item.Vargs {
			desc["vargs"] = true
		}
		if item.HasValue && item.Value != nil {
			desc["value"] = item.Value
		}
		decls = append(decls, desc)
	}

	// Aliases in key order, which is the order they were declared in
	for _, key := range r.keys {
		target, ok := r.aliases[key]
		if !ok {
			continue
		}
		if _, fromBase := baseAliases[key]; fromBase {
			continue
		}
		decls = append(decls, map[string]any{"name": key, "alias": target})
	}
	return decls
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
