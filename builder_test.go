// FILE: lixenwraith/items/builder_test.go
package items

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests the fluent catalog builder
func TestBuilder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "git.toml")
	require.NoError(t, os.WriteFile(path, []byte(gitTOML), 0644))

	t.Run("WithFile", func(t *testing.T) {
		c, err := NewBuilder().WithFile(path).Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"git", "commit"}, definitionNames(c))
	})

	t.Run("WithDiscovery", func(t *testing.T) {
		opts := DiscoveryOptions{Name: "git", Extensions: []string{".toml"}, Paths: []string{dir}}
		c, err := NewBuilder().WithDiscovery(opts).WithArgs(nil).Build()
		require.NoError(t, err)
		assert.Len(t, c.Definitions(), 2)
	})

	t.Run("DiscoveryFromArgs", func(t *testing.T) {
		opts := DiscoveryOptions{Name: "absent", CLIFlags: []string{"--schema"}}
		c, err := NewBuilder().WithDiscovery(opts).WithArgs([]string{"--schema", path}).Build()
		require.NoError(t, err)
		assert.Len(t, c.Definitions(), 2)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := NewBuilder().WithFile(filepath.Join(dir, "missing.toml")).Build()
		assert.ErrorIs(t, err, ErrSchemaNotFound)
	})

	t.Run("NothingToBuild", func(t *testing.T) {
		_, err := NewBuilder().Build()
		assert.ErrorIs(t, err, ErrSchemaNotFound)
	})

	t.Run("OptionalFile", func(t *testing.T) {
		c, err := NewBuilder().WithFile(filepath.Join(dir, "missing.toml")).WithOptionalFile().Build()
		require.NoError(t, err)
		assert.Empty(t, c.Definitions())
	})

	t.Run("OptionalFileParseErrorStillFails", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(bad, []byte("[git\n"), 0644))
		_, err := NewBuilder().WithFile(bad).WithOptionalFile().Build()
		assert.Error(t, err)
	})

	t.Run("CodeDefinitionsExtendFile", func(t *testing.T) {
		c, err := NewBuilder().
			WithFile(path).
			WithDefinition(&Definition{Name: "push", Extends: "git", Switches: "force"}).
			WithDefinition(nil).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"verbose", "dry-run", "force"}, itemNames(registryOf(t, c, "push", Switches)))
	})

	t.Run("DefinitionsOnly", func(t *testing.T) {
		c, err := NewBuilder().WithDefinition(&Definition{Name: "tool", Commands: "run"}).Build()
		require.NoError(t, err)
		assert.Len(t, c.Definitions(), 1)
	})

	t.Run("BadDefinition", func(t *testing.T) {
		_, err := NewBuilder().WithFile(path).WithDefinition(&Definition{Name: "git"}).Build()
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Validators", func(t *testing.T) {
		var calls []string
		errNoPush := errors.New("push is not defined")

		_, err := NewBuilder().
			WithFile(path).
			WithValidator(func(c *Catalog) error {
				calls = append(calls, "first")
				return nil
			}).
			WithValidator(nil).
			WithValidator(func(c *Catalog) error {
				calls = append(calls, "second")
				if _, ok := c.Definition("push"); !ok {
					return errNoPush
				}
				return nil
			}).
			Build()

		assert.ErrorIs(t, err, errNoPush)
		assert.Contains(t, err.Error(), "catalog validation failed")
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("WithSeal", func(t *testing.T) {
		c, err := NewBuilder().WithFile(path).WithSeal().Build()
		require.NoError(t, err)

		switches := registryOf(t, c, "commit", Switches)
		_, err = switches.Add("late")
		assert.ErrorIs(t, err, ErrSealed)
	})

	t.Run("WithFormatAndFactory", func(t *testing.T) {
		conf := filepath.Join(dir, "git.conf")
		require.NoError(t, os.WriteFile(conf, []byte(gitTOML), 0644))

		c, err := NewBuilder().WithFile(conf).WithFormat("toml").WithFactory(upperFactory{}).Build()
		require.NoError(t, err)
		assert.Equal(t, "custom", registryOf(t, c, "git", Switches).Get("verbose").Type)
	})

	t.Run("MustBuild", func(t *testing.T) {
		assert.NotPanics(t, func() { NewBuilder().WithFile(path).MustBuild() })
		assert.Panics(t, func() { NewBuilder().WithFile(filepath.Join(dir, "missing.toml")).MustBuild() })
	})
}
