package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/items"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
[git]
switches = "verbose"

[git.commands]
commit = {}
checkout = {}
co = "checkout"

[commit]
title = "git commit"
extends = "git"

[commit.switches]
message = { type = "string", required = true }
cleanup = { value = "strip" }
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.toml")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--schema", path}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "git", "commands", "co", "comm")
	require.NoError(t, err)
	assert.Contains(t, out, "co -> checkout")
	assert.Contains(t, out, "comm -> commit")

	_, err = run(t, "resolve", "git", "commands", "c")
	assert.ErrorIs(t, err, items.ErrAmbiguous)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "git", "commands")
	require.NoError(t, err)
	assert.Contains(t, out, "(aliases: co)")

	out, err = run(t, "list", "commit", "switch")
	require.NoError(t, err)
	assert.Contains(t, out, "message:string")
	assert.Contains(t, out, "verbose")

	_, err = run(t, "list", "commit", "flags")
	assert.Error(t, err)
}

func TestBindCommand(t *testing.T) {
	out, err := run(t, "bind", "commit", "switches", "m=hello")
	require.NoError(t, err)
	assert.Contains(t, out, "message = hello")
	assert.Contains(t, out, "cleanup = strip")

	_, err = run(t, "bind", "commit", "switches", "verbose=1")
	assert.ErrorIs(t, err, items.ErrMissingRequired)

	_, err = run(t, "bind", "commit", "switches", "oops")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "git commit")
	assert.Contains(t, out, "switches=3")
}
