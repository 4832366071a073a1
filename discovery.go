// FILE: lixenwraith/items/discovery.go
package items

import (
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// DiscoveryOptions says where to look for a schema file
type DiscoveryOptions struct {
	// Schema file name without extension
	Name string

	// Extensions tried in each directory, in order. Empty means SchemaExtensions().
	Extensions []string

	// Directories searched before the current and XDG directories
	Paths []string

	// Environment variable naming a schema file or a directory holding one
	EnvVar string

	// Command-line flags naming a schema file or directory, e.g. "--schema", "-s"
	CLIFlags []string

	UseXDG        bool
	UseCurrentDir bool
}

// DefaultDiscoveryOptions looks for <appName>.{toml,tml,yaml,yml,json} named by
// --schema/-s or <APP_NAME>_SCHEMA, then in the current and XDG config directories.
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:          appName,
		EnvVar:        strings.ToUpper(strings.ReplaceAll(appName, "-", "_")) + "_SCHEMA",
		CLIFlags:      []string{"--schema", "-s"},
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverFile finds a schema file. A path given through args or the environment
// variable wins, even if it does not exist, so the load reports it; a directory
// given that way is searched for the schema name instead. Otherwise the search
// directories are tried in order. Returns "" when nothing is found.
func DiscoverFile(opts DiscoveryOptions, args []string) string {
	explicit := flagValue(opts.CLIFlags, args)
	if explicit == "" && opts.EnvVar != "" {
		explicit = os.Getenv(opts.EnvVar)
	}
	if explicit != "" {
		if info, err := os.Stat(explicit); err == nil && info.IsDir() {
			return findSchema(opts, explicit)
		}
		return explicit
	}

	for dir := range searchDirs(opts) {
		if path := findSchema(opts, dir); path != "" {
			return path
		}
	}
	return ""
}

// flagValue returns the value of the first of flags found in args
func flagValue(flags, args []string) string {
	for i, arg := range args {
		for _, flag := range flags {
			if arg == flag && i+1 < len(args) {
				return args[i+1]
			}
			if value, ok := strings.CutPrefix(arg, flag+"="); ok {
				return value
			}
		}
	}
	return ""
}

// findSchema returns the first <Name><ext> regular file in dir
func findSchema(opts DiscoveryOptions, dir string) string {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = SchemaExtensions()
	}
	for _, ext := range exts {
		path := filepath.Join(dir, opts.Name+ext)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// searchDirs yields the configured paths, the working directory and the XDG
// config directories for opts.Name
func searchDirs(opts DiscoveryOptions) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, dir := range opts.Paths {
			if !yield(dir) {
				return
			}
		}

		if opts.UseCurrentDir {
			if cwd, err := os.Getwd(); err == nil && !yield(cwd) {
				return
			}
		}

		if !opts.UseXDG {
			return
		}
		if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
			if !yield(filepath.Join(xdgHome, opts.Name)) {
				return
			}
		} else if home, err := os.UserHomeDir(); err == nil {
			if !yield(filepath.Join(home, ".config", opts.Name)) {
				return
			}
		}
		for _, dir := range filepath.SplitList(os.Getenv("XDG_CONFIG_DIRS")) {
			if dir != "" && !yield(filepath.Join(dir, opts.Name)) {
				return
			}
		}
	}
}
