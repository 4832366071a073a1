// FILE: lixenwraith/items/errors.go
package items

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicate is returned when a name, its lowercase form or an alias is already registered
	ErrDuplicate = errors.New("duplicate entry")
	// ErrAliasUnsupported is returned by Alias on registries whose kind does not allow aliases
	ErrAliasUnsupported = errors.New("aliases not supported")
	// ErrNoMatch is returned by Canonicalize when a name resolves to nothing
	ErrNoMatch = errors.New("no match")
	// ErrAmbiguous is returned when a prefix matches more than one distinct item
	ErrAmbiguous = errors.New("ambiguous name")
	// ErrMissingRequired is returned by Validate when required items are absent
	ErrMissingRequired = errors.New("missing required entries")
	// ErrSealed is returned when adding to a registry that was sealed or published as a base
	ErrSealed = errors.New("registry is sealed")
	// ErrInvalidName is returned for empty or malformed item names
	ErrInvalidName = errors.New("invalid item name")
	// ErrUnknownItem is returned when an alias targets a name that is not registered
	ErrUnknownItem = errors.New("unknown item")

	// ErrSchemaNotFound indicates the schema file was not found
	ErrSchemaNotFound = errors.New("schema file not found")
	// ErrUnknownParent is returned when a definition extends a name that was never defined
	ErrUnknownParent = errors.New("unknown parent definition")
	// ErrCycle is returned when definitions extend each other in a loop
	ErrCycle = errors.New("inheritance cycle")
)

// AmbiguousError reports a name whose prefix matches several distinct items.
type AmbiguousError struct {
	Name    string
	Kind    Kind
	Owner   string
	Matches []string // first matching key of each candidate, in declaration order
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%q matches multiple %s for %s: %s", e.Name, e.Kind.Plural, e.Owner, strings.Join(e.Matches, ", "))
}

func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguous
}

// MissingError lists required items absent from a params map.
// Its message is meant to be shown to the end user as-is.
type MissingError struct {
	Kind  Kind
	Names []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required %s %q", e.Kind.Singular, strings.Join(e.Names, ", "))
}

func (e *MissingError) Unwrap() error {
	return ErrMissingRequired
}

func duplicateError(kind Kind, name string) error {
	return fmt.Errorf("%w: %s %q", ErrDuplicate, kind.Singular, name)
}

func noMatchError(name string, kind Kind, owner string) error {
	return fmt.Errorf("%w: %q matches no %s for %s", ErrNoMatch, name, kind.Plural, owner)
}
