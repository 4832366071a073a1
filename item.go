// FILE: lixenwraith/items/item.go
package items

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Item is one named entry of a registry: a switch, a parameter or a command descriptor.
// Registries read Name, Required, Vargs and the default value; everything else is
// carried for the collaborators that parse and coerce values.
type Item struct {
	Name        string
	LoName      string
	Type        string
	Description string
	Required    bool
	Vargs       bool
	Value       any
	HasValue    bool // Value was declared, even if it is nil or zero
	Extra       map[string]any
}

// Optional reports whether the item may be absent from bound params.
func (it *Item) Optional() bool {
	return !it.Required
}

// Set stores value under the item's name. Vargs items always receive a slice.
// Slices and maps are copied so params never share storage with a declared default.
func (it *Item) Set(params Params, value any) {
	if it.Vargs {
		value = toSlice(value)
	} else {
		value = cloneValue(value)
	}
	params[it.Name] = value
}

// Spec is a raw descriptor that still needs to be turned into an Item.
type Spec struct {
	Name        string         `mapstructure:"name"`
	Type        string         `mapstructure:"type"`
	Description string         `mapstructure:"description"`
	Required    *bool          `mapstructure:"required"`
	Optional    *bool          `mapstructure:"optional"`
	Vargs       bool           `mapstructure:"vargs"`
	Value       any            `mapstructure:"value"`
	HasValue    bool           `mapstructure:"-"`
	Extra       map[string]any `mapstructure:",remain"`
}

// Parsed is what a Factory hands back from Parse: either a *Spec that must be
// built with Factory.New, or an already constructed *Item.
type Parsed interface {
	parsed()
}

func (*Spec) parsed() {}
func (*Item) parsed() {}

// Factory is the item parsing hook. Parse turns raw declaration data (a name,
// a compact string, a descriptor map) into a Parsed value; New builds an Item
// from a descriptor.
type Factory interface {
	Parse(raw any, kind Kind) (Parsed, error)
	New(spec *Spec, kind Kind) (*Item, error)
}

// DefaultFactory understands compact strings, descriptor maps, Spec and Item values.
//
// Compact strings:
//
//	name            bare name
//	[name]          optional
//	name...         vargs
//	name:type       declared type
//	name=default    default value (implies optional)
//	[tags:string...]
type DefaultFactory struct{}

// Parse implements Factory.
func (DefaultFactory) Parse(raw any, kind Kind) (Parsed, error) {
	switch v := raw.(type) {
	case nil:
		return &Spec{}, nil
	case string:
		return parseCompact(v)
	case *Spec:
		s := *v
		return &s, nil
	case Spec:
		return &v, nil
	case *Item:
		return v, nil
	case Item:
		return &v, nil
	case map[string]any:
		return decodeSpec(v)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = val
		}
		return decodeSpec(m)
	default:
		return nil, fmt.Errorf("cannot parse %s declaration of type %T", kind.Singular, raw)
	}
}

// New implements Factory.
func (DefaultFactory) New(spec *Spec, kind Kind) (*Item, error) {
	if !isValidName(spec.Name) {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidName, kind.Singular, spec.Name)
	}

	required := kind.Required
	if spec.HasValue {
		required = false
	}
	if spec.Optional != nil {
		required = !*spec.Optional
	}
	if spec.Required != nil {
		required = *spec.Required
	}

	return &Item{
		Name:        spec.Name,
		LoName:      strings.ToLower(spec.Name),
		Type:        spec.Type,
		Description: spec.Description,
		Required:    required,
		Vargs:       spec.Vargs,
		Value:       spec.Value,
		HasValue:    spec.HasValue,
		Extra:       spec.Extra,
	}, nil
}

// parseCompact reads the compact string form of a descriptor
func parseCompact(s string) (*Spec, error) {
	spec := &Spec{}
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidName, s)
		}
		optional := true
		spec.Optional = &optional
		s = s[1 : len(s)-1]
	}

	if i := strings.IndexByte(s, '='); i >= 0 {
		spec.Value = s[i+1:]
		spec.HasValue = true
		s = s[:i]
	}

	if strings.HasSuffix(s, "...") {
		spec.Vargs = true
		s = strings.TrimSuffix(s, "...")
	}

	if i := strings.IndexByte(s, ':'); i >= 0 {
		spec.Type = s[i+1:]
		s = s[:i]
	}

	spec.Name = s
	return spec, nil
}

// decodeSpec decodes a descriptor map with mapstructure
func decodeSpec(m map[string]any) (*Spec, error) {
	spec := &Spec{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           spec,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("invalid descriptor: %w", err)
	}
	_, spec.HasValue = m["value"]
	return spec, nil
}

// cloneValue returns a shallow copy of slice and map values, anything else as is
func cloneValue(value any) any {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return value
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return value
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		entries := rv.MapRange()
		for entries.Next() {
			out.SetMapIndex(entries.Key(), entries.Value())
		}
		return out.Interface()
	default:
		return value
	}
}

// toSlice wraps scalars and copies slices so defaults are never shared with callers
func toSlice(value any) []any {
	if value == nil {
		return []any{}
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{value}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
