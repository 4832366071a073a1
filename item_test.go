// FILE: lixenwraith/items/item_test.go
package items

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCompact tests the compact declaration syntax
func TestParseCompact(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		input string
		want  Spec
	}{
		{"name", Spec{Name: "name"}},
		{"[name]", Spec{Name: "name", Optional: boolPtr(true)}},
		{"files...", Spec{Name: "files", Vargs: true}},
		{"count:number", Spec{Name: "count", Type: "number"}},
		{"mode=fast", Spec{Name: "mode", Value: "fast", HasValue: true}},
		{"[tags:string...]", Spec{Name: "tags", Type: "string", Vargs: true, Optional: boolPtr(true)}},
		{"[level:number=3]", Spec{Name: "level", Type: "number", Value: "3", HasValue: true, Optional: boolPtr(true)}},
		{"empty=", Spec{Name: "empty", Value: "", HasValue: true}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseCompact(tt.input)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}

	_, err := parseCompact("[broken")
	assert.ErrorIs(t, err, ErrInvalidName)
}

// TestDefaultFactory tests descriptor parsing and item construction
func TestDefaultFactory(t *testing.T) {
	f := DefaultFactory{}

	t.Run("MapDescriptor", func(t *testing.T) {
		parsed, err := f.Parse(map[string]any{
			"type":        "number",
			"description": "How many",
			"vargs":       "true",
			"value":       nil,
			"help":        "extra field",
		}, Switches)
		require.NoError(t, err)

		spec, ok := parsed.(*Spec)
		require.True(t, ok)
		assert.Equal(t, "number", spec.Type)
		assert.True(t, spec.Vargs, "weakly typed input")
		assert.True(t, spec.HasValue, "a nil value is still declared")
		assert.Equal(t, "extra field", spec.Extra["help"])
	})

	t.Run("YAMLStyleMap", func(t *testing.T) {
		parsed, err := f.Parse(map[any]any{"type": "string"}, Switches)
		require.NoError(t, err)
		assert.Equal(t, "string", parsed.(*Spec).Type)
	})

	t.Run("ItemPassthrough", func(t *testing.T) {
		item := &Item{Name: "x"}
		parsed, err := f.Parse(item, Switches)
		require.NoError(t, err)
		assert.Same(t, item, parsed)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := f.Parse(3.14, Switches)
		assert.Error(t, err)
	})

	t.Run("Requiredness", func(t *testing.T) {
		yes, no := true, false
		tests := []struct {
			name string
			kind Kind
			spec Spec
			want bool
		}{
			{"ParameterDefault", Parameters, Spec{Name: "p"}, true},
			{"SwitchDefault", Switches, Spec{Name: "s"}, false},
			{"DefaultValueImpliesOptional", Parameters, Spec{Name: "p", HasValue: true}, false},
			{"ExplicitOptional", Parameters, Spec{Name: "p", Optional: &yes}, false},
			{"ExplicitRequired", Switches, Spec{Name: "s", Required: &yes}, true},
			{"RequiredWinsOverValue", Switches, Spec{Name: "s", HasValue: true, Required: &yes}, true},
			{"RequiredFalse", Parameters, Spec{Name: "p", Required: &no}, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				spec := tt.spec
				item, err := f.New(&spec, tt.kind)
				require.NoError(t, err)
				assert.Equal(t, tt.want, item.Required)
				assert.Equal(t, !tt.want, item.Optional())
			})
		}
	})
}

// TestItemSet tests value storage
func TestItemSet(t *testing.T) {
	params := Params{}

	(&Item{Name: "count"}).Set(params, 5)
	assert.Equal(t, 5, params["count"])

	(&Item{Name: "tags", Vargs: true}).Set(params, "one")
	assert.Equal(t, []any{"one"}, params["tags"])

	(&Item{Name: "files", Vargs: true}).Set(params, []string{"a", "b"})
	assert.Equal(t, []any{"a", "b"}, params["files"])

	(&Item{Name: "none", Vargs: true}).Set(params, nil)
	assert.Equal(t, []any{}, params["none"])

	t.Run("DefaultsAreCopied", func(t *testing.T) {
		hosts := &Item{Name: "hosts", Value: []string{"a", "b"}, HasValue: true}
		labels := &Item{Name: "labels", Value: map[string]string{"env": "dev"}, HasValue: true}
		r := NewRegistry(Switches, &testOwner{title: "deploy"}, nil)
		_, err := r.AddItem("hosts", hosts)
		require.NoError(t, err)
		_, err = r.AddItem("labels", labels)
		require.NoError(t, err)

		first := Params{}
		r.SetDefaults(first)
		first["hosts"].([]string)[0] = "changed"
		first["labels"].(map[string]string)["env"] = "prod"

		second := Params{}
		r.SetDefaults(second)
		assert.Equal(t, []string{"a", "b"}, second["hosts"])
		assert.Equal(t, map[string]string{"env": "dev"}, second["labels"])
		assert.Equal(t, []string{"a", "b"}, r.Get("hosts").Value)
	})
}

// upperFactory refuses "fail" and stamps every item with a custom type
type upperFactory struct{ DefaultFactory }

func (f upperFactory) Parse(raw any, kind Kind) (Parsed, error) {
	if s, ok := raw.(string); ok && s == "fail" {
		return nil, errors.New("refused")
	}
	return f.DefaultFactory.Parse(raw, kind)
}

func (f upperFactory) New(spec *Spec, kind Kind) (*Item, error) {
	item, err := f.DefaultFactory.New(spec, kind)
	if err != nil {
		return nil, err
	}
	item.Type = "custom"
	return item, nil
}

// TestCustomFactory tests that registries use and inherit the configured factory
func TestCustomFactory(t *testing.T) {
	parent := NewRegistry(Switches, &testOwner{title: "git"}, nil, WithFactory(upperFactory{}))
	item, err := parent.Add("verbose")
	require.NoError(t, err)
	assert.Equal(t, "custom", item.Type)

	_, err = parent.Add("fail")
	assert.EqualError(t, err, "refused")

	child := NewRegistry(Switches, &testOwner{title: "git commit"}, parent)
	item, err = child.Add("all")
	require.NoError(t, err)
	assert.Equal(t, "custom", item.Type)
}
