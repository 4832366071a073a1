// FILE: lixenwraith/items/bind_test.go
package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBind tests canonicalization, defaults and validation in one pass
func TestBind(t *testing.T) {
	r := NewRegistry(Switches, &testOwner{title: "git commit"}, nil)
	require.NoError(t, r.AddAll([]any{
		"all",
		map[string]any{"name": "message", "required": true},
		map[string]any{"name": "cleanup", "value": "strip"},
		"[trailer...]",
	}))

	t.Run("Success", func(t *testing.T) {
		params, err := r.Bind(map[string]any{"m": "msg", "ALL": true, "trail": "Signed-off-by: me"})
		require.NoError(t, err)
		assert.Equal(t, Params{
			"message": "msg",
			"all":     true,
			"cleanup": "strip",
			"trailer": []any{"Signed-off-by: me"},
		}, params)
	})

	t.Run("MissingRequired", func(t *testing.T) {
		params, err := r.Bind(map[string]any{"all": true})
		require.ErrorIs(t, err, ErrMissingRequired)
		assert.Equal(t, "strip", params["cleanup"], "defaults are applied even when validation fails")
	})

	t.Run("UnknownName", func(t *testing.T) {
		params, err := r.Bind(map[string]any{"message": "x", "amend": true})
		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Nil(t, params)
	})

	t.Run("Ambiguous", func(t *testing.T) {
		reg := newTestRegistry(t, Switches, "verbose version")
		_, err := reg.Bind(map[string]any{"ver": true})
		assert.ErrorIs(t, err, ErrAmbiguous)
	})

	t.Run("SameItemTwice", func(t *testing.T) {
		_, err := r.Bind(map[string]any{"message": "a", "mess": "b"})
		require.ErrorIs(t, err, ErrDuplicate)
		assert.Contains(t, err.Error(), `"message"`)
	})
}
