package items

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddStruct tests declaring items from tagged structs
func TestAddStruct(t *testing.T) {
	type Network struct {
		Host string `item:"host"`
		Port int    `item:"port"`
	}

	type Options struct {
		Verbose bool          `item:"verbose" desc:"Talk more"`
		Message string        `item:"message,required"`
		Level   int           `item:"level"`
		Timeout time.Duration `item:"timeout"`
		Since   time.Time     `item:"since"`
		Tags    []string      `item:"tags"`
		Net     Network       `item:"net"`
		Ignored string        `item:"-"`
		Plain   string
		hidden  string
	}

	defaults := &Options{Level: 2, Tags: []string{"x"}, Net: Network{Port: 22}}

	r := NewRegistry(Switches, &testOwner{title: "ssh"}, nil)
	require.NoError(t, r.AddStruct(defaults))

	assert.Equal(t, []string{"verbose", "message", "level", "timeout", "since", "tags", "net.host", "net.port", "Plain"}, itemNames(r))

	verbose := r.Get("verbose")
	assert.Equal(t, "boolean", verbose.Type)
	assert.Equal(t, "Talk more", verbose.Description)
	assert.False(t, verbose.HasValue, "zero values are not defaults")
	assert.False(t, verbose.Required)

	assert.True(t, r.Get("message").Required)

	level := r.Get("level")
	assert.Equal(t, "number", level.Type)
	assert.True(t, level.HasValue)
	assert.Equal(t, 2, level.Value)

	tags := r.Get("tags")
	assert.True(t, tags.Vargs)
	assert.Equal(t, "string", tags.Type)

	assert.Equal(t, 22, r.Get("net.port").Value)

	params := Params{"message": "hi"}
	r.SetDefaults(params)
	assert.Equal(t, 2, params["level"])
	assert.Equal(t, []any{"x"}, params["tags"])
	assert.NotContains(t, params, "verbose")

	t.Run("Errors", func(t *testing.T) {
		reg := NewRegistry(Switches, &testOwner{title: "x"}, nil)
		assert.Error(t, reg.AddStruct(42))
		var nilPtr *Options
		assert.Error(t, reg.AddStruct(nilPtr))
	})

	t.Run("DuplicateFieldsReported", func(t *testing.T) {
		type Clash struct {
			A string `item:"name"`
			B string `item:"NAME"`
		}
		reg := NewRegistry(Switches, &testOwner{title: "x"}, nil)
		err := reg.AddStruct(Clash{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to declare 1 field(s)")
		assert.Equal(t, 1, reg.Len())
	})
}
