package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBindings(t *testing.T) {
	k := Default()
	tests := []struct {
		key  string
		want Action
	}{
		{"F12", Screenshot},
		{"Escape", Quit},
		{"w", ToggleWireframe},
		{" R ", ToggleRainbow},
		{"C", ToggleClipPolicy},
		{"Space", TogglePause},
		{"Q", None},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, k.Lookup(tt.key), tt.key)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	k, err := Parse(map[string]string{
		"P":   "Screenshot",
		"F12": "none",
	})
	require.NoError(t, err)
	assert.Equal(t, Screenshot, k.Lookup("p"))
	assert.Equal(t, None, k.Lookup("F12"))
	assert.Equal(t, Quit, k.Lookup("Escape"))
	assert.NotContains(t, k.Keys(), "f12")
}

func TestParseRejectsUnknownAction(t *testing.T) {
	_, err := Parse(map[string]string{"X": "explode"})
	assert.ErrorContains(t, err, "explode")
}

func TestActionNamesRoundTrip(t *testing.T) {
	for a := None; a <= ResetCamera; a++ {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	assert.Equal(t, "Action(99)", Action(99).String())
}
