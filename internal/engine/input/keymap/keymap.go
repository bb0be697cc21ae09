// Package keymap binds key names to demo actions. Key names are SDL
// scancode names ("F12", "Escape", "W") compared case-insensitively.
package keymap

import (
	"fmt"
	"sort"
	"strings"
)

// Action is something the demo does in response to a key press.
type Action int

const (
	None Action = iota
	Quit
	Screenshot
	ToggleWireframe
	ToggleRainbow
	ToggleClipPolicy
	TogglePause
	ResetCamera
)

var actionNames = map[Action]string{
	None:             "none",
	Quit:             "quit",
	Screenshot:       "screenshot",
	ToggleWireframe:  "toggle-wireframe",
	ToggleRainbow:    "toggle-rainbow",
	ToggleClipPolicy: "toggle-clip-policy",
	TogglePause:      "toggle-pause",
	ResetCamera:      "reset-camera",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}

// Keymap maps normalized key names to actions.
type Keymap map[string]Action

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Default returns the built-in bindings.
func Default() Keymap {
	return Keymap{
		"escape": Quit,
		"f12":    Screenshot,
		"w":      ToggleWireframe,
		"r":      ToggleRainbow,
		"c":      ToggleClipPolicy,
		"space":  TogglePause,
		"home":   ResetCamera,
	}
}

// Parse builds a keymap from key -> action name pairs, layered over the
// defaults. Binding a key to "none" removes it.
func Parse(bindings map[string]string) (Keymap, error) {
	k := Default()
	for key, name := range bindings {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", key, err)
		}
		if a == None {
			delete(k, normalize(key))
			continue
		}
		k[normalize(key)] = a
	}
	return k, nil
}

// Lookup returns the action bound to key, or None.
func (k Keymap) Lookup(key string) Action {
	return k[normalize(key)]
}

// Keys returns the bound key names in sorted order.
func (k Keymap) Keys() []string {
	keys := make([]string, 0, len(k))
	for key := range k {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
