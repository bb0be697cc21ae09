// Package animation drives node properties with looping tweens: the head's
// spin and the rainbow colour rotation.
//
// There is no global clock. The app calls Animator.Update once per frame
// with the elapsed seconds.
package animation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
)

var easings = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"in-out-sine":    ease.InOutSine,
	"in-out-quad":    ease.InOutQuad,
	"in-out-cubic":   ease.InOutCubic,
	"in-out-back":    ease.InOutBack,
	"in-out-elastic": ease.InOutElastic,
	"out-bounce":     ease.OutBounce,
}

// Easing returns the easing function registered under name.
func Easing(name string) (ease.TweenFunc, error) {
	fn, ok := easings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (want one of %s)", name, strings.Join(EasingNames(), ", "))
	}
	return fn, nil
}

// EasingNames returns the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Property selects the node field a track writes.
type Property int

const (
	RotationX Property = iota
	RotationY
	RotationZ
	ColorRotationX
	ColorRotationY
	ColorRotationZ
	ColorOffset
)

func (p Property) String() string {
	switch p {
	case RotationX:
		return "rotation.x"
	case RotationY:
		return "rotation.y"
	case RotationZ:
		return "rotation.z"
	case ColorRotationX:
		return "color_rotation.x"
	case ColorRotationY:
		return "color_rotation.y"
	case ColorRotationZ:
		return "color_rotation.z"
	case ColorOffset:
		return "color_offset"
	default:
		return fmt.Sprintf("Property(%d)", int(p))
	}
}

func (p Property) set(n *scene.Node, v float32) {
	switch p {
	case RotationX:
		n.Rotation.X = v
	case RotationY:
		n.Rotation.Y = v
	case RotationZ:
		n.Rotation.Z = v
	case ColorRotationX:
		n.ColorRotation.X = v
	case ColorRotationY:
		n.ColorRotation.Y = v
	case ColorRotationZ:
		n.ColorRotation.Z = v
	case ColorOffset:
		n.ColorOffset = v
	}
}

// Track tweens one property of the named node forever.
type Track struct {
	Target   string
	Property Property

	seq   *gween.Sequence
	value float32
}

// Loop returns a track that runs from..to over period seconds and then
// starts over.
func Loop(target string, prop Property, from, to, period float32, fn ease.TweenFunc) *Track {
	seq := gween.NewSequence(gween.New(from, to, period, fn))
	seq.SetLoop(-1)
	return &Track{Target: target, Property: prop, seq: seq, value: from}
}

// Yoyo returns a track that runs from..to over period seconds and back
// again.
func Yoyo(target string, prop Property, from, to, period float32, fn ease.TweenFunc) *Track {
	seq := gween.NewSequence(gween.New(from, to, period, fn))
	seq.SetLoop(-1)
	seq.SetYoyo(true)
	return &Track{Target: target, Property: prop, seq: seq, value: from}
}

// Update advances the track by dt seconds and returns the new value.
func (t *Track) Update(dt float32) float32 {
	t.value, _, _ = t.seq.Update(dt)
	return t.value
}

// Value returns the most recent value.
func (t *Track) Value() float32 {
	return t.value
}

// Reset rewinds the track to its start.
func (t *Track) Reset() {
	t.seq.SetReverse(false)
	t.seq.Reset()
	t.value, _, _ = t.seq.Update(0)
}

// Animator owns a set of tracks.
type Animator struct {
	Paused bool

	tracks []*Track
}

// Add appends tracks.
func (a *Animator) Add(tracks ...*Track) {
	a.tracks = append(a.tracks, tracks...)
}

// Tracks returns the registered tracks.
func (a *Animator) Tracks() []*Track {
	return a.tracks
}

// Update advances every track by dt and writes the values into the nodes
// under root. It returns the number of tracks whose target was not found.
func (a *Animator) Update(root *scene.Node, dt float32) int {
	if a.Paused {
		dt = 0
	}
	missing := 0
	for _, t := range a.tracks {
		v := t.Update(dt)
		n := root.Find(t.Target)
		if n == nil {
			missing++
			continue
		}
		t.Property.set(n, v)
	}
	return missing
}
