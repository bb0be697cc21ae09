package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
)

func TestEasing(t *testing.T) {
	fn, err := Easing("Linear")
	require.NoError(t, err)
	assert.InDelta(t, 5, fn(0.5, 0, 10, 1), 1e-6)

	_, err = Easing("wobble")
	assert.ErrorContains(t, err, "wobble")

	names := EasingNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "in-out-sine")
}

func TestLoopWraps(t *testing.T) {
	tr := Loop("head", RotationY, 0, 10, 1, ease.Linear)

	assert.InDelta(t, 2.5, tr.Update(0.25), 1e-5)
	assert.InDelta(t, 7.5, tr.Update(0.5), 1e-5)
	assert.InDelta(t, 2.5, tr.Update(0.5), 1e-5)
	assert.InDelta(t, 2.5, tr.Value(), 1e-5)
}

func TestYoyoReturns(t *testing.T) {
	tr := Yoyo("head", ColorOffset, 0, 10, 1, ease.Linear)

	assert.InDelta(t, 5, tr.Update(1.5), 1e-5)
	assert.InDelta(t, 2.5, tr.Update(0.25), 1e-5)
}

func TestReset(t *testing.T) {
	tr := Yoyo("head", ColorOffset, 2, 10, 1, ease.Linear)
	tr.Update(1.5)
	tr.Reset()
	assert.InDelta(t, 2, tr.Value(), 1e-6)
	assert.InDelta(t, 6, tr.Update(0.5), 1e-5)
}

func TestAnimatorWritesNodes(t *testing.T) {
	root := scene.NewNode("root")
	root.AddChild(scene.NewNode("head"))

	var a Animator
	a.Add(
		Loop("head", RotationY, 0, 4, 1, ease.Linear),
		Loop("head", ColorRotationZ, 0, 8, 1, ease.Linear),
		Loop("gone", RotationX, 0, 1, 1, ease.Linear),
	)
	missing := a.Update(&root, 0.5)

	assert.Equal(t, 1, missing)
	head := root.Find("head")
	require.NotNil(t, head)
	assert.InDelta(t, 2, head.Rotation.Y, 1e-5)
	assert.InDelta(t, 4, head.ColorRotation.Z, 1e-5)
	assert.Len(t, a.Tracks(), 3)
}

func TestAnimatorPaused(t *testing.T) {
	root := scene.NewNode("head")
	a := Animator{Paused: true}
	a.Add(Loop("head", RotationZ, 1, 2, 1, ease.Linear))

	a.Update(&root, 0.5)
	assert.InDelta(t, 1, root.Rotation.Z, 1e-6)
}

func TestPropertyString(t *testing.T) {
	assert.Equal(t, "rotation.y", RotationY.String())
	assert.Equal(t, "color_offset", ColorOffset.String())
	assert.Equal(t, "Property(42)", Property(42).String())
}
