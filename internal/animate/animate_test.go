package animate

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"tree-transforms/internal/graph"
	"tree-transforms/internal/transform"
)

func TestSpinnerPaused(t *testing.T) {
	root := graph.New("root")
	s := NewSpinner(36)
	s.Add(root, mgl64.Vec3{0, 0, 1})
	assert.True(t, s.Paused())

	s.Step(time.Second)
	assert.Equal(t, transform.Identity(), *root.Transform())

	assert.False(t, s.Toggle())
	assert.True(t, s.Toggle())
}

func TestSpinnerStep(t *testing.T) {
	root := graph.New("root")
	child := root.EmplaceChild("child")
	child.Transform().Translate(mgl64.Vec3{2, 0, 0})

	// 360 degrees per 10 seconds, as the demo scene.
	s := NewSpinner(36)
	s.Add(root, mgl64.Vec3{0, 0, 1})
	s.SetPaused(false)
	for i := 0; i < 25; i++ {
		s.Step(100 * time.Millisecond)
	}
	// 2.5 s -> quarter turn: the child moves from +X to +Y.
	assert.InDelta(t, math.Pi/2, 25*0.1*s.Velocity, 1e-12)
	pos := child.WorldTransform().Pos()
	assert.InDeltaSlice(t, []float64{0, 2, 0}, pos[:], 1e-9, "child at %v", pos)
	assert.Len(t, s.Targets(), 1)
}

func TestClock(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewClock(50, start)
	assert.Equal(t, 20*time.Millisecond, c.Frame())

	assert.Equal(t, 0, c.Tick(start.Add(19*time.Millisecond)))
	assert.Equal(t, 1, c.Tick(start.Add(30*time.Millisecond)))
	// 10 ms carried over from the previous tick
	assert.Equal(t, 1, c.Tick(start.Add(40*time.Millisecond)))
	assert.Equal(t, 3, c.Tick(start.Add(100*time.Millisecond)))
	assert.Equal(t, 0, c.Tick(start.Add(110*time.Millisecond)))

	assert.Equal(t, time.Second/60, NewClock(0, start).Frame())
}
