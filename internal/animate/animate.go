// Package animate drives per-frame changes to local transforms.
package animate

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"tree-transforms/internal/graph"
)

// Target is an object spun about an axis of its own local frame.
type Target struct {
	Object *graph.Object
	Axis   mgl64.Vec3
}

// Spinner rotates its targets at a fixed angular velocity. It starts paused.
type Spinner struct {
	// Velocity in radians per second.
	Velocity float64
	targets  []Target
	paused   bool
}

// NewSpinner returns a paused spinner turning at degPerSec degrees per second.
func NewSpinner(degPerSec float64) *Spinner {
	return &Spinner{Velocity: mgl64.DegToRad(degPerSec), paused: true}
}

// Add registers obj to be rotated about axis (local frame).
func (s *Spinner) Add(obj *graph.Object, axis mgl64.Vec3) {
	s.targets = append(s.targets, Target{Object: obj, Axis: axis})
}

func (s *Spinner) Targets() []Target { return s.targets }

func (s *Spinner) Paused() bool { return s.paused }

// SetPaused pauses or resumes the spinner.
func (s *Spinner) SetPaused(p bool) { s.paused = p }

// Toggle flips the paused state and returns the new one.
func (s *Spinner) Toggle() bool {
	s.paused = !s.paused
	return s.paused
}

// Step rotates every target by Velocity*dt unless paused.
func (s *Spinner) Step(dt time.Duration) {
	if s.paused {
		return
	}
	angle := s.Velocity * dt.Seconds()
	for _, t := range s.targets {
		t.Object.Transform().Rotate(angle, t.Axis)
	}
}

// Clock turns wall time into a whole number of fixed-length frames.
type Clock struct {
	frame time.Duration
	last  time.Time
}

// NewClock returns a clock ticking fps frames per second, starting at now.
func NewClock(fps int, now time.Time) *Clock {
	if fps <= 0 {
		fps = 60
	}
	return &Clock{frame: time.Second / time.Duration(fps), last: now}
}

// Frame returns the fixed frame duration.
func (c *Clock) Frame() time.Duration { return c.frame }

// Tick returns how many whole frames elapsed since the last consumed frame.
// The remainder carries over to the next call.
func (c *Clock) Tick(now time.Time) int {
	elapsed := now.Sub(c.last)
	if elapsed < c.frame {
		return 0
	}
	n := int(elapsed / c.frame)
	c.last = c.last.Add(time.Duration(n) * c.frame)
	return n
}
