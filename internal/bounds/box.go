// Package bounds implements axis-aligned bounding boxes for the scene graph.
package bounds

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ErrNoPoints is returned when a box is requested for an empty point cloud.
var ErrNoPoints = errors.New("bounds: empty point cloud")

// Box is an axis-aligned bounding box. A box is empty when Min exceeds Max on any axis;
// Empty returns the canonical empty box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Empty returns the empty box (Min = +Inf, Max = -Inf). It is the identity for Union.
func Empty() Box {
	inf := math.Inf(1)
	return Box{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// FromPoints returns the smallest box containing every point.
// An empty slice returns Empty and ErrNoPoints.
func FromPoints(pts []mgl64.Vec3) (Box, error) {
	if len(pts) == 0 {
		return Empty(), ErrNoPoints
	}
	b := Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.expand(p)
	}
	return b, nil
}

func (b Box) expand(p mgl64.Vec3) Box {
	for i := range p {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}

// IsEmpty reports whether the box contains no point.
func (b Box) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

// Size returns the edge lengths of the box.
func (b Box) Size() mgl64.Vec3 { return b.Max.Sub(b.Min) }

// HalfExtents returns half the edge lengths.
func (b Box) HalfExtents() mgl64.Vec3 { return b.Size().Mul(0.5) }

// Corners are named after which bound each axis takes: 0 for Min, 1 for Max, in x, y, z order.

func (b Box) V000() mgl64.Vec3 { return b.Min }
func (b Box) V001() mgl64.Vec3 { return mgl64.Vec3{b.Min[0], b.Min[1], b.Max[2]} }
func (b Box) V010() mgl64.Vec3 { return mgl64.Vec3{b.Min[0], b.Max[1], b.Min[2]} }
func (b Box) V011() mgl64.Vec3 { return mgl64.Vec3{b.Min[0], b.Max[1], b.Max[2]} }
func (b Box) V100() mgl64.Vec3 { return mgl64.Vec3{b.Max[0], b.Min[1], b.Min[2]} }
func (b Box) V101() mgl64.Vec3 { return mgl64.Vec3{b.Max[0], b.Min[1], b.Max[2]} }
func (b Box) V110() mgl64.Vec3 { return mgl64.Vec3{b.Max[0], b.Max[1], b.Min[2]} }
func (b Box) V111() mgl64.Vec3 { return b.Max }

// Vertices returns the 8 corners in V000 ... V111 order.
func (b Box) Vertices() [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{b.V000(), b.V001(), b.V010(), b.V011(), b.V100(), b.V101(), b.V110(), b.V111()}
}

// Union returns the smallest box containing both b and other.
// Union with an empty box returns the other box unchanged.
func (b Box) Union(other Box) Box {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return b.expand(other.Min).expand(other.Max)
}

// Transform returns the axis-aligned box enclosing the 8 corners of b mapped by m.
// The result is not a rotated box and may grow under rotation. An empty box stays empty.
func (b Box) Transform(m mgl64.Mat4) Box {
	if b.IsEmpty() {
		return Empty()
	}
	var pts [8]mgl64.Vec3
	for i, v := range b.Vertices() {
		pts[i] = m.Mul4x1(v.Vec4(1)).Vec3()
	}
	out, _ := FromPoints(pts[:])
	return out
}

// Contains reports whether p lies inside b, borders included.
func (b Box) Contains(p mgl64.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// ContainsBox reports whether every point of other lies inside b.
// The empty box is contained in every box.
func (b Box) ContainsBox(other Box) bool {
	if other.IsEmpty() {
		return true
	}
	return b.Contains(other.Min) && b.Contains(other.Max)
}

// Overlaps reports whether the two boxes share at least one point.
func (b Box) Overlaps(other Box) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.Max[0] >= other.Min[0] && b.Min[0] <= other.Max[0] &&
		b.Max[1] >= other.Min[1] && b.Min[1] <= other.Max[1] &&
		b.Max[2] >= other.Min[2] && b.Min[2] <= other.Max[2]
}

// ApproxEqual compares both corners within eps. Two empty boxes are equal.
func (b Box) ApproxEqual(other Box, eps float64) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return b.IsEmpty() == other.IsEmpty()
	}
	return near(b.Min, other.Min, eps) && near(b.Max, other.Max, eps)
}

// near compares component-wise with an absolute tolerance.
func near(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
