package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a local affine pose stored as a column-major 4x4 matrix.
// Columns 0, 1 and 2 hold the left, up and forward basis vectors; column 3 holds the position.
// The zero value is the all-zero matrix, not a pose: use Identity or FromMat.
type Transform struct {
	mat mgl64.Mat4
}

// Identity returns the identity transform (origin, axis-aligned basis).
func Identity() Transform {
	return Transform{mat: mgl64.Ident4()}
}

// FromMat wraps m.
func FromMat(m mgl64.Mat4) Transform {
	return Transform{mat: m}
}

// Mat returns the matrix, ready to be fed to a graphics pipeline as the model matrix.
func (t Transform) Mat() mgl64.Mat4 { return t.mat }

// Data returns the 16 matrix values in column-major order.
func (t Transform) Data() []float64 {
	out := make([]float64, len(t.mat))
	copy(out, t.mat[:])
	return out
}

func (t Transform) Left() mgl64.Vec3 { return t.mat.Col(0).Vec3() }
func (t Transform) Up() mgl64.Vec3   { return t.mat.Col(1).Vec3() }
func (t Transform) Fwd() mgl64.Vec3  { return t.mat.Col(2).Vec3() }
func (t Transform) Pos() mgl64.Vec3  { return t.mat.Col(3).Vec3() }

// SetPos overwrites the position, leaving the basis untouched.
func (t *Transform) SetPos(p mgl64.Vec3) {
	t.mat.SetCol(3, p.Vec4(t.mat.At(3, 3)))
}

// Translate moves the transform by v expressed in its own local frame.
// Orientation is not affected.
func (t *Transform) Translate(v mgl64.Vec3) {
	t.mat = t.mat.Mul4(mgl64.Translate3D(v[0], v[1], v[2]))
}

// Rotate composes a rotation of rads radians about axis, in the current local frame
// (current = current * rotation). The axis is normalized first; a zero axis yields NaN.
func (t *Transform) Rotate(rads float64, axis mgl64.Vec3) {
	t.mat = t.mat.Mul4(mgl64.HomogRotate3D(rads, axis.Normalize()))
}

// Mul returns t followed by other in child-under-parent order: t.Mat() * other.Mat().
// With t a parent's pose and other a child's local pose, the result maps child-local
// coordinates into the parent's frame.
func (t Transform) Mul(other Transform) Transform {
	return Transform{mat: t.mat.Mul4(other.mat)}
}

// MulMat returns t.Mat() * m.
func (t Transform) MulMat(m mgl64.Mat4) Transform {
	return Transform{mat: t.mat.Mul4(m)}
}

// PreMul returns m * t.Mat().
func (t Transform) PreMul(m mgl64.Mat4) Transform {
	return Transform{mat: m.Mul4(t.mat)}
}

// Inverse returns the inverse transform. Used to turn a camera pose into a view matrix.
func (t Transform) Inverse() Transform {
	return Transform{mat: t.mat.Inv()}
}

// Apply maps point p from local to parent coordinates.
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.mat.Mul4x1(p.Vec4(1)).Vec3()
}

// ApproxEqual reports whether both matrices match within eps on every element.
// The tolerance is absolute, so rounding noise around zero entries compares equal.
func (t Transform) ApproxEqual(other Transform, eps float64) bool {
	for i := range t.mat {
		if math.Abs(t.mat[i]-other.mat[i]) > eps {
			return false
		}
	}
	return true
}
