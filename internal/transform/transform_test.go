package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func vecNear(t *testing.T, want, have mgl64.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], have[:], eps, "want %v, have %v", want, have)
}

func TestIdentityIsRightNeutral(t *testing.T) {
	tests := []struct {
		name string
		make func() Transform
	}{
		{"identity", Identity},
		{"translated", func() Transform {
			tr := Identity()
			tr.Translate(mgl64.Vec3{1, -2, 3.5})
			return tr
		}},
		{"rotated and translated", func() Transform {
			tr := Identity()
			tr.Rotate(0.7, mgl64.Vec3{1, 1, 0})
			tr.Translate(mgl64.Vec3{4, 0, -1})
			tr.Rotate(-2.1, mgl64.Vec3{0, 0, 1})
			return tr
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.make()
			assert.Equal(t, tr, tr.Mul(Identity()))
			assert.Equal(t, tr, Identity().Mul(tr))
		})
	}
}

func TestTranslateIsLocal(t *testing.T) {
	tr := Identity()
	tr.Translate(mgl64.Vec3{1, 2, 3})
	vecNear(t, mgl64.Vec3{1, 2, 3}, tr.Pos())

	// After a half turn about Y, local +Z points to world -Z.
	tr.Rotate(math.Pi, mgl64.Vec3{0, 1, 0})
	tr.Translate(mgl64.Vec3{0, 0, 1})
	vecNear(t, mgl64.Vec3{1, 2, 2}, tr.Pos())
	vecNear(t, mgl64.Vec3{0, 0, -1}, tr.Fwd())
}

func TestTranslateKeepsOrientation(t *testing.T) {
	tr := Identity()
	tr.Rotate(0.3, mgl64.Vec3{0, 0, 1})
	left, up, fwd := tr.Left(), tr.Up(), tr.Fwd()
	tr.Translate(mgl64.Vec3{5, 5, 5})
	assert.Equal(t, left, tr.Left())
	assert.Equal(t, up, tr.Up())
	assert.Equal(t, fwd, tr.Fwd())
}

func TestRotateComposesInLocalFrame(t *testing.T) {
	axis := mgl64.Vec3{0, 0, 1}
	tr := Identity()
	tr.Translate(mgl64.Vec3{2, 0, 0})
	tr.Rotate(math.Pi/2, axis)

	want := mgl64.Translate3D(2, 0, 0).Mul4(mgl64.HomogRotate3D(math.Pi/2, axis))
	assert.True(t, tr.ApproxEqual(FromMat(want), eps))
	// Rotation about the local origin does not move the position.
	vecNear(t, mgl64.Vec3{2, 0, 0}, tr.Pos())
	vecNear(t, mgl64.Vec3{0, 1, 0}, tr.Left())
}

func TestRotateNormalizesAxis(t *testing.T) {
	unit := Identity()
	unit.Rotate(1.2, mgl64.Vec3{0, 1, 0})
	long := Identity()
	long.Rotate(1.2, mgl64.Vec3{0, 10, 0})
	assert.True(t, unit.ApproxEqual(long, eps))
}

func TestBasisStaysOrthonormal(t *testing.T) {
	tr := Identity()
	for i := 0; i < 500; i++ {
		tr.Rotate(0.013*float64(i), mgl64.Vec3{1, 2, 3})
		tr.Translate(mgl64.Vec3{0.1, 0, -0.2})
	}
	basis := []mgl64.Vec3{tr.Left(), tr.Up(), tr.Fwd()}
	for i, v := range basis {
		assert.InDelta(t, 1, v.Len(), 1e-6, "basis %d length", i)
		for j := i + 1; j < len(basis); j++ {
			assert.InDelta(t, 0, v.Dot(basis[j]), 1e-6, "basis %d.%d", i, j)
		}
	}
}

func TestMulOrder(t *testing.T) {
	parent := Identity()
	parent.Rotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	child := Identity()
	child.Translate(mgl64.Vec3{1, 0, 0})

	// The child sits one unit along the parent's rotated X axis, i.e. world +Y.
	world := parent.Mul(child)
	vecNear(t, mgl64.Vec3{0, 1, 0}, world.Pos())

	reversed := child.Mul(parent)
	vecNear(t, mgl64.Vec3{1, 0, 0}, reversed.Pos())

	assert.Equal(t, world, parent.MulMat(child.Mat()))
	assert.Equal(t, world, child.PreMul(parent.Mat()))
}

func TestMulDoesNotShare(t *testing.T) {
	a := Identity()
	b := Identity()
	c := a.Mul(b)
	c.Translate(mgl64.Vec3{1, 1, 1})
	assert.Equal(t, Identity(), a)
	assert.Equal(t, Identity(), b)
}

func TestSetPosAndData(t *testing.T) {
	tr := Identity()
	tr.Rotate(0.5, mgl64.Vec3{1, 0, 0})
	up := tr.Up()
	tr.SetPos(mgl64.Vec3{7, 8, 9})
	vecNear(t, mgl64.Vec3{7, 8, 9}, tr.Pos())
	assert.Equal(t, up, tr.Up())

	data := tr.Data()
	require.Len(t, data, 16)
	assert.Equal(t, []float64{7, 8, 9, 1}, data[12:])
	data[12] = 100
	assert.Equal(t, 7.0, tr.Pos()[0], "Data must return a copy")
}

func TestInverseAndApply(t *testing.T) {
	tr := Identity()
	tr.Translate(mgl64.Vec3{3, -1, 2})
	tr.Rotate(1.1, mgl64.Vec3{0, 1, 1})
	p := mgl64.Vec3{0.5, 0.25, -4}
	vecNear(t, p, tr.Inverse().Apply(tr.Apply(p)))
	assert.True(t, tr.Mul(tr.Inverse()).ApproxEqual(Identity(), 1e-9))
}

func TestZeroAxisPropagatesNaN(t *testing.T) {
	tr := Identity()
	tr.Rotate(1, mgl64.Vec3{})
	assert.True(t, math.IsNaN(tr.Left()[0]))
}

func TestApproxEqualIsAbsolute(t *testing.T) {
	half := Identity()
	half.Rotate(math.Pi, mgl64.Vec3{0, 1, 0})
	// sin(pi) leaves ~1e-16 where the exact matrix holds 0
	exact := FromMat(mgl64.Mat4{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	})
	require.NotEqual(t, exact, half)
	assert.True(t, half.ApproxEqual(exact, 1e-12))

	off := exact
	off.SetPos(mgl64.Vec3{1e-6, 0, 0})
	assert.False(t, off.ApproxEqual(exact, 1e-9))
	assert.True(t, off.ApproxEqual(exact, 1e-5))
}
