package primitives

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"tree-transforms/internal/mesh"
)

// DefaultSize is the half extent used when a definition has no size: 0.5 gives unit-sized shapes.
const DefaultSize = 0.5

// ErrBadSize is returned for non-positive sizes.
var ErrBadSize = errors.New("primitives: size must be positive")

type builder func(s float64) ([]mgl64.Vec3, []mgl64.Vec2, []uint16)

// builders maps a primitive type to its geometry. All shapes are centered on the origin
// and s is the half extent.
var builders = map[string]builder{
	"triangle": triangle,
	"quad":     quad,
	"cube":     cube,
}

// Types returns the primitive type names understood by the registry.
func Types() []string {
	return []string{"triangle", "quad", "cube"}
}

// triangle lies in the XY plane facing +Z.
func triangle(s float64) ([]mgl64.Vec3, []mgl64.Vec2, []uint16) {
	v := []mgl64.Vec3{{-s, -s, 0}, {s, -s, 0}, {0, s, 0}}
	uv := []mgl64.Vec2{{0, 0}, {1, 0}, {0.5, 1}}
	return v, uv, []uint16{0, 1, 2}
}

// quad lies in the XY plane facing +Z.
func quad(s float64) ([]mgl64.Vec3, []mgl64.Vec2, []uint16) {
	v := []mgl64.Vec3{{-s, -s, 0}, {s, -s, 0}, {s, s, 0}, {-s, s, 0}}
	uv := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	return v, uv, []uint16{0, 1, 2, 0, 2, 3}
}

// cube has 4 vertices per face so each face gets its own texture coordinates.
func cube(s float64) ([]mgl64.Vec3, []mgl64.Vec2, []uint16) {
	faces := [6][4]mgl64.Vec3{
		{{s, -s, -s}, {s, s, -s}, {s, s, s}, {s, -s, s}},     // +x
		{{-s, -s, s}, {-s, s, s}, {-s, s, -s}, {-s, -s, -s}}, // -x
		{{-s, s, -s}, {-s, s, s}, {s, s, s}, {s, s, -s}},     // +y
		{{-s, -s, s}, {-s, -s, -s}, {s, -s, -s}, {s, -s, s}}, // -y
		{{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}},     // +z
		{{s, -s, -s}, {-s, -s, -s}, {-s, s, -s}, {s, s, -s}}, // -z
	}
	var v []mgl64.Vec3
	var uv []mgl64.Vec2
	var idx []uint16
	for i, f := range faces {
		v = append(v, f[:]...)
		uv = append(uv, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{1, 1}, mgl64.Vec2{0, 1})
		b := uint16(4 * i)
		idx = append(idx, b, b+1, b+2, b, b+2, b+3)
	}
	return v, uv, idx
}

// NewMesh builds a new mesh of the given primitive type and half extent.
func NewMesh(typ string, size float64) (*mesh.Mesh, error) {
	build, ok := builders[typ]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q", typ)
	}
	if size <= 0 {
		return nil, errors.Wrapf(ErrBadSize, "%s: %v", typ, size)
	}
	v, uv, idx := build(size)
	return mesh.New(typ, v, uv, idx)
}

// ChessImage returns a w by h checkerboard with squares cells per side, white in the top-left cell.
func ChessImage(w, h, squares int) (image.Image, error) {
	if w <= 0 || h <= 0 || squares <= 0 {
		return nil, errors.Wrapf(ErrBadSize, "chess image %dx%d, %d squares", w, h, squares)
	}
	// One pixel per cell, then scale up without filtering.
	cells := image.NewRGBA(image.Rect(0, 0, squares, squares))
	for y := 0; y < squares; y++ {
		for x := 0; x < squares; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if (x+y)%2 == 0 {
				c = color.RGBA{255, 255, 255, 255}
			}
			cells.SetRGBA(x, y, c)
		}
	}
	return transform.Resize(cells, w, h, transform.NearestNeighbor), nil
}
