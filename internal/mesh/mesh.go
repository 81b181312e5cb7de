// Package mesh holds triangle geometry shared between scene nodes.
package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"tree-transforms/internal/bounds"
)

var (
	// ErrNoVertices is returned when building a mesh without vertex positions.
	ErrNoVertices = errors.New("mesh: no vertices")
	// ErrBadIndex is returned when an index is out of range or the index count is not a multiple of 3.
	ErrBadIndex = errors.New("mesh: bad triangle index")
	// ErrTexCoords is returned when texture coordinates do not match the vertex count.
	ErrTexCoords = errors.New("mesh: texcoord count mismatch")
)

// Mesh is an indexed triangle list. It is read-only after New, so one *Mesh
// can be referenced by any number of nodes; it lives as long as any of them does.
type Mesh struct {
	name      string
	vertices  []mgl64.Vec3
	texCoords []mgl64.Vec2
	indices   []uint16
	box       bounds.Box
}

// New copies the given data into a new mesh and computes its local bounding box.
// texCoords may be nil. indices may be nil, in which case vertices are taken three at a time.
func New(name string, vertices []mgl64.Vec3, texCoords []mgl64.Vec2, indices []uint16) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, errors.Wrapf(ErrNoVertices, "mesh %q", name)
	}
	if texCoords != nil && len(texCoords) != len(vertices) {
		return nil, errors.Wrapf(ErrTexCoords, "mesh %q: %d texcoords for %d vertices", name, len(texCoords), len(vertices))
	}
	if indices == nil {
		if len(vertices)%3 != 0 {
			return nil, errors.Wrapf(ErrBadIndex, "mesh %q: %d unindexed vertices", name, len(vertices))
		}
		indices = make([]uint16, len(vertices))
		for i := range indices {
			indices[i] = uint16(i)
		}
	}
	if len(indices)%3 != 0 {
		return nil, errors.Wrapf(ErrBadIndex, "mesh %q: %d indices", name, len(indices))
	}
	for _, ix := range indices {
		if int(ix) >= len(vertices) {
			return nil, errors.Wrapf(ErrBadIndex, "mesh %q: index %d of %d vertices", name, ix, len(vertices))
		}
	}
	box, err := bounds.FromPoints(vertices)
	if err != nil {
		return nil, err
	}
	m := &Mesh{
		name:     name,
		vertices: append([]mgl64.Vec3(nil), vertices...),
		indices:  append([]uint16(nil), indices...),
		box:      box,
	}
	if texCoords != nil {
		m.texCoords = append([]mgl64.Vec2(nil), texCoords...)
	}
	return m, nil
}

func (m *Mesh) Name() string { return m.name }

// Vertices returns the vertex positions. The slice aliases the mesh and must not be modified.
func (m *Mesh) Vertices() []mgl64.Vec3 { return m.vertices }

// TexCoords returns per-vertex texture coordinates, or nil.
func (m *Mesh) TexCoords() []mgl64.Vec2 { return m.texCoords }

// Indices returns the triangle list indices.
func (m *Mesh) Indices() []uint16 { return m.indices }

func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// BoundingBox returns the box of all vertices in the mesh's own frame.
func (m *Mesh) BoundingBox() bounds.Box { return m.box }
