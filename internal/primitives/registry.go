package primitives

import (
	"fmt"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"

	"tree-transforms/internal/material"
	"tree-transforms/internal/mesh"
)

// ChessTexture names the generated 64x64 checkerboard with 8 cells per side.
const (
	ChessTexture = "chess"
	chessSize    = 64
	chessSquares = 8
)

// Registry hands out shared meshes and textures. Each (type, size) pair is built once
// and every node asking for it gets the same *mesh.Mesh; textures are cached by name.
type Registry struct {
	meshes   map[string]*mesh.Mesh
	textures map[string]*material.Texture
}

// NewRegistry returns an empty registry. Meshes and textures are created on first use.
func NewRegistry() *Registry {
	return &Registry{
		meshes:   make(map[string]*mesh.Mesh),
		textures: make(map[string]*material.Texture),
	}
}

// Mesh returns the shared mesh for typ at half extent size.
func (r *Registry) Mesh(typ string, size float64) (*mesh.Mesh, error) {
	key := fmt.Sprintf("%s@%g", typ, size)
	if m, ok := r.meshes[key]; ok {
		return m, nil
	}
	m, err := NewMesh(typ, size)
	if err != nil {
		return nil, err
	}
	r.meshes[key] = m
	return m, nil
}

// Texture returns the shared texture called name. ChessTexture is generated;
// any other name is read as an image file.
func (r *Registry) Texture(name string) (*material.Texture, error) {
	if t, ok := r.textures[name]; ok {
		return t, nil
	}
	var t *material.Texture
	if name == ChessTexture {
		img, err := ChessImage(chessSize, chessSize, chessSquares)
		if err != nil {
			return nil, err
		}
		t = material.NewTexture(img)
	} else {
		img, err := imgio.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "load texture %s", name)
		}
		t = material.NewTexture(img)
	}
	r.textures[name] = t
	return t, nil
}

// Len returns the number of cached meshes and textures.
func (r *Registry) Len() (meshes, textures int) {
	return len(r.meshes), len(r.textures)
}
