// Package render draws the object graph with raylib.
package render

import (
	"image"
	"image/color"
	"runtime"

	"github.com/anthonynsimon/bild/transform"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"tree-transforms/internal/material"
	"tree-transforms/internal/mesh"
)

// gpuMesh is an uploaded mesh. The vertex slices stay pinned for the lifetime of the
// upload since raylib keeps pointers to them.
type gpuMesh struct {
	rl        rl.Mesh
	vertices  []float32
	texCoords []float32
	indices   []uint16
	pin       runtime.Pinner
}

// unloadMesh releases the VAO, every VBO and the VBO id array of an uploaded mesh.
var unloadMesh = rl.UnloadMesh

// Renderer implements graph.Drawer. Each *mesh.Mesh and each *material.Texture is
// uploaded once on first use, so nodes sharing a mesh or texture share the GPU copy.
// It must be used on the thread that owns the raylib window.
type Renderer struct {
	meshes   map[*mesh.Mesh]*gpuMesh
	textures map[uint32]rl.Texture2D
	mat      rl.Material
	white    rl.Texture2D
	loaded   bool
}

// New returns an empty renderer. GPU resources are created lazily after the window exists.
func New() *Renderer {
	return &Renderer{
		meshes:   make(map[*mesh.Mesh]*gpuMesh),
		textures: make(map[uint32]rl.Texture2D),
	}
}

// DrawObject draws m with world as model matrix. A nil mat draws plain white.
func (r *Renderer) DrawObject(world mgl64.Mat4, m *mesh.Mesh, mat *material.Material) error {
	r.ensureMaterial()
	gm := r.mesh(m)

	tint := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tex := r.white
	if mat != nil {
		tint = mat.Color
		if mat.HasTexture() {
			tex = r.texture(mat.Texture)
		}
	}
	if albedo := r.mat.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
		albedo.Texture = tex
	}
	rl.DrawMesh(gm.rl, r.mat, Matrix(world))
	return nil
}

// Stats reports how many meshes and textures have been uploaded.
func (r *Renderer) Stats() (meshes, textures int) {
	return len(r.meshes), len(r.textures)
}

// Close releases every upload. The renderer can be reused afterwards.
func (r *Renderer) Close() {
	for m, gm := range r.meshes {
		unloadMesh(&gm.rl)
		gm.pin.Unpin()
		delete(r.meshes, m)
	}
	for id, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, id)
	}
	if r.loaded {
		// keep UnloadMaterial away from the shared default texture
		if albedo := r.mat.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Texture = r.white
		}
		rl.UnloadMaterial(r.mat)
		r.loaded = false
	}
}

func (r *Renderer) ensureMaterial() {
	if r.loaded {
		return
	}
	r.mat = rl.LoadMaterialDefault()
	if albedo := r.mat.GetMap(rl.MapAlbedo); albedo != nil {
		r.white = albedo.Texture
	}
	r.loaded = true
}

func (r *Renderer) mesh(m *mesh.Mesh) *gpuMesh {
	if gm, ok := r.meshes[m]; ok {
		return gm
	}
	gm := &gpuMesh{}
	gm.vertices, gm.texCoords, gm.indices = Buffers(m)
	gm.rl = rl.Mesh{
		VertexCount:   int32(len(m.Vertices())),
		TriangleCount: int32(m.TriangleCount()),
	}
	gm.pin.Pin(&gm.vertices[0])
	gm.rl.Vertices = &gm.vertices[0]
	if len(gm.texCoords) > 0 {
		gm.pin.Pin(&gm.texCoords[0])
		gm.rl.Texcoords = &gm.texCoords[0]
	}
	if len(gm.indices) > 0 {
		gm.pin.Pin(&gm.indices[0])
		gm.rl.Indices = &gm.indices[0]
	}
	rl.UploadMesh(&gm.rl, false)
	r.meshes[m] = gm
	return gm
}

func (r *Renderer) texture(t *material.Texture) rl.Texture2D {
	if tex, ok := r.textures[t.ID()]; ok {
		return tex
	}
	img := rl.NewImageFromImage(FlipImage(t.Image()))
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	r.textures[t.ID()] = tex
	return tex
}

// Matrix converts a column-major mgl64 matrix to raylib's layout, which is column-major too.
func Matrix(m mgl64.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M1: float32(m[1]), M2: float32(m[2]), M3: float32(m[3]),
		M4: float32(m[4]), M5: float32(m[5]), M6: float32(m[6]), M7: float32(m[7]),
		M8: float32(m[8]), M9: float32(m[9]), M10: float32(m[10]), M11: float32(m[11]),
		M12: float32(m[12]), M13: float32(m[13]), M14: float32(m[14]), M15: float32(m[15]),
	}
}

// Buffers flattens m into the float32 arrays raylib uploads. Texture coordinates are
// nil when the mesh has none.
func Buffers(m *mesh.Mesh) (vertices, texCoords []float32, indices []uint16) {
	vs := m.Vertices()
	vertices = make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		vertices = append(vertices, float32(v[0]), float32(v[1]), float32(v[2]))
	}
	if uvs := m.TexCoords(); len(uvs) > 0 {
		texCoords = make([]float32, 0, len(uvs)*2)
		for _, uv := range uvs {
			texCoords = append(texCoords, float32(uv[0]), float32(uv[1]))
		}
	}
	indices = append([]uint16(nil), m.Indices()...)
	return vertices, texCoords, indices
}

// FlipImage mirrors img top to bottom so row 0 is the bottom row, where GL expects
// texture coordinate v=0.
func FlipImage(img image.Image) *image.RGBA {
	return transform.FlipV(img)
}
