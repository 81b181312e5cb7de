package render

import (
	"image"
	"image/color"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tree-transforms/internal/mesh"
)

func TestMatrixLayout(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.Scale3D(4, 5, 6))
	rm := Matrix(m)
	// translation lives in the last column, M12..M14
	assert.Equal(t, float32(1), rm.M12)
	assert.Equal(t, float32(2), rm.M13)
	assert.Equal(t, float32(3), rm.M14)
	assert.Equal(t, float32(4), rm.M0)
	assert.Equal(t, float32(5), rm.M5)
	assert.Equal(t, float32(6), rm.M10)
	assert.Equal(t, float32(1), rm.M15)
	assert.Zero(t, rm.M3)
}

func TestBuffers(t *testing.T) {
	m, err := mesh.New("tri",
		[]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}},
		nil)
	require.NoError(t, err)

	vs, uvs, idx := Buffers(m)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, vs)
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1}, uvs)
	assert.Equal(t, []uint16{0, 1, 2}, idx)

	idx[0] = 9
	assert.Equal(t, uint16(0), m.Indices()[0], "buffers do not alias the mesh")
}

func TestBuffersNoTexCoords(t *testing.T) {
	m, err := mesh.New("tri", []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil, nil)
	require.NoError(t, err)
	_, uvs, _ := Buffers(m)
	assert.Nil(t, uvs)
}

func TestFlipImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})

	out := FlipImage(img)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, out.RGBAAt(0, 1))
	assert.Equal(t, img.Bounds(), out.Bounds())
}

func TestCloseUnloadsWholeMesh(t *testing.T) {
	var unloaded []rl.Mesh
	orig := unloadMesh
	unloadMesh = func(m *rl.Mesh) { unloaded = append(unloaded, *m) }
	t.Cleanup(func() { unloadMesh = orig })

	m, err := mesh.New("tri", []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil, nil)
	require.NoError(t, err)
	vbos := []uint32{4, 5, 0, 6}
	r := New()
	r.meshes[m] = &gpuMesh{rl: rl.Mesh{VaoID: 3, VboID: &vbos[0]}}
	r.Close()

	require.Len(t, unloaded, 1)
	assert.Equal(t, uint32(3), unloaded[0].VaoID)
	assert.Same(t, &vbos[0], unloaded[0].VboID, "VBO ids reach raylib so every buffer is freed")
	meshes, textures := r.Stats()
	assert.Zero(t, meshes)
	assert.Zero(t, textures)
}
