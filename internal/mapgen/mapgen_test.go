package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tree-transforms/internal/graph"
	"tree-transforms/internal/primitives"
)

func testOptions() HeightMapOptions {
	opts := DefaultHeightMapOptions()
	opts.Width = 6
	opts.Depth = 4
	opts.Seed = 42
	return opts
}

func TestHeightsDeterministic(t *testing.T) {
	opts := testOptions()
	a := Heights(opts)
	b := Heights(opts)
	require.Len(t, a, opts.Width*opts.Depth)
	assert.Equal(t, a, b)
	for _, h := range a {
		assert.GreaterOrEqual(t, h, 1)
		assert.LessOrEqual(t, h, int(opts.HeightScale))
	}
	assert.Nil(t, Heights(HeightMapOptions{}))
}

func TestGenerateHeightMap(t *testing.T) {
	opts := testOptions()
	root := graph.New("root")
	reg := primitives.NewRegistry()
	terrain, err := GenerateHeightMap(root, reg, opts)
	require.NoError(t, err)

	assert.Same(t, root, terrain.Parent())
	require.Equal(t, opts.Width*opts.Depth, terrain.Len())
	meshes, _ := reg.Len()
	assert.Equal(t, 1, meshes, "every tile shares one mesh")

	first, err := terrain.Child(0).Mesh()
	require.NoError(t, err)
	last, err := terrain.Child(terrain.Len() - 1).Mesh()
	require.NoError(t, err)
	assert.Same(t, first, last)

	heights := Heights(opts)
	minH, maxH := heights[0], heights[0]
	for _, h := range heights {
		minH = min(minH, h)
		maxH = max(maxH, h)
	}
	box := root.WorldBoundingBox()
	assert.InDelta(t, -3, box.Min[0], 1e-6)
	assert.InDelta(t, 3, box.Max[0], 1e-6)
	assert.InDelta(t, -2, box.Min[2], 1e-6)
	assert.InDelta(t, 2, box.Max[2], 1e-6)
	// the lowest column top sits minH tiles up, its cube spans one tile below
	assert.InDelta(t, float64(minH-1), box.Min[1], 1e-6)
	assert.InDelta(t, float64(maxH), box.Max[1], 1e-6)
}
