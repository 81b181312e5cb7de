package mapgen

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"

	"tree-transforms/internal/graph"
	"tree-transforms/internal/material"
	"tree-transforms/internal/primitives"
)

// HeightMapOptions controls procedural height map generation.
// Width/Depth are in tiles; TileSize is the world size of one tile on X/Z.
// HeightScale is the maximum column height in tiles.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type HeightMapOptions struct {
	Width       int
	Depth       int
	TileSize    float32
	HeightScale float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultHeightMapOptions returns a sane default configuration.
func DefaultHeightMapOptions() HeightMapOptions {
	return HeightMapOptions{
		Width:       16,
		Depth:       16,
		TileSize:    1.0,
		HeightScale: 4.0,
		Seed:        0,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

func (o *HeightMapOptions) sanitize() {
	if o.TileSize <= 0 {
		o.TileSize = 1
	}
	if o.HeightScale <= 0 {
		o.HeightScale = 1
	}
	if o.Octaves <= 0 {
		o.Octaves = 1
	}
	if o.Frequency <= 0 {
		o.Frequency = 0.05
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = 2.0
	}
	if o.Gain <= 0 {
		o.Gain = 0.5
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
}

// Heights samples the fractal noise and returns one column height per tile, row by row
// (index z*Width+x). Heights are whole tiles in [1, HeightScale].
func Heights(opts HeightMapOptions) []int {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return nil
	}
	opts.sanitize()
	out := make([]int, 0, opts.Width*opts.Depth)
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(z)*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			if !isFinite(h) {
				h = 0
			}
			n := int(h*opts.HeightScale + 0.5)
			if n < 1 {
				n = 1
			}
			out = append(out, n)
		}
	}
	return out
}

// GenerateHeightMap adds a "terrain" group under parent holding one child per tile.
// Each tile child is positioned at its column top on Y and shares a single cube mesh
// (edge TileSize) from reg, so the whole field costs one mesh no matter its size.
// The group is centered on the parent's origin on XZ, with the ground at Y=0.
func GenerateHeightMap(parent *graph.Object, reg *primitives.Registry, opts HeightMapOptions) (*graph.Object, error) {
	opts.sanitize()
	heights := Heights(opts)
	cube, err := reg.Mesh("cube", float64(opts.TileSize)*0.5)
	if err != nil {
		return nil, err
	}
	group := parent.EmplaceChild("terrain")

	// First tile center is at (-extentX + halfTile, -extentZ + halfTile).
	halfTile := opts.TileSize * 0.5
	startX := -float32(opts.Width)*opts.TileSize*0.5 + halfTile
	startZ := -float32(opts.Depth)*opts.TileSize*0.5 + halfTile
	shared := material.Default()
	shared.Color = material.Gray

	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			h := heights[z*opts.Width+x]
			tile := group.EmplaceChild(fmt.Sprintf("tile_%d_%d", x, z))
			tile.SetMesh(cube)
			tile.SetMaterial(shared)
			tile.Transform().Translate(mgl64.Vec3{
				float64(startX + float32(x)*opts.TileSize),
				float64(float32(h)*opts.TileSize - halfTile),
				float64(startZ + float32(z)*opts.TileSize),
			})
		}
	}
	return group, nil
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32 = 0
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] on a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	sx := smoothStep(x - float32(x0))
	sy := smoothStep(y - float32(y0))

	ix0 := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	ix1 := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
