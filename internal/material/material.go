package material

import (
	"image"
	"image/color"
	"sync/atomic"

	"golang.org/x/image/colornames"
)

// Palette used by scene builders; same names as the CSS/SVG colors.
var (
	White = colornames.White
	Red   = colornames.Red
	Green = colornames.Lime
	Blue  = colornames.Blue
	Gray  = colornames.Gray
)

// Named looks up a CSS/SVG color name (e.g. "tomato").
func Named(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[name]
	return c, ok
}

var lastTextureID atomic.Uint32

// Texture is an image shared by any number of materials. The renderer uploads each
// Texture once, keyed by ID; ID is non-zero and unique within the process.
type Texture struct {
	id  uint32
	img image.Image
}

// NewTexture wraps img. img must not be modified afterwards.
func NewTexture(img image.Image) *Texture {
	return &Texture{id: lastTextureID.Add(1), img: img}
}

func (t *Texture) ID() uint32         { return t.id }
func (t *Texture) Image() image.Image { return t.img }

// Material is the surface description of a drawable node: a tint color and an optional texture.
type Material struct {
	Color   color.RGBA
	Texture *Texture
}

// Default returns an untextured white material.
func Default() *Material {
	return &Material{Color: White}
}

// HasTexture reports whether a texture is set.
func (m *Material) HasTexture() bool {
	return m.Texture != nil
}

// SetTextureImage replaces the texture with a new one wrapping img.
func (m *Material) SetTextureImage(img image.Image) {
	m.Texture = NewTexture(img)
}
