package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"tree-transforms/internal/bounds"
	"tree-transforms/internal/transform"
)

// Camera is a perspective camera placed in the world by a Transform.
// It looks along the local Fwd axis with the local Up axis as up.
type Camera struct {
	transform transform.Transform
	// Fovy is the vertical field of view in degrees.
	Fovy   float64
	ZNear  float64
	ZFar   float64
	Aspect float64
}

// NewCamera returns a camera at the origin looking along +Z.
func NewCamera() *Camera {
	return &Camera{
		transform: transform.Identity(),
		Fovy:      60,
		ZNear:     0.1,
		ZFar:      100,
		Aspect:    1,
	}
}

// Transform returns the camera's placement for in-place edits.
func (c *Camera) Transform() *transform.Transform { return &c.transform }

// Frame places the camera in front of box: the far plane at four box widths, the eye
// two units above and one box width behind the center, turned around to face it.
func (c *Camera) Frame(box bounds.Box) {
	if box.IsEmpty() {
		return
	}
	size := box.Size()
	c.ZFar = size[0] * 4
	c.transform = transform.Identity()
	c.transform.SetPos(box.Center().Add(mgl64.Vec3{0, 2, size[0]}))
	c.transform.Rotate(mgl64.DegToRad(180), mgl64.Vec3{0, 1, 0})
}

// Zoom moves the camera d units along its viewing direction.
func (c *Camera) Zoom(d float64) {
	c.transform.Translate(mgl64.Vec3{0, 0, d})
}

// Target is the point one unit ahead of the camera.
func (c *Camera) Target() mgl64.Vec3 {
	return c.transform.Pos().Add(c.transform.Fwd())
}

// View returns the world-to-eye matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.transform.Pos(), c.Target(), c.transform.Up())
}

// Projection returns the perspective matrix for the current aspect ratio.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fovy), c.Aspect, c.ZNear, c.ZFar)
}

// Raylib converts the camera for rl.BeginMode3D. Raylib keeps its own clip planes,
// so ZNear and ZFar only affect Projection.
func (c *Camera) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(c.transform.Pos()),
		Target:     vec3(c.Target()),
		Up:         vec3(c.transform.Up()),
		Fovy:       float32(c.Fovy),
		Projection: rl.CameraPerspective,
	}
}

func vec3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}
