package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tree-transforms/internal/graph"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Scene holds the root of the object graph and the camera looking at it.
// Update runs camera input; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Root        *graph.Object
	Camera      *Camera
	GridVisible bool
}

// New returns a scene over root with the camera framed on root's world bounding box.
// Grid is visible by default.
func New(root *graph.Object) *Scene {
	s := &Scene{Root: root, Camera: NewCamera(), GridVisible: true}
	s.Camera.Frame(root.WorldBoundingBox())
	return s
}

// SetGridVisible sets whether the floor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Reframe points the camera at the current world bounding box of the graph.
func (s *Scene) Reframe() {
	s.Camera.Frame(s.Root.WorldBoundingBox())
}

// Update runs once per frame. The mouse wheel moves the camera one unit per notch
// along its viewing direction; the aspect ratio follows the window.
func (s *Scene) Update() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.Camera.Zoom(float64(wheel))
	}
	if h := rl.GetScreenHeight(); h > 0 {
		s.Camera.Aspect = float64(rl.GetScreenWidth()) / float64(h)
	}
}

// Draw renders the 3D scene through d. Call after ClearBackground and before 2D overlays.
// The grid on the XZ plane (Y=0) is drawn when GridVisible is true; overlay, if not nil,
// runs last inside 3D mode (debug boxes). Returns the first drawer error.
func (s *Scene) Draw(d graph.Drawer, overlay func()) error {
	rl.BeginMode3D(s.Camera.Raylib())
	defer rl.EndMode3D()
	if s.GridVisible {
		drawFloorGrid()
	}
	if err := s.Root.Draw(d); err != nil {
		return err
	}
	if overlay != nil {
		overlay()
	}
	return nil
}

// drawFloorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawFloorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// X=red, Y=green, Z=blue
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
