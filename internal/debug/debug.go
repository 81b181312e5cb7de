package debug

import (
	"fmt"
	"runtime"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"tree-transforms/internal/bounds"
	"tree-transforms/internal/graph"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
	// minAxisLength keeps basis axes visible on nodes without a mesh.
	minAxisLength = 0.25
)

var (
	boxColor = rl.NewColor(255, 220, 0, 255)
	axisX    = rl.NewColor(220, 60, 60, 255)
	axisY    = rl.NewColor(60, 220, 60, 255)
	axisZ    = rl.NewColor(60, 60, 220, 255)
)

// Debug holds runtime debugging features: FPS and memory text, and per-node world
// boxes with basis axes. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowBoxes    bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowBoxes sets whether DrawBoxes draws anything.
func (d *Debug) SetShowBoxes(show bool) {
	d.ShowBoxes = show
}

// Draw renders the enabled text overlays. Call in 2D, after the scene.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, y)
	}
}

func drawRight(text string, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	x := int32(rl.GetScreenWidth()) - w - fpsPadding
	rl.DrawText(text, x, y, fpsFontSize, rl.Green)
}

// DrawBoxes draws the world bounding box of every node under root (children included)
// and the node's world basis axes at its origin. Call inside 3D mode.
func (d *Debug) DrawBoxes(root *graph.Object) {
	if !d.ShowBoxes {
		return
	}
	for _, g := range Gizmos(root) {
		if !g.Box.IsEmpty() {
			rl.DrawBoundingBox(rl.BoundingBox{Min: vec3(g.Box.Min), Max: vec3(g.Box.Max)}, boxColor)
		}
		origin := vec3(g.Origin)
		rl.DrawLine3D(origin, vec3(g.Axes[0]), axisX)
		rl.DrawLine3D(origin, vec3(g.Axes[1]), axisY)
		rl.DrawLine3D(origin, vec3(g.Axes[2]), axisZ)
	}
}

// Gizmo is what DrawBoxes draws for one node: its world box, and the end points of its
// left, up and forward axes starting at Origin.
type Gizmo struct {
	Path   string
	Box    bounds.Box
	Origin mgl64.Vec3
	Axes   [3]mgl64.Vec3
}

// Gizmos computes the debug geometry for every node under root in pre-order.
// Axis length is half the node's largest box side, at least minAxisLength.
func Gizmos(root *graph.Object) []Gizmo {
	var out []Gizmo
	root.Walk(func(obj *graph.Object, _ int) bool {
		world := obj.WorldTransform()
		box := obj.WorldBoundingBox()
		length := float32(minAxisLength)
		if !box.IsEmpty() {
			s := box.Size()
			length = math32.Max(length, float32(max(s[0], s[1], s[2]))*0.5)
		}
		l := float64(length)
		origin := world.Pos()
		out = append(out, Gizmo{
			Path:   obj.Path(),
			Box:    box,
			Origin: origin,
			Axes: [3]mgl64.Vec3{
				origin.Add(world.Left().Normalize().Mul(l)),
				origin.Add(world.Up().Normalize().Mul(l)),
				origin.Add(world.Fwd().Normalize().Mul(l)),
			},
		})
		return true
	})
	return out
}

func vec3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}
