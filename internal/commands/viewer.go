package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"tree-transforms/internal/animate"
	"tree-transforms/internal/bounds"
	"tree-transforms/internal/graph"
)

var (
	ErrNoSuchObject = errors.New("no such object")
	ErrBadAxis      = errors.New("axis must be x, y or z")
)

// Viewer is the state the built-in commands act on. Nil hooks disable their commands' effect.
type Viewer struct {
	Root    *graph.Object
	Spinner *animate.Spinner
	// SetGrid shows or hides the floor grid.
	SetGrid func(visible bool)
	// Reframe points the camera at the whole graph.
	Reframe func()
	// Print receives command output.
	Print func(line string)
}

func (v *Viewer) print(format string, args ...any) {
	if v.Print != nil {
		v.Print(fmt.Sprintf(format, args...))
	}
}

// RegisterViewer adds the scene commands to r:
//
//	cmd help
//	cmd pause
//	cmd grid -visible=false
//	cmd frame
//	cmd tree
//	cmd bbox -path root/triangle
//	cmd rotate -path root/triangle -deg 45 -axis z
//	cmd move -path root/triangle -x 1 -y 0 -z 0
func RegisterViewer(r *Registry, v *Viewer) {
	r.Register("help", nil, func() error {
		v.print("commands: %s", strings.Join(r.Names(), ", "))
		return nil
	})

	r.Register("pause", nil, func() error {
		if v.Spinner == nil {
			return nil
		}
		if v.Spinner.Toggle() {
			v.print("paused")
		} else {
			v.print("running")
		}
		return nil
	})

	gridFS := flag.NewFlagSet("grid", flag.ContinueOnError)
	visible := gridFS.Bool("visible", true, "show the floor grid")
	r.Register("grid", gridFS, func() error {
		if v.SetGrid != nil {
			v.SetGrid(*visible)
		}
		return nil
	})

	r.Register("frame", nil, func() error {
		if v.Reframe != nil {
			v.Reframe()
		}
		return nil
	})

	r.Register("tree", nil, func() error {
		for _, line := range Tree(v.Root) {
			v.print("%s", line)
		}
		return nil
	})

	bboxFS := flag.NewFlagSet("bbox", flag.ContinueOnError)
	bboxPath := bboxFS.String("path", "", "object path below the root")
	r.Register("bbox", bboxFS, func() error {
		box, err := WorldBox(v.Root, *bboxPath)
		if err != nil {
			return err
		}
		if box.IsEmpty() {
			v.print("%s: empty", *bboxPath)
			return nil
		}
		v.print("%s: min %v max %v", *bboxPath, box.Min, box.Max)
		return nil
	})

	rotFS := flag.NewFlagSet("rotate", flag.ContinueOnError)
	rotPath := rotFS.String("path", "", "object path below the root")
	rotDeg := rotFS.Float64("deg", 0, "angle in degrees")
	rotAxis := rotFS.String("axis", "z", "local axis: x, y or z")
	r.Register("rotate", rotFS, func() error {
		return Rotate(v.Root, *rotPath, *rotDeg, *rotAxis)
	})

	moveFS := flag.NewFlagSet("move", flag.ContinueOnError)
	movePath := moveFS.String("path", "", "object path below the root")
	dx := moveFS.Float64("x", 0, "local x offset")
	dy := moveFS.Float64("y", 0, "local y offset")
	dz := moveFS.Float64("z", 0, "local z offset")
	r.Register("move", moveFS, func() error {
		return Move(v.Root, *movePath, mgl64.Vec3{*dx, *dy, *dz})
	})
}

func find(root *graph.Object, path string) (*graph.Object, error) {
	obj, ok := root.Find(path)
	if !ok {
		return nil, errors.Wrap(ErrNoSuchObject, path)
	}
	return obj, nil
}

// Axis maps "x", "y" or "z" to the unit vector.
func Axis(name string) (mgl64.Vec3, error) {
	switch strings.ToLower(name) {
	case "x":
		return mgl64.Vec3{1, 0, 0}, nil
	case "y":
		return mgl64.Vec3{0, 1, 0}, nil
	case "z":
		return mgl64.Vec3{0, 0, 1}, nil
	}
	return mgl64.Vec3{}, errors.Wrap(ErrBadAxis, name)
}

// Rotate turns the object at path by deg degrees about one of its local axes.
func Rotate(root *graph.Object, path string, deg float64, axis string) error {
	obj, err := find(root, path)
	if err != nil {
		return err
	}
	a, err := Axis(axis)
	if err != nil {
		return err
	}
	obj.Transform().Rotate(mgl64.DegToRad(deg), a)
	return nil
}

// Move translates the object at path by d in its local frame.
func Move(root *graph.Object, path string, d mgl64.Vec3) error {
	obj, err := find(root, path)
	if err != nil {
		return err
	}
	obj.Transform().Translate(d)
	return nil
}

// WorldBox returns the world bounding box of the object at path and its descendants.
func WorldBox(root *graph.Object, path string) (bounds.Box, error) {
	obj, err := find(root, path)
	if err != nil {
		return bounds.Empty(), err
	}
	return obj.WorldBoundingBox(), nil
}

// Tree lists every object under root, indented two spaces per level.
func Tree(root *graph.Object) []string {
	var out []string
	root.Walk(func(obj *graph.Object, depth int) bool {
		line := strings.Repeat("  ", depth) + obj.Name
		if obj.HasMesh() {
			m, _ := obj.Mesh()
			line += " [" + m.Name() + "]"
		}
		out = append(out, line)
		return true
	})
	return out
}
