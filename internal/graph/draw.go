package graph

import (
	"github.com/go-gl/mathgl/mgl64"

	"tree-transforms/internal/material"
	"tree-transforms/internal/mesh"
)

// Drawer issues the actual draw calls. Implementations keep backend state (bound
// material, texture) between calls, so call order matters.
type Drawer interface {
	// DrawObject draws m with the given world matrix. mat is nil for objects
	// without a material; drawers use a white untextured material then.
	DrawObject(world mgl64.Mat4, m *mesh.Mesh, mat *material.Material) error
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(world mgl64.Mat4, m *mesh.Mesh, mat *material.Material) error

func (f DrawerFunc) DrawObject(world mgl64.Mat4, m *mesh.Mesh, mat *material.Material) error {
	return f(world, m, mat)
}

// Draw walks o's subtree in pre-order, children in insertion order, and hands every
// object that has a mesh to d together with its accumulated world matrix.
// Objects without a mesh are only traversed. The first error from d stops the walk.
func (o *Object) Draw(d Drawer) error {
	parent := mgl64.Ident4()
	if !o.IsRoot() {
		parent = o.parent.WorldTransform().Mat()
	}
	return o.draw(d, parent)
}

func (o *Object) draw(d Drawer, parentWorld mgl64.Mat4) error {
	world := parentWorld.Mul4(o.local.Mat())
	if o.mesh != nil {
		if err := d.DrawObject(world, o.mesh, o.material); err != nil {
			return err
		}
	}
	for _, c := range o.children {
		if err := c.draw(d, world); err != nil {
			return err
		}
	}
	return nil
}
