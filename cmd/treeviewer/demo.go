package main

import (
	"github.com/go-gl/mathgl/mgl64"

	"tree-transforms/internal/graph"
	"tree-transforms/internal/primitives"
)

// demoChain names the three nested nodes of the demo scene, parent first.
var demoChain = []string{"triangle", "textured_triangle", "textured_quad"}

// builtinDefs are used for any demo node the prefab file does not define.
var builtinDefs = []primitives.PrimitiveDef{
	{Name: "triangle", Type: "triangle", Size: primitives.DefaultSize, Color: "red"},
	{Name: "textured_triangle", Type: "triangle", Size: primitives.DefaultSize, Color: "lime", Texture: primitives.ChessTexture},
	{Name: "textured_quad", Type: "quad", Size: primitives.DefaultSize, Color: "blue", Texture: primitives.ChessTexture},
}

// childOffset is where each demo node sits in its parent's frame.
var childOffset = mgl64.Vec3{2, 0, 0}

// buildDemo adds the demo chain under root: a red triangle at the origin, a textured
// triangle two units along its x axis, and a textured quad two units further. Nodes with
// the same type share one mesh and the textured ones share the checkerboard.
// It returns the chain nodes, parent first.
func buildDemo(root *graph.Object, reg *primitives.Registry, defs []primitives.PrimitiveDef) ([]*graph.Object, error) {
	nodes := make([]*graph.Object, 0, len(demoChain))
	parent := root
	for i, name := range demoChain {
		def, ok := primitives.Lookup(defs, name)
		if !ok {
			def, _ = primitives.Lookup(builtinDefs, name)
		}
		obj := parent.EmplaceChild(name)
		if i > 0 {
			obj.Transform().SetPos(childOffset)
		}
		if err := def.Apply(obj, reg); err != nil {
			return nil, err
		}
		nodes = append(nodes, obj)
		parent = obj
	}
	return nodes, nil
}
