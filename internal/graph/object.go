// Package graph implements the scene graph: a tree of transformable, drawable objects
// whose world poses and world bounding boxes are derived from the root down.
package graph

import (
	"image"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"tree-transforms/internal/bounds"
	"tree-transforms/internal/material"
	"tree-transforms/internal/mesh"
	"tree-transforms/internal/transform"
)

var (
	ErrNoMesh     = errors.New("graph: object has no mesh")
	ErrNoMaterial = errors.New("graph: object has no material")
	ErrNoTexture  = errors.New("graph: material has no texture")
	ErrHasParent  = errors.New("graph: object already has a parent")
	ErrCycle      = errors.New("graph: object is an ancestor of the new parent")
)

// Object is a node of the scene graph. It owns its children; the parent link is a
// plain back pointer and never keeps the parent alive on its own.
// Children are heap allocated one by one, so a *Object returned by EmplaceChild
// stays valid however many siblings are added later.
type Object struct {
	// Name identifies the object in paths. It need not be unique.
	Name string

	local    transform.Transform
	mesh     *mesh.Mesh
	material *material.Material
	parent   *Object
	children []*Object
}

// New returns a root object with an identity transform and no payload.
func New(name string) *Object {
	return &Object{Name: name, local: transform.Identity()}
}

// EmplaceChild creates a child with an identity transform, appends it after the
// existing children and returns it.
func (o *Object) EmplaceChild(name string) *Object {
	c := New(name)
	c.parent = o
	o.children = append(o.children, c)
	return c
}

// Attach appends a root object (and its subtree) as the last child of o.
func (o *Object) Attach(child *Object) error {
	if !child.IsRoot() {
		return errors.Wrapf(ErrHasParent, "attach %q", child.Name)
	}
	for a := o; a != nil; a = a.parent {
		if a == child {
			return errors.Wrapf(ErrCycle, "attach %q under %q", child.Name, o.Name)
		}
	}
	child.parent = o
	o.children = append(o.children, child)
	return nil
}

// Detach removes o and its subtree from its parent; o becomes a root.
// Detaching a root does nothing.
func (o *Object) Detach() {
	p := o.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == o {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			break
		}
	}
	o.parent = nil
}

// IsRoot reports whether o has no parent.
func (o *Object) IsRoot() bool { return o.parent == nil }

// Parent returns the parent, or nil for a root.
func (o *Object) Parent() *Object { return o.parent }

// Children returns the children in insertion order.
// The slice aliases o's storage and must not be modified.
func (o *Object) Children() []*Object { return o.children }

func (o *Object) Len() int { return len(o.children) }

// Child returns the i-th child. It panics if i is out of range.
func (o *Object) Child(i int) *Object { return o.children[i] }

// Transform returns the local transform for in-place mutation.
func (o *Object) Transform() *transform.Transform { return &o.local }

// WorldTransform composes the local transforms from the root down to o:
// parent.WorldTransform() * local. It is recomputed on every call, O(depth).
func (o *Object) WorldTransform() transform.Transform {
	if o.IsRoot() {
		return o.local
	}
	return o.parent.WorldTransform().Mul(o.local)
}

// SetMesh sets the shared geometry drawn by o. nil removes it.
func (o *Object) SetMesh(m *mesh.Mesh) { o.mesh = m }

func (o *Object) HasMesh() bool { return o.mesh != nil }

// Mesh returns the geometry, or ErrNoMesh.
func (o *Object) Mesh() (*mesh.Mesh, error) {
	if o.mesh == nil {
		return nil, errors.Wrapf(ErrNoMesh, "%s", o.Path())
	}
	return o.mesh, nil
}

// SetDefaultMaterial replaces the material with a white, untextured one and returns it.
func (o *Object) SetDefaultMaterial() *material.Material {
	o.material = material.Default()
	return o.material
}

// SetMaterial sets the material; materials may be shared between objects.
func (o *Object) SetMaterial(m *material.Material) { o.material = m }

func (o *Object) HasMaterial() bool { return o.material != nil }

// Material returns the material, or ErrNoMaterial.
func (o *Object) Material() (*material.Material, error) {
	if o.material == nil {
		return nil, errors.Wrapf(ErrNoMaterial, "%s", o.Path())
	}
	return o.material, nil
}

// SetColor sets the material color, creating a default material first if needed.
func (o *Object) SetColor(c color.RGBA) {
	if o.material == nil {
		o.SetDefaultMaterial()
	}
	o.material.Color = c
}

// SetTextureImage gives the material a new texture over img, creating a default
// material first if needed.
func (o *Object) SetTextureImage(img image.Image) {
	if o.material == nil {
		o.SetDefaultMaterial()
	}
	o.material.SetTextureImage(img)
}

func (o *Object) HasTexture() bool {
	return o.material != nil && o.material.HasTexture()
}

// Texture returns the material texture, or ErrNoMaterial / ErrNoTexture.
func (o *Object) Texture() (*material.Texture, error) {
	m, err := o.Material()
	if err != nil {
		return nil, err
	}
	if !m.HasTexture() {
		return nil, errors.Wrapf(ErrNoTexture, "%s", o.Path())
	}
	return m.Texture, nil
}

// LocalBoundingBox is the box of o's own mesh in o's frame, or the empty box.
func (o *Object) LocalBoundingBox() bounds.Box {
	if o.mesh == nil {
		return bounds.Empty()
	}
	return o.mesh.BoundingBox()
}

// BoundingBox is o's own geometry box in the parent's frame (local transform applied).
// Descendants are not included; see WorldBoundingBox.
func (o *Object) BoundingBox() bounds.Box {
	return o.LocalBoundingBox().Transform(o.local.Mat())
}

// WorldBoundingBox is the union, over o and all its descendants, of each object's
// local box mapped by that object's world transform. It is empty when no object of
// the subtree has a mesh.
func (o *Object) WorldBoundingBox() bounds.Box {
	var parent mgl64.Mat4
	if o.IsRoot() {
		parent = mgl64.Ident4()
	} else {
		parent = o.parent.WorldTransform().Mat()
	}
	return o.worldBox(parent)
}

func (o *Object) worldBox(parentWorld mgl64.Mat4) bounds.Box {
	world := parentWorld.Mul4(o.local.Mat())
	box := o.LocalBoundingBox().Transform(world)
	for _, c := range o.children {
		box = box.Union(c.worldBox(world))
	}
	return box
}

// Walk calls fn for o and every descendant, parents before children and children
// in insertion order. depth is 0 for o. If fn returns false the object's subtree is skipped.
// The graph must not be changed until Walk returns.
func (o *Object) Walk(fn func(obj *Object, depth int) bool) {
	o.walk(fn, 0)
}

func (o *Object) walk(fn func(*Object, int) bool, depth int) {
	if !fn(o, depth) {
		return
	}
	for _, c := range o.children {
		c.walk(fn, depth+1)
	}
}

// Path returns the slash separated names from the root to o.
func (o *Object) Path() string {
	if o.IsRoot() {
		return o.Name
	}
	return o.parent.Path() + "/" + o.Name
}

// Find resolves a slash separated path of child names relative to o.
// The first child with a matching name is taken at each level. An empty path returns o.
func (o *Object) Find(path string) (*Object, bool) {
	cur := o
	for _, name := range strings.Split(path, "/") {
		if name == "" {
			continue
		}
		var next *Object
		for _, c := range cur.children {
			if c.Name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
