package primitives

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"tree-transforms/internal/graph"
	"tree-transforms/internal/material"
)

// PrimitiveDef is the YAML definition of a prefab node, as listed in assets/prefabs.yaml:
//
//	prefabs.yaml:
//	  - name: red-triangle
//	    type: triangle
//	    size: 0.5
//	    color: red
//	    texture: chess
//
// Color is a CSS/SVG color name. Texture is optional: "chess" selects the generated
// checkerboard, anything else is an image path.
type PrimitiveDef struct {
	Name    string  `yaml:"name"`
	Type    string  `yaml:"type"`
	Size    float64 `yaml:"size,omitempty"`
	Color   string  `yaml:"color,omitempty"`
	Texture string  `yaml:"texture,omitempty"`
}

// ErrUnknownType is returned for a definition whose type has no mesh builder.
var ErrUnknownType = errors.New("primitives: unknown primitive type")

// ParseDefs decodes a YAML list of primitive definitions. Missing sizes get the default size.
func ParseDefs(data []byte) ([]PrimitiveDef, error) {
	var defs []PrimitiveDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.Wrap(err, "parse primitive defs")
	}
	for i := range defs {
		d := &defs[i]
		if d.Size == 0 {
			d.Size = DefaultSize
		}
		if _, ok := builders[d.Type]; !ok {
			return nil, errors.Wrapf(ErrUnknownType, "def %d (%s): %q", i, d.Name, d.Type)
		}
		if d.Size < 0 {
			return nil, errors.Wrapf(ErrBadSize, "def %d (%s): %v", i, d.Name, d.Size)
		}
		if d.Color != "" {
			if _, ok := material.Named(d.Color); !ok {
				return nil, errors.Errorf("def %d (%s): unknown color %q", i, d.Name, d.Color)
			}
		}
	}
	return defs, nil
}

// LoadDefs reads and parses the YAML file at path.
func LoadDefs(path string) ([]PrimitiveDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read primitive defs")
	}
	defs, err := ParseDefs(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return defs, nil
}

// Apply gives obj the definition's mesh (shared through reg) and a fresh material
// with the definition's color and texture.
func (d PrimitiveDef) Apply(obj *graph.Object, reg *Registry) error {
	m, err := reg.Mesh(d.Type, d.Size)
	if err != nil {
		return err
	}
	mat := material.Default()
	if c, ok := material.Named(d.Color); ok {
		mat.Color = c
	}
	if d.Texture != "" {
		if mat.Texture, err = reg.Texture(d.Texture); err != nil {
			return err
		}
	}
	obj.SetMesh(m)
	obj.SetMaterial(mat)
	return nil
}

// Lookup returns the definition with the given name.
func Lookup(defs []PrimitiveDef, name string) (PrimitiveDef, bool) {
	for _, d := range defs {
		if d.Name == name {
			return d, true
		}
	}
	return PrimitiveDef{}, false
}
