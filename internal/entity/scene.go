package entity

import (
	"fmt"
	"strings"
)

// ObjectKind is the closed set of scene object types the pipeline knows how to
// handle. Anything else in an authored file is a load error, not a silent skip.
type ObjectKind int

const (
	ObjectMesh ObjectKind = iota
	ObjectArmature
	ObjectEmpty
)

func (k ObjectKind) String() string {
	return [...]string{"Mesh", "Armature", "Empty"}[k]
}

// MarshalYAML writes the lower-case kind tag used in .scene files.
func (k ObjectKind) MarshalYAML() (interface{}, error) {
	return strings.ToLower(k.String()), nil
}

// UnmarshalYAML parses the lower-case kind tag used in .scene files.
func (k *ObjectKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mesh":
		*k = ObjectMesh
	case "armature":
		*k = ObjectArmature
	case "empty":
		*k = ObjectEmpty
	default:
		return fmt.Errorf("unknown object kind: %q", s)
	}

	return nil
}

type Vec3 [3]float64

// Scene is the in-memory object graph loaded from one source file. It is the
// aggregate the validator and exporter walk; only one scene is resident at a
// time (see scenefs accessor).
type Scene struct {
	Name      string       `yaml:"name"`
	Units     UnitSettings `yaml:"units"`
	Objects   []*Object    `yaml:"objects"`
	Materials []*Material  `yaml:"materials"`
	Actions   []string     `yaml:"actions"`
}

type UnitSettings struct {
	System      string  `yaml:"system"`
	ScaleLength float64 `yaml:"scale_length"`
}

// Object is one node of the scene graph. Exactly one of Mesh/Armature is set
// depending on Kind; an Empty carries only its transform.
type Object struct {
	Name     string     `yaml:"name"`
	Kind     ObjectKind `yaml:"kind"`
	Location Vec3       `yaml:"location"`
	Rotation Vec3       `yaml:"rotation"`
	Scale    Vec3       `yaml:"scale"`
	Mesh     *Mesh      `yaml:"mesh,omitempty"`
	Armature *Armature  `yaml:"armature,omitempty"`
}

type Mesh struct {
	VertexCount int       `yaml:"vertices"`
	Edges       [][2]int  `yaml:"edges"`
	Polygons    []Polygon `yaml:"polygons"`
	UVLayers    []string  `yaml:"uv_layers"`
	Modifiers   []string  `yaml:"modifiers"`
	Textures    []string  `yaml:"textures"`
}

type Polygon struct {
	Vertices []int `yaml:"vertices"`
}

type Armature struct {
	Bones []Bone `yaml:"bones"`
}

type Bone struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
	Deform bool   `yaml:"deform"`
}

type Material struct {
	Name     string `yaml:"name"`
	UseNodes bool   `yaml:"use_nodes"`
}

// RootBones returns the bones without a parent. Engines generally expect
// exactly one.
func (a *Armature) RootBones() []Bone {
	var roots []Bone
	for _, b := range a.Bones {
		if b.Parent == "" {
			roots = append(roots, b)
		}
	}

	return roots
}
