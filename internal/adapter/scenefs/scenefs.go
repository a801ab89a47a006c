// Package scenefs is the scene accessor: it loads authored .scene files into
// the in-memory scene graph and writes the normalized scene JSON the engine
// import step consumes.
//
// The accessor models the authoring tool's single globally resident scene:
// only one scene is loaded at a time, and loading a new file replaces the
// previous one. Callers receive an explicit *entity.Scene handle, but its
// lifetime ends at the next Load.
package scenefs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PlaxKING/tower-game/internal/common"
	"github.com/PlaxKING/tower-game/internal/entity"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

type Accessor struct {
	fs  afero.Fs
	log *slog.Logger

	current     *entity.Scene
	currentPath string
}

func NewAccessor(log *slog.Logger) *Accessor {
	return NewAccessorWithFS(afero.NewOsFs(), log)
}

func NewAccessorWithFS(fs afero.Fs, log *slog.Logger) *Accessor {
	return &Accessor{
		fs:  fs,
		log: log.With(slog.String("item", "SceneAccessor")),
	}
}

// Load reads a .scene file and makes it the current scene, discarding the
// previously loaded one. Any parse problem surfaces as a *common.LoadError.
func (a *Accessor) Load(path string) (*entity.Scene, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, &common.LoadError{Path: path, Err: err}
	}

	var scene entity.Scene
	if err := yaml.UnmarshalStrict(data, &scene); err != nil {
		return nil, &common.LoadError{Path: path, Err: err}
	}

	if len(scene.Objects) == 0 && len(scene.Materials) == 0 {
		return nil, &common.LoadError{Path: path, Err: fmt.Errorf("scene file is empty")}
	}

	normalize(&scene)

	a.current = &scene
	a.currentPath = path
	a.log.Debug("Scene loaded", slog.String("path", path), slog.Int("objects", len(scene.Objects)))

	return &scene, nil
}

// Current returns the resident scene, or common.ErrNoSceneLoaded.
func (a *Accessor) Current() (*entity.Scene, string, error) {
	if a.current == nil {
		return nil, "", common.ErrNoSceneLoaded
	}

	return a.current, a.currentPath, nil
}

// normalize fills in authoring defaults: an omitted scale means unit scale,
// not zero.
func normalize(scene *entity.Scene) {
	for _, obj := range scene.Objects {
		if obj.Scale == (entity.Vec3{}) {
			obj.Scale = entity.Vec3{1, 1, 1}
		}
	}
	if scene.Units.System == "" {
		scene.Units.System = "metric"
	}
	if scene.Units.ScaleLength == 0 {
		scene.Units.ScaleLength = 1.0
	}
}

// Write persists a scene as an authored .scene file. Used by workspace setup;
// the batch pipeline itself never writes sources.
func (a *Accessor) Write(scene *entity.Scene, path string) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return fmt.Errorf("cannot marshal scene: %w", err)
	}

	if err := afero.WriteFile(a.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write scene file: %w", err)
	}

	return nil
}

// ReferenceScene builds the authoring workspace scene: metric units, a wire
// ground plane and a 1.8 m player height marker. Reference objects carry the
// REF_ prefix so validators and exports ignore them.
func ReferenceScene() *entity.Scene {
	const playerHeight = 1.8

	return &entity.Scene{
		Name:  "workspace",
		Units: entity.UnitSettings{System: "metric", ScaleLength: 1.0},
		Objects: []*entity.Object{
			{
				Name:  "REF_Ground",
				Kind:  entity.ObjectMesh,
				Scale: entity.Vec3{1, 1, 1},
				Mesh: &entity.Mesh{
					VertexCount: 4,
					Edges:       [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
					Polygons:    []entity.Polygon{{Vertices: []int{0, 1, 2, 3}}},
					UVLayers:    []string{"UVMap"},
				},
			},
			{
				Name:     "REF_PlayerHeight",
				Kind:     entity.ObjectMesh,
				Location: entity.Vec3{2.0, 0, playerHeight / 2},
				Scale:    entity.Vec3{1, 1, 1},
				Mesh: &entity.Mesh{
					VertexCount: 8,
					Edges: [][2]int{
						{0, 1}, {1, 2}, {2, 3}, {3, 0},
						{4, 5}, {5, 6}, {6, 7}, {7, 4},
						{0, 4}, {1, 5}, {2, 6}, {3, 7},
					},
					Polygons: []entity.Polygon{
						{Vertices: []int{0, 1, 2, 3}},
						{Vertices: []int{4, 5, 6, 7}},
						{Vertices: []int{0, 1, 5, 4}},
						{Vertices: []int{1, 2, 6, 5}},
						{Vertices: []int{2, 3, 7, 6}},
						{Vertices: []int{3, 0, 4, 7}},
					},
					UVLayers: []string{"UVMap"},
				},
			},
		},
	}
}

// IsReference reports whether the object is a workspace helper rather than an
// exportable asset.
func IsReference(obj *entity.Object) bool {
	return strings.HasPrefix(obj.Name, "REF_")
}
