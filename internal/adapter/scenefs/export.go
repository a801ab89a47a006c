package scenefs

import (
	"encoding/json"
	"log/slog"

	"github.com/PlaxKING/tower-game/internal/entity"
	"github.com/PlaxKING/tower-game/internal/util"
	"github.com/spf13/afero"
)

// interchangeDoc is the normalized scene JSON consumed by the engine import
// step. Node IDs are stable sha1 hashes of source path + object name so
// re-exports of an unchanged source produce identical IDs.
type interchangeDoc struct {
	Name      string              `json:"name"`
	Source    string              `json:"source"`
	Config    entity.ExportConfig `json:"config"`
	Nodes     []interchangeNode   `json:"nodes"`
	Materials []interchangeMat    `json:"materials,omitempty"`
	Actions   []string            `json:"baked_actions,omitempty"`
}

type interchangeNode struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Kind        string     `json:"kind"`
	Translation [3]float64 `json:"translation"`
	Rotation    [3]float64 `json:"rotation"`
	Scale       [3]float64 `json:"scale"`

	Vertices   int      `json:"vertices,omitempty"`
	Faces      int      `json:"faces,omitempty"`
	UVChannels int      `json:"uv_channels,omitempty"`
	Modifiers  []string `json:"baked_modifiers,omitempty"`
	Textures   []string `json:"embedded_textures,omitempty"`

	Bones []interchangeBone `json:"bones,omitempty"`
}

type interchangeBone struct {
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
}

type interchangeMat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Export writes the scene as a normalized scene JSON document at dstPath with
// the transform, axis and animation-baking configuration applied. It does not
// create parent directories and does not guarantee an absent partial file on
// failure; the export invoker owns both concerns.
func (a *Accessor) Export(scene *entity.Scene, sourcePath, dstPath string, cfg entity.ExportConfig) error {
	doc := interchangeDoc{
		Name:      scene.Name,
		Source:    sourcePath,
		Config:    cfg,
		Nodes:     []interchangeNode{},
		Materials: bakeMaterials(scene),
	}

	if cfg.BakeAnim && cfg.BakeAnimAllActions {
		doc.Actions = scene.Actions
	}

	for _, obj := range scene.Objects {
		if !cfg.Exports(obj.Kind) || IsReference(obj) {
			continue
		}
		doc.Nodes = append(doc.Nodes, bakeNode(obj, sourcePath, cfg))
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return err
	}

	if err := afero.WriteFile(a.fs, dstPath, data, 0o644); err != nil {
		return err
	}

	a.log.Debug("Interchange written",
		slog.String("path", dstPath), slog.Int("nodes", len(doc.Nodes)))

	return nil
}

// bakeNode applies the fixed export transform: global scale on translation and
// object scale folded into the geometry, leaving the node at unit scale.
func bakeNode(obj *entity.Object, sourcePath string, cfg entity.ExportConfig) interchangeNode {
	node := interchangeNode{
		ID:       util.StableID(sourcePath + ":" + obj.Name),
		Name:     obj.Name,
		Kind:     obj.Kind.String(),
		Rotation: obj.Rotation,
		Scale:    [3]float64{1, 1, 1},
	}

	for i, v := range obj.Location {
		node.Translation[i] = v * cfg.GlobalScale
	}

	switch obj.Kind {
	case entity.ObjectMesh:
		if obj.Mesh != nil {
			node.Vertices = obj.Mesh.VertexCount
			node.Faces = len(obj.Mesh.Polygons)
			node.UVChannels = len(obj.Mesh.UVLayers)
			if cfg.ApplyModifiers {
				node.Modifiers = obj.Mesh.Modifiers
			}
			if cfg.EmbedTextures {
				node.Textures = obj.Mesh.Textures
			}
		}
	case entity.ObjectArmature:
		if obj.Armature != nil {
			node.Bones = bakeBones(obj.Armature, cfg)
		}
	case entity.ObjectEmpty:
	}

	return node
}

func bakeBones(arm *entity.Armature, cfg entity.ExportConfig) []interchangeBone {
	bones := make([]interchangeBone, 0, len(arm.Bones))
	for _, b := range arm.Bones {
		if cfg.DeformBonesOnly && !b.Deform {
			continue
		}
		bones = append(bones, interchangeBone{Name: b.Name, Parent: b.Parent})
	}

	return bones
}

func bakeMaterials(scene *entity.Scene) []interchangeMat {
	mats := make([]interchangeMat, 0, len(scene.Materials))
	for _, m := range scene.Materials {
		mats = append(mats, interchangeMat{ID: util.StableID(m.Name), Name: m.Name})
	}

	return mats
}
