package scenefs

import (
	"encoding/json"
	"testing"

	"github.com/PlaxKING/tower-game/internal/entity"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func exportScene() *entity.Scene {
	return &entity.Scene{
		Name: "hero",
		Objects: []*entity.Object{
			{
				Name:     "SK_Hero",
				Kind:     entity.ObjectMesh,
				Location: entity.Vec3{1, 2, 3},
				Scale:    entity.Vec3{1, 1, 1},
				Mesh: &entity.Mesh{
					VertexCount: 8,
					UVLayers:    []string{"UVMap"},
					Modifiers:   []string{"Mirror"},
					Textures:    []string{"T_Hero_D.png"},
				},
			},
			{
				Name: "SK_Hero_Rig",
				Kind: entity.ObjectArmature,
				Armature: &entity.Armature{Bones: []entity.Bone{
					{Name: "root", Deform: true},
					{Name: "spine", Parent: "root", Deform: true},
					{Name: "ik_hand", Parent: "root", Deform: false},
				}},
			},
			{Name: "REF_Ground", Kind: entity.ObjectMesh, Mesh: &entity.Mesh{VertexCount: 4}},
			{Name: "Socket_Weapon", Kind: entity.ObjectEmpty},
		},
		Materials: []*entity.Material{{Name: "M_Hero", UseNodes: true}},
		Actions:   []string{"Idle", "Run"},
	}
}

func TestExportInterchangeDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	a := NewAccessorWithFS(fs, testLogger())

	err := a.Export(exportScene(), "/models/characters/hero.scene", "/export/Characters/hero.json", entity.DefaultExportConfig())
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/export/Characters/hero.json")
	require.NoError(t, err)

	var doc struct {
		Name   string `json:"name"`
		Source string `json:"source"`
		Config struct {
			AxisForward string  `json:"axis_forward"`
			AxisUp      string  `json:"axis_up"`
			GlobalScale float64 `json:"global_scale"`
		} `json:"config"`
		Nodes []struct {
			ID          string     `json:"id"`
			Name        string     `json:"name"`
			Kind        string     `json:"kind"`
			Translation [3]float64 `json:"translation"`
			Scale       [3]float64 `json:"scale"`
			Textures    []string   `json:"embedded_textures"`
			Bones       []struct {
				Name string `json:"name"`
			} `json:"bones"`
		} `json:"nodes"`
		Actions []string `json:"baked_actions"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "hero", doc.Name)
	require.Equal(t, "/models/characters/hero.scene", doc.Source)
	require.Equal(t, "-Y", doc.Config.AxisForward)
	require.Equal(t, "Z", doc.Config.AxisUp)
	require.Equal(t, 1.0, doc.Config.GlobalScale)
	require.Equal(t, []string{"Idle", "Run"}, doc.Actions)

	// REF_ objects are excluded; mesh, armature and empty survive.
	require.Len(t, doc.Nodes, 3)
	require.Equal(t, "SK_Hero", doc.Nodes[0].Name)
	require.Equal(t, "Mesh", doc.Nodes[0].Kind)
	require.Equal(t, [3]float64{1, 2, 3}, doc.Nodes[0].Translation)
	require.Equal(t, [3]float64{1, 1, 1}, doc.Nodes[0].Scale)
	require.Equal(t, []string{"T_Hero_D.png"}, doc.Nodes[0].Textures)

	// Deform-only skeleton: the IK helper bone is dropped.
	require.Equal(t, "Armature", doc.Nodes[1].Kind)
	require.Len(t, doc.Nodes[1].Bones, 2)

	require.Equal(t, "Empty", doc.Nodes[2].Kind)
}

func TestExportStableNodeIDs(t *testing.T) {
	fs := afero.NewMemMapFs()
	a := NewAccessorWithFS(fs, testLogger())
	cfg := entity.DefaultExportConfig()

	require.NoError(t, a.Export(exportScene(), "/m/hero.scene", "/e/one.json", cfg))
	require.NoError(t, a.Export(exportScene(), "/m/hero.scene", "/e/two.json", cfg))

	one, err := afero.ReadFile(fs, "/e/one.json")
	require.NoError(t, err)
	two, err := afero.ReadFile(fs, "/e/two.json")
	require.NoError(t, err)
	require.Equal(t, one, two, "same source must bake to an identical document")
}

func TestExportRespectsObjectTypeFilter(t *testing.T) {
	fs := afero.NewMemMapFs()
	a := NewAccessorWithFS(fs, testLogger())

	cfg := entity.DefaultExportConfig()
	cfg.ObjectTypes = []entity.ObjectKind{entity.ObjectMesh}

	require.NoError(t, a.Export(exportScene(), "/m/hero.scene", "/e/mesh_only.json", cfg))

	data, err := afero.ReadFile(fs, "/e/mesh_only.json")
	require.NoError(t, err)

	var doc struct {
		Nodes []struct {
			Kind string `json:"kind"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Nodes, 1)
	require.Equal(t, "Mesh", doc.Nodes[0].Kind)
}
