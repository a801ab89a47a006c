package entity

// ExportConfig is the fixed interchange configuration. Both the batch pipeline
// and the interactive console export through this single value so the two call
// sites cannot drift apart. None of it is exposed on the CLI.
type ExportConfig struct {
	GlobalScale        float64      `json:"global_scale"`
	ApplyUnitScale     bool         `json:"apply_unit_scale"`
	ApplyScaleMode     string       `json:"apply_scale_mode"`
	AxisForward        string       `json:"axis_forward"`
	AxisUp             string       `json:"axis_up"`
	ObjectTypes        []ObjectKind `json:"-"`
	ApplyModifiers     bool         `json:"apply_modifiers"`
	MeshSmoothType     string       `json:"mesh_smooth_type"`
	TangentSpace       bool         `json:"tangent_space"`
	AddLeafBones       bool         `json:"add_leaf_bones"`
	PrimaryBoneAxis    string       `json:"primary_bone_axis"`
	SecondaryBoneAxis  string       `json:"secondary_bone_axis"`
	DeformBonesOnly    bool         `json:"deform_bones_only"`
	BakeAnim           bool         `json:"bake_anim"`
	BakeAnimAllActions bool         `json:"bake_anim_all_actions"`
	BakeAnimStep       float64      `json:"bake_anim_step"`
	BakeAnimSimplify   float64      `json:"bake_anim_simplify"`
	PathMode           string       `json:"path_mode"`
	EmbedTextures      bool         `json:"embed_textures"`
}

// DefaultExportConfig returns the engine-import configuration every export
// uses.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		GlobalScale:        1.0,
		ApplyUnitScale:     true,
		ApplyScaleMode:     "all",
		AxisForward:        "-Y",
		AxisUp:             "Z",
		ObjectTypes:        []ObjectKind{ObjectMesh, ObjectArmature, ObjectEmpty},
		ApplyModifiers:     true,
		MeshSmoothType:     "face",
		TangentSpace:       true,
		AddLeafBones:       false,
		PrimaryBoneAxis:    "Y",
		SecondaryBoneAxis:  "X",
		DeformBonesOnly:    true,
		BakeAnim:           true,
		BakeAnimAllActions: true,
		BakeAnimStep:       1.0,
		BakeAnimSimplify:   1.0,
		PathMode:           "auto",
		EmbedTextures:      true,
	}
}

// Exports reports whether objects of the given kind are included in the
// interchange output.
func (c ExportConfig) Exports(kind ObjectKind) bool {
	for _, k := range c.ObjectTypes {
		if k == kind {
			return true
		}
	}

	return false
}
