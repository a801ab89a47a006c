// Package validate walks a loaded scene and reports engine-compatibility
// findings. Issues mark the asset invalid; warnings are advisory and never
// affect validity.
package validate

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/PlaxKING/tower-game/internal/entity"
)

// Engine compatibility limits.
const (
	MaxVerticesLOD0      = 100000
	MaxVerticesPerObject = 50000
	MaxBones             = 256
	ScaleTolerance       = 0.001
	RotationTolerance    = 0.001

	// Reference helper objects created by workspace setup are not assets.
	ReferencePrefix = "REF_"
)

// Accepted mesh name prefixes: static mesh, skeletal mesh, generic static.
var namePrefixes = []string{"SM_", "SK_", "S_"}

// Validate inspects every object of the scene exactly once and returns a new
// immutable report. Valid is computed last as "no issues"; a scene with only
// warnings is valid.
func Validate(scene *entity.Scene, path string) *entity.ValidationReport {
	report := &entity.ValidationReport{
		File:     filepath.Base(path),
		Path:     path,
		Objects:  []entity.ObjectSummary{},
		Issues:   []string{},
		Warnings: []string{},
	}

	for _, obj := range scene.Objects {
		switch obj.Kind {
		case entity.ObjectMesh:
			validateMesh(obj, report)
		case entity.ObjectArmature:
			validateArmature(obj, report)
		case entity.ObjectEmpty:
			// Locators carry no geometry; nothing to check.
		}
	}

	for _, mat := range scene.Materials {
		report.Stats.Materials++
		if !mat.UseNodes {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Material '%s': not using nodes", mat.Name))
		}
	}

	if report.Stats.TotalVertices > MaxVerticesLOD0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Total vertices (%d) exceeds LOD0 limit (%d)",
				report.Stats.TotalVertices, MaxVerticesLOD0))
	}

	report.Valid = len(report.Issues) == 0

	return report
}

// QuickCheck is the authoring-time validator behind the interactive console.
// Reference objects are skipped and every finding is advisory, scale included.
func QuickCheck(scene *entity.Scene) []string {
	var findings []string

	for _, obj := range scene.Objects {
		if strings.HasPrefix(obj.Name, ReferencePrefix) {
			continue
		}
		if obj.Kind != entity.ObjectMesh || obj.Mesh == nil {
			continue
		}

		if !scaleApplied(obj.Scale) {
			findings = append(findings, fmt.Sprintf("%s: Unapplied scale", obj.Name))
		}

		if len(obj.Mesh.UVLayers) == 0 {
			findings = append(findings, fmt.Sprintf("%s: No UV map", obj.Name))
		}

		if obj.Mesh.VertexCount > MaxVerticesPerObject {
			findings = append(findings,
				fmt.Sprintf("%s: %d vertices (consider LODs)", obj.Name, obj.Mesh.VertexCount))
		}
	}

	return findings
}

func validateMesh(obj *entity.Object, report *entity.ValidationReport) {
	mesh := obj.Mesh
	if mesh == nil {
		report.Issues = append(report.Issues,
			fmt.Sprintf("'%s': Mesh object has no mesh data", obj.Name))

		return
	}

	report.Stats.MeshObjects++
	report.Stats.TotalVertices += mesh.VertexCount
	report.Stats.TotalFaces += len(mesh.Polygons)
	report.Objects = append(report.Objects, entity.ObjectSummary{
		Name:     obj.Name,
		Vertices: mesh.VertexCount,
		Faces:    len(mesh.Polygons),
		Edges:    len(mesh.Edges),
	})

	for i, s := range obj.Scale {
		if math.Abs(s-1.0) > ScaleTolerance {
			axis := string("XYZ"[i])
			report.Issues = append(report.Issues,
				fmt.Sprintf("'%s': Scale %s=%.3f (expected 1.0). Apply scale before export",
					obj.Name, axis, s))
		}
	}

	for _, r := range obj.Rotation {
		if math.Abs(r) > RotationTolerance {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("'%s': Has unapplied rotation", obj.Name))

			break
		}
	}

	switch uvs := len(mesh.UVLayers); {
	case uvs == 0:
		report.Issues = append(report.Issues,
			fmt.Sprintf("'%s': Missing UV map (required for engine import)", obj.Name))
	case uvs > 2:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("'%s': %d UV maps (engine typically uses 1-2)", obj.Name, uvs))
	}

	ngons := 0
	for _, p := range mesh.Polygons {
		if len(p.Vertices) > 4 {
			ngons++
		}
	}
	if ngons > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("'%s': %d ngons (triangulate for best results)", obj.Name, ngons))
	}

	used := make(map[int]struct{}, mesh.VertexCount)
	for _, e := range mesh.Edges {
		used[e[0]] = struct{}{}
		used[e[1]] = struct{}{}
	}
	if loose := mesh.VertexCount - len(used); loose > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("'%s': %d loose vertices", obj.Name, loose))
	}

	if !hasAcceptedPrefix(obj.Name) {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("'%s': Consider engine naming: SM_ (static), SK_ (skeletal)", obj.Name))
	}
}

func validateArmature(obj *entity.Object, report *entity.ValidationReport) {
	report.Stats.Armatures++

	arm := obj.Armature
	if arm == nil {
		report.Issues = append(report.Issues,
			fmt.Sprintf("'%s': Armature has no bones", obj.Name))

		return
	}

	boneCount := len(arm.Bones)

	if boneCount > MaxBones {
		report.Issues = append(report.Issues,
			fmt.Sprintf("'%s': %d bones exceeds limit (%d)", obj.Name, boneCount, MaxBones))
	}

	if boneCount == 0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("'%s': Armature has no bones", obj.Name))
	}

	if roots := arm.RootBones(); len(roots) > 1 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("'%s': Multiple root bones (%d). Engines work best with a single root",
				obj.Name, len(roots)))
	}
}

func scaleApplied(scale entity.Vec3) bool {
	for _, s := range scale {
		if math.Abs(s-1.0) > ScaleTolerance {
			return false
		}
	}

	return true
}

func hasAcceptedPrefix(name string) bool {
	for _, p := range namePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}

	return false
}
