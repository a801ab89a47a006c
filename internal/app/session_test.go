package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/PlaxKING/tower-game/internal/adapter/scenefs"
	"github.com/PlaxKING/tower-game/internal/common"
	"github.com/PlaxKING/tower-game/internal/config"
	"github.com/PlaxKING/tower-game/internal/service/export"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const swordScene = `name: sword_01
objects:
  - name: SM_Sword
    kind: mesh
    scale: [1, 1, 1]
    mesh:
      vertices: 4
      edges: [[0, 1], [1, 2], [2, 3], [3, 0]]
      polygons:
        - vertices: [0, 1, 2, 3]
      uv_layers: [UVMap]
`

func newTestSession(t *testing.T, fs afero.Fs) *Session {
	t.Helper()

	cfg := &config.Config{
		Pipeline: config.PipelineConfig{
			ModelsDir:  "/models",
			ExportDir:  "/export",
			ReportsDir: "/reports",
			SourceExt:  ".scene",
			ExportExt:  ".json",
		},
		Workspace: config.WorkspaceConfig{Dir: "/_workspace"},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	accessor := scenefs.NewAccessorWithFS(fs, log)
	invoker := export.NewInvokerWithFS(fs, accessor, log)

	return NewSession(cfg, accessor, invoker, log)
}

func TestSessionSetupWorkspace(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestSession(t, fs)

	path, err := s.SetupWorkspace()
	require.NoError(t, err)
	require.Equal(t, "/_workspace/reference.scene", path)

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.True(t, exists)

	// The reference scene becomes the current scene and passes quick checks
	// because REF_ objects are skipped.
	findings, err := s.ValidateScene()
	require.NoError(t, err)
	require.Empty(t, findings)
}

func TestSessionValidateWithoutScene(t *testing.T) {
	s := newTestSession(t, afero.NewMemMapFs())

	_, err := s.ValidateScene()
	require.ErrorIs(t, err, common.ErrNoSceneLoaded)
}

func TestSessionExportWithAssetTypePrefix(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/models/weapons/sword_01.scene", []byte(swordScene), 0o644))

	s := newTestSession(t, fs)

	_, err := s.LoadScene("/models/weapons/sword_01.scene")
	require.NoError(t, err)

	testCases := []struct {
		assetType string
		expected  string
	}{
		{"weapon", "/export/SM_Weapon_sword_01.json"},
		{"MONSTER", "/export/SK_Monster_sword_01.json"},
		{"", "/export/SM_sword_01.json"},
		{"unknown", "/export/SM_sword_01.json"},
	}

	for _, tc := range testCases {
		dst, err := s.ExportScene(tc.assetType)
		require.NoError(t, err)
		require.Equal(t, tc.expected, dst)

		exists, err := afero.Exists(fs, dst)
		require.NoError(t, err)
		require.True(t, exists)
	}
}

func TestSessionExportWithoutScene(t *testing.T) {
	s := newTestSession(t, afero.NewMemMapFs())

	_, err := s.ExportScene("weapon")
	require.ErrorIs(t, err, common.ErrNoSceneLoaded)
}
