package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	loaded    string
	exported  string
	findings  []string
	failLoad  error
	failValid error
}

func (f *fakeSession) SetupWorkspace() (string, error) {
	return "_workspace/reference.scene", nil
}

func (f *fakeSession) LoadScene(path string) (string, error) {
	if f.failLoad != nil {
		return "", f.failLoad
	}
	f.loaded = path

	return "Loaded " + path, nil
}

func (f *fakeSession) ValidateScene() ([]string, error) {
	if f.failValid != nil {
		return nil, f.failValid
	}

	return f.findings, nil
}

func (f *fakeSession) ExportScene(assetType string) (string, error) {
	f.exported = assetType

	return "/export/SM_out.json", nil
}

func runCommand(t *testing.T, input string, session Session) CommandResultMsg {
	t.Helper()

	msg := performCommand(input, session)()
	result, ok := msg.(CommandResultMsg)
	require.True(t, ok)

	return result
}

func TestPerformCommand(t *testing.T) {
	t.Run("setup", func(t *testing.T) {
		result := runCommand(t, "setup", &fakeSession{})
		require.NoError(t, result.Err)
		require.Len(t, result.Lines, 1)
		require.Contains(t, result.Lines[0], "_workspace/reference.scene")
	})

	t.Run("load requires a path", func(t *testing.T) {
		result := runCommand(t, "load", &fakeSession{})
		require.Error(t, result.Err)
	})

	t.Run("load", func(t *testing.T) {
		s := &fakeSession{}
		result := runCommand(t, "load /models/blob.scene", s)
		require.NoError(t, result.Err)
		require.Equal(t, "/models/blob.scene", s.loaded)
	})

	t.Run("validate clean scene", func(t *testing.T) {
		result := runCommand(t, "validate", &fakeSession{})
		require.NoError(t, result.Err)
		require.Contains(t, result.Lines[0], "All checks passed!")
	})

	t.Run("validate with findings", func(t *testing.T) {
		s := &fakeSession{findings: []string{"SM_Box: Unapplied scale"}}
		result := runCommand(t, "validate", s)
		require.NoError(t, result.Err)
		require.Len(t, result.Lines, 1)
		require.Contains(t, result.Lines[0], "Unapplied scale")
	})

	t.Run("validate without a scene", func(t *testing.T) {
		s := &fakeSession{failValid: fmt.Errorf("no scene loaded")}
		result := runCommand(t, "validate", s)
		require.Error(t, result.Err)
	})

	t.Run("export passes the asset type through", func(t *testing.T) {
		s := &fakeSession{}
		result := runCommand(t, "export monster", s)
		require.NoError(t, result.Err)
		require.Equal(t, "monster", s.exported)
	})

	t.Run("unknown command", func(t *testing.T) {
		result := runCommand(t, "frobnicate", &fakeSession{})
		require.Error(t, result.Err)
	})
}
