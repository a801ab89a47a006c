package mdmeta

import (
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSidecarPath(t *testing.T) {
	require.Equal(t, "/models/weapons/sword_01.md", SidecarPath("/models/weapons/sword_01.scene"))
	require.Equal(t, "/models/noext.md", SidecarPath("/models/noext"))
}

func TestReadMissingSidecar(t *testing.T) {
	r := NewReaderWithFS(afero.NewMemMapFs(), testLogger())

	meta, err := r.Read("/models/weapons/sword_01.scene")
	require.NoError(t, err)
	require.Nil(t, meta)
}

func TestReadFrontmatter(t *testing.T) {
	sidecar := `---
title: "Rusty Sword"
category: Weapons
asset_type: weapon
author: plax
---

First blade of the starter zone.
`

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/models/sword_01.md", []byte(sidecar), 0o644))

	r := NewReaderWithFS(fs, testLogger())

	meta, err := r.Read("/models/sword_01.scene")
	require.NoError(t, err)
	require.NotNil(t, meta)
	require.Equal(t, "Rusty Sword", meta.Title)
	require.Equal(t, "Weapons", meta.Category)
	require.Equal(t, "weapon", meta.AssetType)
	require.Contains(t, meta.NotesHTML, "First blade")
}

func TestReadBodyWithoutFrontmatter(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/models/blob.md", []byte("# Blob\njust notes\n"), 0o644))

	r := NewReaderWithFS(fs, testLogger())

	meta, err := r.Read("/models/blob.scene")
	require.NoError(t, err)
	require.NotNil(t, meta)
	require.Empty(t, meta.Category)
	require.Contains(t, meta.NotesHTML, "<h1>")
}
