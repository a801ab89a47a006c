// Package export wraps the scene accessor's exporter with the fixed
// interchange configuration and destination handling.
package export

import (
	"log/slog"
	"path/filepath"

	"github.com/PlaxKING/tower-game/internal/common"
	"github.com/PlaxKING/tower-game/internal/entity"
	"github.com/spf13/afero"
)

// SceneExporter is the accessor-side exporter the invoker drives.
type SceneExporter interface {
	Export(scene *entity.Scene, sourcePath, dstPath string, cfg entity.ExportConfig) error
}

type Invoker struct {
	fs       afero.Fs
	exporter SceneExporter
	cfg      entity.ExportConfig
	log      *slog.Logger
}

func NewInvoker(exporter SceneExporter, log *slog.Logger) *Invoker {
	return NewInvokerWithFS(afero.NewOsFs(), exporter, log)
}

func NewInvokerWithFS(fs afero.Fs, exporter SceneExporter, log *slog.Logger) *Invoker {
	return &Invoker{
		fs:       fs,
		exporter: exporter,
		cfg:      entity.DefaultExportConfig(),
		log:      log.With(slog.String("item", "ExportInvoker")),
	}
}

// Export writes the interchange file for scene at dstPath, creating the parent
// directory first. Every failure comes back as a *common.ExportError; callers
// must treat the output state as undefined after one.
func (i *Invoker) Export(scene *entity.Scene, sourcePath, dstPath string) error {
	if err := i.fs.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return &common.ExportError{Path: dstPath, Err: err}
	}

	if err := i.exporter.Export(scene, sourcePath, dstPath, i.cfg); err != nil {
		return &common.ExportError{Path: dstPath, Err: err}
	}

	i.log.Info("Exported", slog.String("source", sourcePath), slog.String("output", dstPath))

	return nil
}

// Config exposes the fixed interchange configuration (both the batch and the
// interactive paths read it from here, never from a second literal).
func (i *Invoker) Config() entity.ExportConfig {
	return i.cfg
}
