// Package catalog discovers source assets under the models root. Scan is
// stat-only: file contents are never read at discovery time.
package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/PlaxKING/tower-game/internal/common"
	"github.com/PlaxKING/tower-game/internal/config"
	"github.com/PlaxKING/tower-game/internal/entity"
	"github.com/spf13/afero"
)

type catalogStorage struct {
	running atomic.Bool
	fs      afero.Fs
	cfg     *config.PipelineConfig
	log     *slog.Logger
}

func NewCatalogStorage(cfg *config.PipelineConfig, log *slog.Logger) *catalogStorage {
	return NewCatalogStorageWithFS(afero.NewOsFs(), cfg, log)
}

func NewCatalogStorageWithFS(fs afero.Fs, cfg *config.PipelineConfig, log *slog.Logger) *catalogStorage {
	return &catalogStorage{
		fs:  fs,
		cfg: cfg,
		log: log.With(slog.String("item", "CatalogStorage")),
	}
}

// Scan walks the models root recursively and returns every file with the
// source extension, sorted by relative path so one run's processing order is
// stable regardless of filesystem enumeration order. An empty or missing
// result is not an error; the orchestrator turns it into a zero-work run.
func (c *catalogStorage) Scan() ([]entity.SourceAsset, error) {
	if !c.running.CompareAndSwap(false, true) {
		return nil, common.ErrScanAlreadyRunning
	}
	defer c.running.Store(false)

	root := filepath.Clean(c.cfg.ModelsDir)

	var assets []entity.SourceAsset
	err := afero.Walk(c.fs, root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}

		name := info.Name()
		if !strings.HasSuffix(strings.ToLower(name), c.cfg.SourceExt) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		assets = append(assets, entity.SourceAsset{
			Path:    path,
			RelPath: rel,
			Name:    name,
			Base:    strings.TrimSuffix(name, c.cfg.SourceExt),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].RelPath < assets[j].RelPath })

	c.log.Info("Scanned models root", slog.String("root", root), slog.Int("count", len(assets)))

	return assets, nil
}
