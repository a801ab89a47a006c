package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/PlaxKING/tower-game/internal/adapter/mdmeta"
	"github.com/PlaxKING/tower-game/internal/adapter/reportfs"
	"github.com/PlaxKING/tower-game/internal/adapter/scenefs"
	"github.com/PlaxKING/tower-game/internal/config"
	"github.com/PlaxKING/tower-game/internal/service/batch"
	"github.com/PlaxKING/tower-game/internal/service/export"
	"github.com/PlaxKING/tower-game/internal/service/stale"
	"github.com/PlaxKING/tower-game/internal/storage/catalog"
	"github.com/PlaxKING/tower-game/internal/ui"
	"github.com/PlaxKING/tower-game/internal/watcher"
)

const banner = "============================================================"

type App struct {
	cfgPath string
	cfg     *config.Config
	log     *slog.Logger

	accessor     *scenefs.Accessor
	invoker      *export.Invoker
	orchestrator *batch.Orchestrator

	logCloser io.Closer
}

func New(cfgPath string) *App {
	return &App{
		cfgPath: cfgPath,
	}
}

// Start loads the configuration and wires the pipeline. Environment problems
// (unreadable config, bad log level) panic: they are preconditions, not
// per-asset conditions.
func (a *App) Start() {
	a.cfg = config.MustLoad(a.cfgPath)
	a.log = a.buildLogger()

	fs := afero.NewOsFs()

	a.accessor = scenefs.NewAccessorWithFS(fs, a.log)
	a.invoker = export.NewInvokerWithFS(fs, a.accessor, a.log)

	cat := catalog.NewCatalogStorageWithFS(fs, &a.cfg.Pipeline, a.log)
	detector := stale.NewDetectorWithFS(fs)
	meta := mdmeta.NewReaderWithFS(fs, a.log)
	reports := reportfs.NewWriterWithFS(fs, a.cfg.Pipeline.ReportsDir, a.log)

	a.orchestrator = batch.NewOrchestrator(
		&a.cfg.Pipeline, cat, a.accessor, detector, a.invoker, meta, reports,
		os.Stdout, a.log,
	)
}

func (a *App) buildLogger() *slog.Logger {
	lo := &slog.HandlerOptions{}
	switch a.cfg.Log.Level {
	case config.LogLevelDebug:
		lo.Level = slog.LevelDebug
	case config.LogLevelInfo:
		lo.Level = slog.LevelInfo
	case config.LogLevelWarn:
		lo.Level = slog.LevelWarn
	case config.LogLevelError:
		lo.Level = slog.LevelError
	default:
		panic("unknown log level")
	}

	var w io.Writer = os.Stderr
	if a.cfg.Log.FilePath != "" {
		lj := &lumberjack.Logger{
			Filename:   a.cfg.Log.FilePath,
			MaxSize:    a.cfg.Log.FileMaxSizeMB,
			MaxBackups: a.cfg.Log.FileMaxFiles,
			MaxAge:     a.cfg.Log.FileMaxAgeDays,
		}
		a.logCloser = lj
		w = lj
	}

	return slog.New(slog.NewTextHandler(w, lo))
}

// RunExport executes one export batch end to end.
func (a *App) RunExport() error {
	fmt.Println(banner)
	fmt.Println("Tower Game - Batch Export")
	fmt.Printf("Models dir: %s\n", a.cfg.Pipeline.ModelsDir)
	fmt.Printf("Export dir: %s\n", a.cfg.Pipeline.ExportDir)
	fmt.Println(banner)

	summary, _, err := a.orchestrator.RunExport()
	if err != nil {
		return err
	}

	if summary.TotalFiles == 0 {
		fmt.Println("No source files found.")
		fmt.Printf("Place your models in: %s\n", a.cfg.Pipeline.ModelsDir)
	}

	return nil
}

// RunValidate executes one validation-only batch.
func (a *App) RunValidate() error {
	fmt.Println(banner)
	fmt.Println("Tower Game - Model Validator")
	fmt.Printf("Models dir: %s\n", a.cfg.Pipeline.ModelsDir)
	fmt.Println(banner)

	summary, _, err := a.orchestrator.RunValidate()
	if err != nil {
		return err
	}

	if summary.TotalFiles == 0 {
		fmt.Println("No source files found.")
		fmt.Printf("Place your models in: %s\n", a.cfg.Pipeline.ModelsDir)
	}

	return nil
}

// RunInteractive starts the authoring console against the current scene.
func (a *App) RunInteractive() error {
	session := NewSession(a.cfg, a.accessor, a.invoker, a.log)

	if _, err := tea.NewProgram(ui.InitialModel(session)).Run(); err != nil {
		return fmt.Errorf("cannot run console: %w", err)
	}

	return nil
}

// Watch blocks until ctx is canceled, re-running the export batch whenever
// the models tree changes.
func (a *App) Watch(ctx context.Context) error {
	w := watcher.NewService(a.cfg.Pipeline.ModelsDir, a.cfg.Watch.Debounce(), func() {
		if err := a.RunExport(); err != nil {
			a.log.Error("Batch run failed", slog.Any("error", err))
		}
	}, a.log)

	return w.Start(ctx)
}

func (a *App) Stop() {
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}
