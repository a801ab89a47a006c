// Package batch drives the pipeline over the whole models tree:
// discover -> classify -> staleness gate -> load -> validate -> export ->
// record, then a persisted aggregate report.
//
// Validation in the export path is advisory by policy: issues are surfaced but
// never block the export, only load and export failures do. The standalone
// validation run is where issues decide pass/fail.
package batch

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/PlaxKING/tower-game/internal/config"
	"github.com/PlaxKING/tower-game/internal/entity"
	"github.com/PlaxKING/tower-game/internal/service/classify"
	"github.com/PlaxKING/tower-game/internal/service/validate"
	"github.com/google/uuid"
)

type Catalog interface {
	Scan() ([]entity.SourceAsset, error)
}

type SceneLoader interface {
	Load(path string) (*entity.Scene, error)
}

type StalenessDetector interface {
	NeedsExport(sourcePath, outputPath string) (bool, error)
}

type Exporter interface {
	Export(scene *entity.Scene, sourcePath, dstPath string) error
}

type MetaReader interface {
	Read(sourcePath string) (*entity.AssetMeta, error)
}

type ReportWriter interface {
	WriteBatch(summary *entity.BatchSummary) (string, error)
	WriteValidation(summary *entity.ValidationSummary) (string, error)
}

// Orchestrator processes one source file fully before advancing to the next.
// The scene accessor holds a single resident scene, so there is no parallel
// load or export by construction.
type Orchestrator struct {
	cfg      *config.PipelineConfig
	catalog  Catalog
	loader   SceneLoader
	stale    StalenessDetector
	exporter Exporter
	meta     MetaReader
	reports  ReportWriter
	out      io.Writer
	log      *slog.Logger
}

func NewOrchestrator(
	cfg *config.PipelineConfig,
	catalog Catalog,
	loader SceneLoader,
	stale StalenessDetector,
	exporter Exporter,
	meta MetaReader,
	reports ReportWriter,
	out io.Writer,
	log *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		catalog:  catalog,
		loader:   loader,
		stale:    stale,
		exporter: exporter,
		meta:     meta,
		reports:  reports,
		out:      out,
		log:      log.With(slog.String("item", "Orchestrator")),
	}
}

// RunExport executes the export batch and returns the summary plus the path of
// the persisted report. Per-file failures are recorded and the batch moves on;
// only environment errors (scan, report write) abort the run.
func (o *Orchestrator) RunExport() (*entity.BatchSummary, string, error) {
	assets, err := o.catalog.Scan()
	if err != nil {
		return nil, "", fmt.Errorf("cannot scan models root: %w", err)
	}

	summary := &entity.BatchSummary{
		RunID:      uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		TotalFiles: len(assets),
		Files:      []string{},
	}

	for _, asset := range assets {
		category := o.categoryFor(asset)
		dstPath := filepath.Join(o.cfg.ExportDir, category, asset.Base+o.cfg.ExportExt)

		needed, err := o.stale.NeedsExport(asset.Path, dstPath)
		if err != nil {
			summary.Failed++
			fmt.Fprintf(o.out, "  [FAIL] %s: %s\n", asset.Name, err)

			continue
		}
		if !needed {
			summary.Skipped++
			fmt.Fprintf(o.out, "  [SKIP] %s (up to date)\n", asset.Name)

			continue
		}

		fmt.Fprintf(o.out, "Exporting: %s [%s]\n", asset.Name, category)

		scene, err := o.loader.Load(asset.Path)
		if err != nil {
			summary.Failed++
			o.log.Error("Load failed", slog.String("path", asset.Path), slog.Any("error", err))
			fmt.Fprintf(o.out, "  [FAIL] %s: %s\n", asset.Name, err)

			continue
		}

		// Advisory: issues are reported but do not gate the export.
		report := validate.Validate(scene, asset.Path)
		for _, issue := range report.Issues {
			fmt.Fprintf(o.out, "  [WARN] %s\n", issue)
		}
		o.log.Debug("Validated",
			slog.String("path", asset.Path),
			slog.Bool("valid", report.Valid),
			slog.Int("issues", len(report.Issues)),
			slog.Int("warnings", len(report.Warnings)))

		if err := o.exporter.Export(scene, asset.Path, dstPath); err != nil {
			summary.Failed++
			o.log.Error("Export failed", slog.String("path", asset.Path), slog.Any("error", err))
			fmt.Fprintf(o.out, "  [FAIL] %s: %s\n", asset.Name, err)

			continue
		}

		summary.Exported++
		summary.Files = append(summary.Files, dstPath)
		fmt.Fprintf(o.out, "  [OK] Exported: %s -> %s\n", asset.Name, filepath.Base(dstPath))
	}

	reportPath, err := o.reports.WriteBatch(summary)
	if err != nil {
		return summary, "", fmt.Errorf("cannot write batch report: %w", err)
	}

	fmt.Fprintf(o.out, "\nExport complete: %d exported, %d skipped, %d failed\n",
		summary.Exported, summary.Skipped, summary.Failed)
	fmt.Fprintf(o.out, "Report: %s\n", reportPath)

	return summary, reportPath, nil
}

// RunValidate executes the validation-only batch: every source file is loaded
// and fully validated regardless of staleness. Load failures count the file as
// invalid with a single load issue so the tally still covers it.
func (o *Orchestrator) RunValidate() (*entity.ValidationSummary, string, error) {
	assets, err := o.catalog.Scan()
	if err != nil {
		return nil, "", fmt.Errorf("cannot scan models root: %w", err)
	}

	summary := &entity.ValidationSummary{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Files:     []*entity.ValidationReport{},
	}

	for _, asset := range assets {
		fmt.Fprintf(o.out, "Validating: %s\n", asset.Name)

		scene, err := o.loader.Load(asset.Path)
		if err != nil {
			o.log.Error("Load failed", slog.String("path", asset.Path), slog.Any("error", err))
			report := &entity.ValidationReport{
				File:     asset.Name,
				Path:     asset.Path,
				Objects:  []entity.ObjectSummary{},
				Issues:   []string{fmt.Sprintf("Load failed: %s", err)},
				Warnings: []string{},
			}
			summary.Files = append(summary.Files, report)
			fmt.Fprintf(o.out, "  [FAIL] %s\n", err)

			continue
		}

		report := validate.Validate(scene, asset.Path)
		summary.Files = append(summary.Files, report)

		if report.Valid {
			fmt.Fprintf(o.out, "  [PASS] %d verts, %d faces\n",
				report.Stats.TotalVertices, report.Stats.TotalFaces)
		} else {
			fmt.Fprintf(o.out, "  [FAIL] %d issues:\n", len(report.Issues))
			for _, issue := range report.Issues {
				fmt.Fprintf(o.out, "    - %s\n", issue)
			}
		}
		for _, warn := range report.Warnings {
			fmt.Fprintf(o.out, "    [WARN] %s\n", warn)
		}
	}

	summary.TotalFiles = len(summary.Files)
	for _, r := range summary.Files {
		if r.Valid {
			summary.ValidFiles++
		} else {
			summary.InvalidFiles++
		}
		summary.TotalIssues += len(r.Issues)
	}

	reportPath, err := o.reports.WriteValidation(summary)
	if err != nil {
		return summary, "", fmt.Errorf("cannot write validation report: %w", err)
	}

	fmt.Fprintf(o.out, "\nResults: %d/%d passed, %d issues\n",
		summary.ValidFiles, summary.TotalFiles, summary.TotalIssues)
	fmt.Fprintf(o.out, "Report: %s\n", reportPath)

	return summary, reportPath, nil
}

// categoryFor derives the asset category: sidecar frontmatter wins over the
// keyword table. A broken sidecar only logs; classification never fails.
func (o *Orchestrator) categoryFor(asset entity.SourceAsset) string {
	meta, err := o.meta.Read(asset.Path)
	if err != nil {
		o.log.Warn("Cannot read sidecar", slog.String("path", asset.Path), slog.Any("error", err))
	}
	if meta != nil && meta.Category != "" {
		return meta.Category
	}

	return classify.Classify(asset.Path)
}
