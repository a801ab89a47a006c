// Package reportfs persists run summaries as timestamped JSON records. A
// short run-ID suffix keeps two runs within the same second from colliding,
// so a prior report is never overwritten.
package reportfs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/PlaxKING/tower-game/internal/entity"
	"github.com/spf13/afero"
)

const timestampLayout = "20060102_150405"

type Writer struct {
	fs  afero.Fs
	dir string
	log *slog.Logger
}

func NewWriter(dir string, log *slog.Logger) *Writer {
	return NewWriterWithFS(afero.NewOsFs(), dir, log)
}

func NewWriterWithFS(fs afero.Fs, dir string, log *slog.Logger) *Writer {
	return &Writer{
		fs:  fs,
		dir: dir,
		log: log.With(slog.String("item", "ReportWriter")),
	}
}

// WriteBatch persists an export-run summary and returns the report path.
func (w *Writer) WriteBatch(summary *entity.BatchSummary) (string, error) {
	name := fmt.Sprintf("export_%s_%s.json",
		summary.Timestamp.Format(timestampLayout), shortID(summary.RunID))

	return w.write(name, summary)
}

// WriteValidation persists a validation-run summary and returns the report
// path.
func (w *Writer) WriteValidation(summary *entity.ValidationSummary) (string, error) {
	name := fmt.Sprintf("validation_%s_%s.json",
		summary.Timestamp.Format(timestampLayout), shortID(summary.RunID))

	return w.write(name, summary)
}

func (w *Writer) write(name string, v interface{}) (string, error) {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create reports dir: %w", err)
	}

	path := filepath.Join(w.dir, name)

	if exists, _ := afero.Exists(w.fs, path); exists {
		return "", fmt.Errorf("report already exists: %s", path)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot marshal report: %w", err)
	}

	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("cannot write report: %w", err)
	}

	w.log.Info("Report written", slog.String("path", path))

	return path, nil
}

func shortID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}

	return runID
}
