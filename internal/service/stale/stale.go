// Package stale decides whether a previously exported output must be
// regenerated. Pure filesystem-metadata comparison: content is never read, so
// a touched-but-unchanged source re-exports (accepted false positive).
package stale

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

type Detector struct {
	fs afero.Fs
}

func NewDetector() *Detector {
	return NewDetectorWithFS(afero.NewOsFs())
}

func NewDetectorWithFS(fs afero.Fs) *Detector {
	return &Detector{fs: fs}
}

// NeedsExport reports whether sourcePath must be (re-)exported to outputPath.
// Missing output always exports; otherwise export iff the source is strictly
// newer. Equal timestamps skip.
func (d *Detector) NeedsExport(sourcePath, outputPath string) (bool, error) {
	outInfo, err := d.fs.Stat(outputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}

		return false, fmt.Errorf("cannot stat output: %w", err)
	}

	srcInfo, err := d.fs.Stat(sourcePath)
	if err != nil {
		return false, fmt.Errorf("cannot stat source: %w", err)
	}

	return srcInfo.ModTime().After(outInfo.ModTime()), nil
}
