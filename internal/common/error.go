package common

import "fmt"

var (
	ErrScanAlreadyRunning = fmt.Errorf("scan process has already started")
	ErrNoSceneLoaded      = fmt.Errorf("no scene loaded")
	ErrNoSourceFilesFound = fmt.Errorf("no source files found")
)

// LoadError means a source file was unreadable or malformed. It is recorded
// per file; the batch continues.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load scene %s: %s", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ExportError means the exporter rejected the scene or could not write the
// interchange file. Recorded per file; the batch continues. A failed export
// leaves the output state undefined, so staleness must not be trusted until
// the export is re-attempted.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("cannot export scene to %s: %s", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
