package entity

import "time"

// SourceAsset is one discovered source file. Discovered fresh on every run by
// the catalog scan; immutable for the duration of the run. Category is never
// stored here, it is derived on demand from the path (and sidecar metadata).
type SourceAsset struct {
	Path    string    // Full path under the models root
	RelPath string    // Path relative to the models root, stable sort key
	Name    string    // File name with extension
	Base    string    // File name without extension
	Size    int64     // The size of the file in bytes
	ModTime time.Time // Last modification time, read at scan time
}

// AssetMeta is the optional sidecar metadata parsed from the frontmatter of a
// markdown file sitting next to the source file.
type AssetMeta struct {
	Title     string `yaml:"title"`
	Category  string `yaml:"category"`
	AssetType string `yaml:"asset_type"`
	Author    string `yaml:"author"`

	NotesHTML string `yaml:"-"` // Rendered markdown body
}
