// Package mdmeta reads the optional markdown sidecar sitting next to a source
// file. Its YAML frontmatter can override the keyword-derived category and
// declare the asset type used for interactive export prefixes; the body is
// rendered to HTML notes.
package mdmeta

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/PlaxKING/tower-game/internal/entity"
	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"go.abhg.dev/goldmark/frontmatter"
)

type Reader struct {
	fs  afero.Fs
	md  goldmark.Markdown
	log *slog.Logger
}

func NewReader(log *slog.Logger) *Reader {
	return NewReaderWithFS(afero.NewOsFs(), log)
}

func NewReaderWithFS(fs afero.Fs, log *slog.Logger) *Reader {
	md := goldmark.New(
		goldmark.WithExtensions(
			&frontmatter.Extender{},
		),
	)

	return &Reader{
		fs:  fs,
		md:  md,
		log: log.With(slog.String("item", "MetaReader")),
	}
}

// SidecarPath returns the sidecar location for a source file:
// weapons/sword_01.scene -> weapons/sword_01.md.
func SidecarPath(sourcePath string) string {
	if i := strings.LastIndex(sourcePath, "."); i > 0 {
		return sourcePath[:i] + ".md"
	}

	return sourcePath + ".md"
}

// Read parses the sidecar for sourcePath. A missing sidecar is not an error;
// it returns (nil, nil).
func (r *Reader) Read(sourcePath string) (*entity.AssetMeta, error) {
	path := SidecarPath(sourcePath)

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("cannot read sidecar: %w", err)
	}

	var buf bytes.Buffer
	ctx := parser.NewContext()
	if err := r.md.Convert(content, &buf, parser.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("cannot convert sidecar markdown: %w", err)
	}

	meta := entity.AssetMeta{}
	if fm := frontmatter.Get(ctx); fm != nil {
		if err := fm.Decode(&meta); err != nil {
			return nil, fmt.Errorf("cannot decode sidecar frontmatter: %w", err)
		}
	}
	meta.NotesHTML = buf.String()

	r.log.Debug("Sidecar parsed", slog.String("path", path), slog.String("category", meta.Category))

	return &meta, nil
}
